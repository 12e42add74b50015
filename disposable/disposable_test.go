package disposable

import "testing"

func TestSetContains(t *testing.T) {
	s := New()

	tests := []struct {
		name   string
		domain string
		want   bool
	}{
		{name: "known provider", domain: "10minutemail.com", want: true},
		{name: "case insensitive", domain: "MAILINATOR.com", want: true},
		{name: "regular domain", domain: "example.org", want: false},
		{name: "subdomain is not a member", domain: "mail.mailinator.com", want: false},
		{name: "empty", domain: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Contains(tt.domain); got != tt.want {
				t.Errorf("Contains(%q) = %t, want %t", tt.domain, got, tt.want)
			}
		})
	}
}

func TestSetExtraDomains(t *testing.T) {
	s := New("Custom-Trash.example", "  ", "another.example")

	if !s.Contains("custom-trash.example") {
		t.Error("Expected an extra domain to be normalized and included")
	}

	if !s.Contains("another.example") {
		t.Error("Expected the second extra domain to be included")
	}

	if s.Contains("") {
		t.Error("Expected blank extras to be dropped")
	}
}

func TestSetLen(t *testing.T) {
	base := New().Len()

	if base == 0 {
		t.Fatal("Expected a non-empty built-in list")
	}

	if got := New("extra.example").Len(); got != base+1 {
		t.Errorf("Expected %d domains, got %d", base+1, got)
	}
}
