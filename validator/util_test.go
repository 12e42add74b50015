package validator

import "testing"

func TestMightBeAHostOrIP(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "example.org", want: true},
		{input: "mx1.example.org", want: true},
		{input: "192.0.2.10", want: true},
		{input: "a-b.example", want: true},

		{input: ".", want: false},
		{input: "", want: false},
		{input: "ab.c", want: false},         // too short
		{input: "exampleorg", want: false},   // no dot
		{input: ".example.org", want: false}, // leading dot
		{input: "example.org.", want: false}, // trailing dot
		{input: "exa mple.org", want: false},
		{input: "exa_mple.org", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := MightBeAHostOrIP(tt.input); got != tt.want {
				t.Errorf("MightBeAHostOrIP(%q) = %t, want %t", tt.input, got, tt.want)
			}
		})
	}
}

func Test_looksLikeValidLocalPart(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "john.doe", want: true},
		{input: "john+tag", want: true},
		{input: "j", want: true},
		{input: "o'connor", want: true},

		{input: "", want: false},
		{input: ".john", want: false},
		{input: "john.", want: false},
		{input: "john doe", want: false},
		{input: "john@doe", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := looksLikeValidLocalPart(tt.input); got != tt.want {
				t.Errorf("looksLikeValidLocalPart(%q) = %t, want %t", tt.input, got, tt.want)
			}
		})
	}
}

func Test_looksLikeValidDomain(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "example.org", want: true},
		{input: "xn--bcher-kva.example", want: true},
		{input: "e.org", want: true},

		{input: "", want: false},
		{input: "a.bc", want: false}, // too short
		{input: ".example.org", want: false},
		{input: "example.org.", want: false},
		{input: "-example.org", want: false},
		{input: "exa mple.org", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := looksLikeValidDomain(tt.input); got != tt.want {
				t.Errorf("looksLikeValidDomain(%q) = %t, want %t", tt.input, got, tt.want)
			}
		})
	}
}
