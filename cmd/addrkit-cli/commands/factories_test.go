package commands

import (
	"strings"
	"testing"
)

func collect(t *testing.T, it interface {
	Next() bool
	Value() (string, error)
	Close() error
}) []string {
	t.Helper()

	var values []string
	for it.Next() {
		v, err := it.Value()
		if err != nil {
			t.Fatalf("Unexpected iteration error, %s", err)
		}

		if v != "" {
			values = append(values, v)
		}
	}

	if err := it.Close(); err != nil {
		t.Fatalf("Unexpected close error, %s", err)
	}

	return values
}

func TestCreateTextIterator(t *testing.T) {
	input := "john@example.org\n\njane@example.org\n"

	got := collect(t, createTextIterator(strings.NewReader(input)))

	want := []string{"john@example.org", "jane@example.org"}
	if len(got) != len(want) {
		t.Fatalf("Expected %d values, got %v", len(want), got)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Value %d mismatch, got %q want %q", i, got[i], want[i])
		}
	}
}

func TestCreateCSVIterator(t *testing.T) {
	defer func() {
		checkSettings.CSV = csvOptions{}
	}()

	input := "name,email\nJohn,john@example.org\nJane,jane@example.org\n"

	checkSettings.CSV.skipRows = 1
	checkSettings.CSV.column = 1

	got := collect(t, createCSVIterator(strings.NewReader(input)))

	want := []string{"john@example.org", "jane@example.org"}
	if len(got) != len(want) {
		t.Fatalf("Expected %d values, got %v", len(want), got)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Value %d mismatch, got %q want %q", i, got[i], want[i])
		}
	}
}
