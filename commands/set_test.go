package commands

import (
	"strings"
	"testing"
)

func TestReadPassword(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"squeamish-ossifrage\n", "squeamish-ossifrage"},
		{"squeamish-ossifrage\r\n", "squeamish-ossifrage"},
		{"  spaces are significant \n", "  spaces are significant "},
	}

	for _, test := range tests {
		password, err := readPassword(strings.NewReader(test.input))
		if err != nil {
			t.Fatalf("Unexpected error returned from readPassword (%v)", err)
		}

		if password != test.expected {
			t.Errorf("Incorrect password for %q - expected:%q, got:%q", test.input, test.expected, password)
		}
	}
}

func TestReadPasswordWithBlankPassword(t *testing.T) {
	if _, err := readPassword(strings.NewReader("\n")); err == nil {
		t.Fatalf("Expected error return for blank password, got %v", err)
	}
}
