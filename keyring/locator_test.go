package keyring

import (
	"testing"
)

func TestSpreadsheetId(t *testing.T) {
	expected := "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"

	urls := []string{
		"https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		"https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms/edit#gid=0",
		"  https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms  ",
	}

	for _, url := range urls {
		key, err := SpreadsheetId(url)
		if err != nil {
			t.Fatalf("Unexpected error returned from SpreadsheetId (%v)", err)
		}

		if key != expected {
			t.Errorf("Incorrect spreadsheet key for %q - expected:%v, got:%v", url, expected, key)
		}
	}
}

func TestSpreadsheetIdWithInvalidURL(t *testing.T) {
	urls := []string{
		"",
		"https://docs.google.com/spreadsheets/d/",
		"https://example.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		"1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
	}

	for _, url := range urls {
		if _, err := SpreadsheetId(url); err == nil {
			t.Errorf("Expected error return for URL %q, got %v", url, err)
		}
	}
}
