package keyring

import (
	"reflect"
	"testing"
	"time"
)

func TestMatchRows(t *testing.T) {
	expected := []int{2, 4}

	rows := [][]interface{}{
		[]interface{}{"service", "username", "password", "created", "updated"},
		[]interface{}{"service1", "user1", "secret1", "2026-03-01 12:00", "2026-03-01 12:00"},
		[]interface{}{"service1", "user2", "secret2", "2026-03-01 12:00", "2026-03-01 12:00"},
		[]interface{}{"service1", "user1", "stale", "2026-02-01 09:00", "2026-02-01 09:00"},
	}

	matched := matchRows(rows, "service1", "user1")

	if !reflect.DeepEqual(matched, expected) {
		t.Errorf("Incorrect matched rows\n   expected: %v\n   got:      %v\n", expected, matched)
	}
}

func TestMatchRowsIgnoresHeader(t *testing.T) {
	rows := [][]interface{}{
		[]interface{}{"service", "username", "password", "created", "updated"},
	}

	if matched := matchRows(rows, "service", "username"); len(matched) != 0 {
		t.Errorf("Expected header row to be ignored, got %v", matched)
	}
}

func TestMatchRowsWithShortRows(t *testing.T) {
	rows := [][]interface{}{
		[]interface{}{"service", "username", "password", "created", "updated"},
		[]interface{}{"service1"},
		[]interface{}{},
		[]interface{}{"service1", "user1"},
	}

	expected := []int{4}

	matched := matchRows(rows, "service1", "user1")

	if !reflect.DeepEqual(matched, expected) {
		t.Errorf("Incorrect matched rows\n   expected: %v\n   got:      %v\n", expected, matched)
	}
}

func TestTimestamp(t *testing.T) {
	expected := "2026-02-28 23:45"

	s := SheetStore{
		now: func() time.Time {
			return time.Date(2026, time.February, 28, 23, 45, 30, 0, time.UTC)
		},
	}

	if ts := s.timestamp(); ts != expected {
		t.Errorf("Incorrect timestamp - expected:%v, got:%v", expected, ts)
	}
}

func TestTimestampIsUTC(t *testing.T) {
	expected := "2026-03-01 03:30"

	tz := time.FixedZone("UTC-4", -4*60*60)
	s := SheetStore{
		now: func() time.Time {
			return time.Date(2026, time.February, 28, 23, 30, 0, 0, tz)
		},
	}

	if ts := s.timestamp(); ts != expected {
		t.Errorf("Incorrect timestamp - expected:%v, got:%v", expected, ts)
	}
}

func TestField(t *testing.T) {
	row := []interface{}{"service1", "user1", 12345}

	tests := []struct {
		col      int
		expected string
	}{
		{serviceCol, "service1"},
		{usernameCol, "user1"},
		{passwordCol, "12345"},
		{createdAtCol, ""},
	}

	for _, test := range tests {
		if v := field(row, test.col); v != test.expected {
			t.Errorf("Incorrect field for column %v - expected:%q, got:%q", test.col, test.expected, v)
		}
	}
}
