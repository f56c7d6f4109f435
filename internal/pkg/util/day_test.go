package util

import (
	"errors"
	"testing"
	"time"
)

func TestDayOf(t *testing.T) {
	ts := time.Date(2026, 3, 1, 23, 30, 0, 0, time.UTC)

	if got := DayOf(ts, nil); got != "2026-03-01" {
		t.Errorf("DayOf(nil loc) = %s", got)
	}

	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skip("tzdata not available")
	}
	if got := DayOf(ts, tokyo); got != "2026-03-02" {
		t.Errorf("DayOf(Tokyo) = %s", got)
	}
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"2026-10-17", false},
		{"2026-1-7", true},
		{"2026-02-30", true},
		{"20261017", true},
		{"", true},
		{"2026-10-17T00:00:00Z", true},
	}
	for _, tt := range tests {
		_, err := ParseDay(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDay(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidDay) {
			t.Errorf("ParseDay(%q) err = %v, want ErrInvalidDay", tt.in, err)
		}
	}
}

func TestShiftDay(t *testing.T) {
	got, err := ShiftDay("2026-03-01", -1)
	if err != nil {
		t.Fatal(err)
	}
	if got != "2026-02-28" {
		t.Errorf("ShiftDay = %s, want 2026-02-28", got)
	}
	if _, err = ShiftDay("bad", 1); err == nil {
		t.Error("expected error for bad day")
	}
}
