package timeutil

import (
	"testing"
	"time"
)

func TestFormatHMS(t *testing.T) {
	cases := []struct {
		input time.Duration
		want  string
	}{
		{0, "00:00:00"},
		{-time.Minute, "00:00:00"},
		{30 * time.Minute, "00:30:00"},
		{7*time.Hour + 30*time.Minute, "07:30:00"},
		{25*time.Hour + 1*time.Minute + 5*time.Second, "25:01:05"},
	}
	for _, c := range cases {
		if got := FormatHMS(c.input); got != c.want {
			t.Errorf("FormatHMS(%v) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestFormatHMSPtr(t *testing.T) {
	if got := FormatHMSPtr(nil); got != "00:00:00" {
		t.Errorf("FormatHMSPtr(nil) = %q, want 00:00:00", got)
	}
	d := 90 * time.Minute
	if got := FormatHMSPtr(&d); got != "01:30:00" {
		t.Errorf("FormatHMSPtr(90m) = %q, want 01:30:00", got)
	}
}

func TestDayStart(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		t.Fatal(err)
	}
	instant := time.Date(2026, 3, 2, 23, 45, 0, 0, loc)
	got := DayStart(instant)
	want := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("DayStart(%v) = %v, want %v", instant, got, want)
	}
}

func TestSameDate(t *testing.T) {
	a := time.Date(2026, 3, 2, 23, 0, 0, 0, time.UTC)
	b := time.Date(2026, 3, 2, 1, 0, 0, 0, time.UTC)
	c := time.Date(2026, 3, 3, 1, 0, 0, 0, time.UTC)
	if !SameDate(a, b) {
		t.Error("SameDate(a, b) = false, want true")
	}
	if SameDate(a, c) {
		t.Error("SameDate(a, c) = true, want false")
	}
}
