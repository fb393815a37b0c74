package travel

import (
	"testing"
	"time"
)

func TestParseTripDays(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"7 días", 7},
		{"5 días y 4 noches", 5},
		{"10 days", 10},
		{"", 5},
		{"unos cuantos días", 5},
		{"0 días", 5},
	}

	for _, tc := range cases {
		if got := ParseTripDays(tc.in); got != tc.want {
			t.Errorf("ParseTripDays(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestTripWindowsOffsets(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	windows := TripWindows(now, "7 días")

	if got := windows[0].Depart; !got.Equal(now.AddDate(0, 0, 60)) {
		t.Fatalf("first window departs %v, want now+60d", got)
	}
	if got := windows[0].Return; !got.Equal(now.AddDate(0, 0, 67)) {
		t.Fatalf("first window returns %v, want now+67d", got)
	}
	if got := windows[1].Return; !got.Equal(now.AddDate(0, 0, 82)) {
		t.Fatalf("second window returns %v, want now+82d", got)
	}
	if windows[0].Return.Equal(windows[1].Return) {
		t.Fatal("windows must differ")
	}
	if windows[0].Rationale == "" || windows[1].Rationale == "" {
		t.Fatal("windows must carry rationales")
	}
}

func TestWindowNights(t *testing.T) {
	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	w := TripWindows(now, "4 días")[0]
	if w.Nights() != 4 {
		t.Fatalf("Nights() = %d, want 4", w.Nights())
	}
}
