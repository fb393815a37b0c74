package travel

import (
	"regexp"
	"strconv"
	"time"
)

const (
	dateLayout = "2006-01-02"

	// defaultTripDays applies when the itinerary duration is unparsable.
	defaultTripDays = 5
)

// Window is a candidate travel-date window with a human-readable rationale.
type Window struct {
	Depart    time.Time
	Return    time.Time
	Rationale string
}

// Nights returns the stay length of the window.
func (w Window) Nights() int {
	return int(w.Return.Sub(w.Depart).Hours() / 24)
}

// DateOption renders the window for the API response.
func (w Window) DateOption() DateOption {
	return DateOption{
		DepartureDate: w.Depart.Format(dateLayout),
		ReturnDate:    w.Return.Format(dateLayout),
		Rationale:     w.Rationale,
	}
}

var durationDigits = regexp.MustCompile(`(\d+)`)

// ParseTripDays extracts the stay length from an itinerary duration string
// such as "7 días", falling back to the default when unparsable.
func ParseTripDays(duration string) int {
	m := durationDigits.FindStringSubmatch(duration)
	if m == nil {
		return defaultTripDays
	}
	days, err := strconv.Atoi(m[1])
	if err != nil || days <= 0 {
		return defaultTripDays
	}
	return days
}

// TripWindows computes the two forward-dated trip windows offered for a
// trip: 60 days out tends to be cheaper, 75 days out leaves more slack.
func TripWindows(now time.Time, duration string) [2]Window {
	days := ParseTripDays(duration)

	build := func(offset int, rationale string) Window {
		depart := now.AddDate(0, 0, offset)
		return Window{
			Depart:    depart,
			Return:    depart.AddDate(0, 0, days),
			Rationale: rationale,
		}
	}

	return [2]Window{
		build(60, "Más barato reservando con 60 días de antelación"),
		build(75, "Más flexible reservando con 75 días de antelación"),
	}
}
