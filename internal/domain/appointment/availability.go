package appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

// ===============================
// Availability windows
// ===============================

// A barber's availability is a map of lowercase weekday names to
// "HH:MM-HH:MM" ranges. Ranges are minutes-of-day, half-open.

type timeRange struct {
	start int // minutes since midnight
	end   int
}

func parseHM(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func parseRange(s string) (timeRange, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return timeRange{}, fmt.Errorf("malformed range %q", s)
	}

	start, err := parseHM(strings.TrimSpace(parts[0]))
	if err != nil {
		return timeRange{}, err
	}
	end, err := parseHM(strings.TrimSpace(parts[1]))
	if err != nil {
		return timeRange{}, err
	}

	if end <= start {
		return timeRange{}, fmt.Errorf("range %q ends before it starts", s)
	}

	return timeRange{start: start, end: end}, nil
}

func dayName(d time.Weekday) string {
	return strings.ToLower(d.String())
}

// ValidateAvailability rejects malformed, unordered or overlapping
// ranges. Applied on every write of a barber's availability.
func ValidateAvailability(av models.Availability) error {
	for day, ranges := range av {
		if dayFromName(day) < 0 {
			return httperr.ErrBusiness("invalid_availability")
		}

		prevEnd := -1
		for _, raw := range ranges {
			r, err := parseRange(raw)
			if err != nil {
				return httperr.ErrBusiness("invalid_availability")
			}
			if r.start < prevEnd {
				return httperr.ErrBusiness("invalid_availability")
			}
			prevEnd = r.end
		}
	}
	return nil
}

func dayFromName(name string) int {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if dayName(d) == name {
			return int(d)
		}
	}
	return -1
}

// WithinAvailability reports whether [start, end) is fully contained in
// one of the barber's ranges for start's weekday. Appointments spanning
// midnight never fit.
func WithinAvailability(av models.Availability, start, end time.Time) bool {
	ranges, ok := av[dayName(start.Weekday())]
	if !ok {
		return false
	}

	startMin := start.Hour()*60 + start.Minute()
	dur := int(end.Sub(start).Minutes())
	endMin := startMin + dur

	for _, raw := range ranges {
		r, err := parseRange(raw)
		if err != nil {
			continue
		}
		if startMin >= r.start && endMin <= r.end {
			return true
		}
	}
	return false
}
