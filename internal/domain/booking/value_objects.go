package booking

import (
	"strings"
	"time"
)

const (
	MaxObservationsLength = 2000
	MaxGuestFieldLength   = 255
	dayLayout             = "2006-01-02"
)

// Period is a half-open interval [start, end) on absolute instants.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	if start.IsZero() || end.IsZero() {
		return Period{}, ErrMissingDates
	}
	if !start.Before(end) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{start: start.UTC(), end: end.UTC()}, nil
}

func (p Period) Start() time.Time { return p.start }
func (p Period) End() time.Time   { return p.end }

// String renders whole-day periods as dates and everything else as RFC3339.
func (p Period) String() string {
	if isMidnight(p.start) && isMidnight(p.end) {
		return p.start.Format(dayLayout) + " to " + p.end.Format(dayLayout)
	}
	return p.start.Format(time.RFC3339) + " to " + p.end.Format(time.RFC3339)
}

func isMidnight(t time.Time) bool {
	return t.Equal(t.Truncate(24 * time.Hour))
}

type Guest struct {
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
}

func NewGuests(in []Guest) ([]Guest, error) {
	out := make([]Guest, 0, len(in))
	for _, g := range in {
		name := strings.TrimSpace(g.Name)
		contact := strings.TrimSpace(g.Contact)
		if name == "" {
			return nil, ErrGuestNameRequired
		}
		if len(name) > MaxGuestFieldLength || len(contact) > MaxGuestFieldLength {
			return nil, ErrGuestFieldTooLong
		}
		out = append(out, Guest{Name: name, Contact: contact})
	}
	return out, nil
}

func normalizeObservations(s *string) (*string, error) {
	if s == nil {
		return nil, nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil, nil
	}
	if len(v) > MaxObservationsLength {
		return nil, ErrObservationsTooLong
	}
	return &v, nil
}
