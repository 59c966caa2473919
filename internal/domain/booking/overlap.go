package booking

import (
	"sort"
	"strings"

	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

// Conflict describes an existing booking that blocks a candidate period.
type Conflict struct {
	BookingID uuid.UUID
	Type      Type
	Period    Period
}

// Overlaps reports whether two half-open periods intersect.
func Overlaps(a, b Period) bool {
	return a.start.Before(b.end) && b.start.Before(a.end)
}

// FindConflicts returns every booking in existing whose period overlaps
// candidate, ordered by start date. exclude skips one booking id, which is
// how an update avoids colliding with its own previous range.
func FindConflicts(existing []*Booking, candidate Period, exclude *uuid.UUID) []*Booking {
	conflicts := make([]*Booking, 0)
	for _, b := range existing {
		if exclude != nil && b.id == *exclude {
			continue
		}
		if Overlaps(b.period, candidate) {
			conflicts = append(conflicts, b)
		}
	}
	sort.SliceStable(conflicts, func(i, j int) bool {
		si, sj := conflicts[i].period.start, conflicts[j].period.start
		if !si.Equal(sj) {
			return si.Before(sj)
		}
		return conflicts[i].id.String() < conflicts[j].id.String()
	})
	return conflicts
}

func ToConflicts(bookings []*Booking) []Conflict {
	out := make([]Conflict, len(bookings))
	for i, b := range bookings {
		out[i] = Conflict{BookingID: b.id, Type: b.bookingType, Period: b.period}
	}
	return out
}

// ConflictError reports all bookings that overlap a requested period.
// Conflicts is empty when the overlap was only detected by the storage
// constraint and the competing row is not known.
type ConflictError struct {
	Requested Period
	Conflicts []Conflict
}

func NewConflictError(requested Period, conflicts []Conflict) error {
	return errs.Mark(&ConflictError{Requested: requested, Conflicts: conflicts}, errs.ErrConflict)
}

func (e *ConflictError) Error() string {
	if len(e.Conflicts) == 0 {
		return "requested dates " + e.Requested.String() + " overlap an existing booking"
	}
	ranges := make([]string, len(e.Conflicts))
	for i, c := range e.Conflicts {
		ranges[i] = c.Period.String() + " (" + c.Type.String() + ")"
	}
	return "requested dates " + e.Requested.String() + " overlap existing bookings: " + strings.Join(ranges, ", ")
}

func (e *ConflictError) Is(target error) bool {
	return target == errs.ErrConflict
}
