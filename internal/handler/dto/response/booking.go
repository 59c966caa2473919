package response

import (
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type GuestResponse struct {
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
}

type BookingResponse struct {
	ID           uuid.UUID       `json:"id"`
	PropertyID   uuid.UUID       `json:"property_id"`
	StartDate    time.Time       `json:"start_date"`
	EndDate      time.Time       `json:"end_date"`
	Type         string          `json:"type"`
	Observations *string         `json:"observations"`
	GuestCount   int             `json:"guest_count"`
	GuestsDetail []GuestResponse `json:"guests_detail"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func FromBookingView(v *queries.BookingView) BookingResponse {
	guests := make([]GuestResponse, len(v.GuestsDetail))
	for i, g := range v.GuestsDetail {
		guests[i] = GuestResponse{Name: g.Name, Contact: g.Contact}
	}
	return BookingResponse{
		ID:           v.ID,
		PropertyID:   v.PropertyID,
		StartDate:    v.StartDate,
		EndDate:      v.EndDate,
		Type:         v.Type,
		Observations: v.Observations,
		GuestCount:   v.GuestCount,
		GuestsDetail: guests,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func FromBookingViews(vs []*queries.BookingView) []BookingResponse {
	out := make([]BookingResponse, len(vs))
	for i, v := range vs {
		out[i] = FromBookingView(v)
	}
	return out
}

type ConflictItem struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Range     string    `json:"range"`
}

type ConflictDetail struct {
	Requested string         `json:"requested"`
	Conflicts []ConflictItem `json:"conflicts"`
}

// ConflictDetailOf returns nil when err does not carry a booking conflict.
func ConflictDetailOf(err error) *ConflictDetail {
	var ce *booking.ConflictError
	if !errs.As(err, &ce) {
		return nil
	}
	items := make([]ConflictItem, len(ce.Conflicts))
	for i, c := range ce.Conflicts {
		items[i] = ConflictItem{
			ID:        c.BookingID,
			Type:      c.Type.String(),
			StartDate: c.Period.Start(),
			EndDate:   c.Period.End(),
			Range:     c.Period.String(),
		}
	}
	return &ConflictDetail{Requested: ce.Requested.String(), Conflicts: items}
}
