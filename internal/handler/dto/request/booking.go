package request

import (
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/pkg/patch"
)

type GuestRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Contact string `json:"contact" binding:"omitempty,max=255"`
}

type CreateBookingRequest struct {
	StartDate    FlexibleTime   `json:"start_date" swaggertype:"string" example:"2025-12-15"`
	EndDate      FlexibleTime   `json:"end_date" swaggertype:"string" example:"2025-12-20"`
	Type         string         `json:"type" binding:"omitempty,booking_type" example:"RESERVATION"`
	Observations *string        `json:"observations" binding:"omitempty,max=2000"`
	GuestCount   *int           `json:"guest_count" binding:"omitempty,min=0"`
	GuestsDetail []GuestRequest `json:"guests_detail" binding:"omitempty,dive"`
}

func (r *CreateBookingRequest) Guests() []booking.Guest {
	return toGuests(r.GuestsDetail)
}

// UpdateBookingRequest is a partial update; omitted fields keep their value.
type UpdateBookingRequest struct {
	StartDate    patch.Field[FlexibleTime]   `json:"start_date" swaggertype:"string"`
	EndDate      patch.Field[FlexibleTime]   `json:"end_date" swaggertype:"string"`
	Type         patch.Field[string]         `json:"type" swaggertype:"string"`
	Observations patch.Field[string]         `json:"observations" swaggertype:"string"`
	GuestCount   patch.Field[int]            `json:"guest_count" swaggertype:"integer"`
	GuestsDetail patch.Field[[]GuestRequest] `json:"guests_detail" swaggertype:"array,object"`
}

func (r *UpdateBookingRequest) StartDateField() patch.Field[time.Time] { return timeField(r.StartDate) }
func (r *UpdateBookingRequest) EndDateField() patch.Field[time.Time]   { return timeField(r.EndDate) }

func (r *UpdateBookingRequest) GuestsField() patch.Field[[]booking.Guest] {
	switch {
	case r.GuestsDetail.IsNull():
		return patch.Null[[]booking.Guest]()
	case r.GuestsDetail.HasValue():
		v, _ := r.GuestsDetail.Get()
		return patch.Value(toGuests(v))
	default:
		return patch.Absent[[]booking.Guest]()
	}
}

func toGuests(in []GuestRequest) []booking.Guest {
	if in == nil {
		return nil
	}
	out := make([]booking.Guest, len(in))
	for i, g := range in {
		out[i] = booking.Guest{Name: g.Name, Contact: g.Contact}
	}
	return out
}
