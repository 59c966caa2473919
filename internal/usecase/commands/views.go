package commands

import (
	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/calendar"
	"stayhub/internal/domain/property"
	"stayhub/internal/usecase/queries"
)

func propertyView(p *property.Property) *queries.PropertyView {
	return &queries.PropertyView{
		ID:          p.ID(),
		OwnerID:     p.OwnerID(),
		Name:        p.Name(),
		Address:     p.Address(),
		Description: p.Description(),
		MaxGuests:   p.MaxGuests(),
		ExportToken: p.ExportToken(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func bookingView(b *booking.Booking) *queries.BookingView {
	guests := make([]queries.GuestView, len(b.Guests()))
	for i, g := range b.Guests() {
		guests[i] = queries.GuestView{Name: g.Name, Contact: g.Contact}
	}
	return &queries.BookingView{
		ID:           b.ID(),
		PropertyID:   b.PropertyID(),
		StartDate:    b.Period().Start(),
		EndDate:      b.Period().End(),
		Type:         b.Type().String(),
		Observations: b.Observations(),
		GuestCount:   b.GuestCount(),
		GuestsDetail: guests,
		CreatedAt:    b.CreatedAt(),
		UpdatedAt:    b.UpdatedAt(),
	}
}

func calendarSourceView(s *calendar.Source) *queries.CalendarSourceView {
	return &queries.CalendarSourceView{
		ID:         s.ID(),
		PropertyID: s.PropertyID(),
		Name:       s.Name(),
		URL:        s.URL(),
		Enabled:    s.Enabled(),
		SyncStatus: calendar.SyncStatusPending.String(),
		CreatedAt:  s.CreatedAt(),
	}
}
