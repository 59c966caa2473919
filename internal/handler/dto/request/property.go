package request

import "stayhub/internal/pkg/patch"

type CreatePropertyRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Address     *string `json:"address" binding:"omitempty,max=500"`
	Description *string `json:"description" binding:"omitempty,max=5000"`
	MaxGuests   int     `json:"max_guests" binding:"min=0,max=1000"`
}

// UpdatePropertyRequest is a partial update; null clears optional fields.
type UpdatePropertyRequest struct {
	Name        patch.Field[string] `json:"name" swaggertype:"string"`
	Address     patch.Field[string] `json:"address" swaggertype:"string"`
	Description patch.Field[string] `json:"description" swaggertype:"string"`
	MaxGuests   patch.Field[int]    `json:"max_guests" swaggertype:"integer"`
}

// MatchListingRequest carries text pasted from a Booking.com or Airbnb listing.
type MatchListingRequest struct {
	Text string `json:"text" binding:"required"`
}
