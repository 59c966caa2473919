package queries

import (
	"time"

	"github.com/google/uuid"
)

// UserView represents the signed-in account
type UserView struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
}

type PropertyView struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	Address     *string   `json:"address,omitempty"`
	Description *string   `json:"description,omitempty"`
	MaxGuests   int       `json:"max_guests"`
	ExportToken string    `json:"export_token"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PropertyRef is the minimum the booking core needs to authorize a caller.
type PropertyRef struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
}

type GuestView struct {
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
}

type BookingView struct {
	ID           uuid.UUID   `json:"id"`
	PropertyID   uuid.UUID   `json:"property_id"`
	StartDate    time.Time   `json:"start_date"`
	EndDate      time.Time   `json:"end_date"`
	Type         string      `json:"type"`
	Observations *string     `json:"observations,omitempty"`
	GuestCount   int         `json:"guest_count"`
	GuestsDetail []GuestView `json:"guests_detail"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

type CalendarSourceView struct {
	ID         uuid.UUID  `json:"id"`
	PropertyID uuid.UUID  `json:"property_id"`
	Name       string     `json:"name"`
	URL        string     `json:"url"`
	Enabled    bool       `json:"enabled"`
	LastSyncAt *time.Time `json:"last_sync_at,omitempty"`
	SyncStatus string     `json:"sync_status"`
	SyncError  *string    `json:"sync_error,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// AvailabilityView is an advisory range mirrored from an external calendar.
type AvailabilityView struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"property_id"`
	SourceID   uuid.UUID `json:"source_id"`
	SourceName string    `json:"source_name"`
	UID        string    `json:"uid"`
	Summary    string    `json:"summary"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	UpdatedAt  time.Time `json:"updated_at"`
}
