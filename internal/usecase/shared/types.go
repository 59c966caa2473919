package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command read operations
type UserCredentials struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	IsActive     bool
}

type CalendarSourceSnapshot struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	Name       string
	URL        string
	Enabled    bool
	LastSyncAt *time.Time
}
