package commands

import (
	"context"
	"time"

	"stayhub/internal/domain/calendar"

	"github.com/google/uuid"
)

// CalendarFeedReader downloads and parses an external iCalendar feed.
type CalendarFeedReader interface {
	Read(ctx context.Context, url string) ([]calendar.Event, error)
}

// RegisterResult is returned instead of a read model so registration does
// not depend on the query side.
type RegisterResult struct {
	UserID    uuid.UUID
	Email     string
	CreatedAt time.Time
}
