package response

import (
	"time"

	"stayhub/internal/domain/calendar"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CalendarSourceResponse struct {
	ID         uuid.UUID  `json:"id"`
	PropertyID uuid.UUID  `json:"property_id"`
	Name       string     `json:"name"`
	URL        string     `json:"url"`
	Enabled    bool       `json:"enabled"`
	LastSyncAt *time.Time `json:"last_sync_at"`
	SyncStatus string     `json:"sync_status"`
	SyncError  *string    `json:"sync_error"`
	CreatedAt  time.Time  `json:"created_at"`
}

func FromCalendarSourceView(v *queries.CalendarSourceView) (*CalendarSourceResponse, error) {
	var out CalendarSourceResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}

func FromCalendarSourceViews(vs []*queries.CalendarSourceView) ([]CalendarSourceResponse, error) {
	out := make([]CalendarSourceResponse, 0, len(vs))
	if err := copier.Copy(&out, &vs); err != nil {
		return nil, err
	}
	return out, nil
}

type AvailabilityResponse struct {
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

func FromAvailabilityViews(vs []*queries.AvailabilityView) ([]AvailabilityResponse, error) {
	out := make([]AvailabilityResponse, 0, len(vs))
	if err := copier.Copy(&out, &vs); err != nil {
		return nil, err
	}
	return out, nil
}

type SyncResultResponse struct {
	SourceID     uuid.UUID `json:"source_id"`
	Status       string    `json:"status"`
	EventsFound  int       `json:"events_found"`
	EventsStored int       `json:"events_stored"`
	Removed      int64     `json:"removed"`
	Error        *string   `json:"error,omitempty"`
	SyncedAt     time.Time `json:"synced_at"`
}

func FromSyncResult(r *calendar.SyncResult) SyncResultResponse {
	out := SyncResultResponse{
		SourceID:     r.SourceID,
		Status:       string(r.Status()),
		EventsFound:  r.EventsFound,
		EventsStored: r.EventsStored,
		Removed:      r.Removed,
		SyncedAt:     r.SyncedAt,
	}
	if r.Err != nil {
		msg := r.Err.Error()
		out.Error = &msg
	}
	return out
}
