package calendar

import (
	"time"

	"github.com/google/uuid"
)

// SyncResult summarizes one pass over a single source.
type SyncResult struct {
	SourceID     uuid.UUID
	PropertyID   uuid.UUID
	EventsFound  int
	EventsStored int
	Removed      int64
	Err          error
	SyncedAt     time.Time
}

func (r SyncResult) Status() SyncStatus {
	if r.Err != nil {
		return SyncStatusError
	}
	return SyncStatusSuccess
}

// BatchResult aggregates SyncResult values from one SyncAll run.
type BatchResult struct {
	Results []SyncResult
}

func (b BatchResult) Failed() int {
	n := 0
	for _, r := range b.Results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

func (b BatchResult) EventsStored() int {
	n := 0
	for _, r := range b.Results {
		n += r.EventsStored
	}
	return n
}
