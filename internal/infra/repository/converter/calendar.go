package converter

import (
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/usecase/shared"
)

func CalendarSourceSnapshotFromInfra(row sqlc.CalendarSources) *shared.CalendarSourceSnapshot {
	snap := &shared.CalendarSourceSnapshot{
		ID:         row.ID,
		PropertyID: row.PropertyID,
		Name:       row.Name,
		URL:        row.Url,
		Enabled:    row.Enabled,
	}
	if row.LastSyncAt.Valid {
		t := row.LastSyncAt.Time
		snap.LastSyncAt = &t
	}
	return snap
}

func CalendarSourceSnapshotsFromInfra(rows []sqlc.CalendarSources) []*shared.CalendarSourceSnapshot {
	out := make([]*shared.CalendarSourceSnapshot, len(rows))
	for i, row := range rows {
		out[i] = CalendarSourceSnapshotFromInfra(row)
	}
	return out
}
