package repository

import (
	"context"
	"time"

	"stayhub/internal/domain/calendar"
	"stayhub/internal/infra"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilityWriteQueries interface {
	UpsertAvailability(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertAvailabilityParams) error
	DeleteStaleAvailabilities(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteStaleAvailabilitiesParams) (int64, error)
}

type AvailabilityRepository struct {
	queries AvailabilityWriteQueries
	db      sqlc.DBTX
}

func NewAvailabilityRepository(queries AvailabilityWriteQueries, db sqlc.DBTX) *AvailabilityRepository {
	return &AvailabilityRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AvailabilityRepository) ReplaceForSource(ctx context.Context, tx sqlc.DBTX, source *shared.CalendarSourceSnapshot, events []calendar.Event, now time.Time) (int, int64, error) {
	keep := make([]string, 0, len(events))
	seen := make(map[string]struct{}, len(events))
	stored := 0
	for _, ev := range events {
		// feeds occasionally repeat a uid; the first occurrence wins
		if _, dup := seen[ev.UID]; dup {
			continue
		}
		seen[ev.UID] = struct{}{}

		params := sqlc.UpsertAvailabilityParams{
			ID:         uuid.New(),
			PropertyID: source.PropertyID,
			SourceID:   source.ID,
			Uid:        ev.UID,
			Summary:    ev.Summary,
			StartDate:  pgconv.TimeToPgtype(ev.Start),
			EndDate:    pgconv.TimeToPgtype(ev.End),
			CreatedAt:  pgconv.TimeToPgtype(now),
		}
		if err := r.queries.UpsertAvailability(ctx, tx, params); err != nil {
			return stored, 0, infra.WrapRepoErr("failed to upsert availability", err)
		}
		keep = append(keep, ev.UID)
		stored++
	}

	removed, err := r.queries.DeleteStaleAvailabilities(ctx, tx, sqlc.DeleteStaleAvailabilitiesParams{
		SourceID: source.ID,
		KeepUids: keep,
	})
	if err != nil {
		return stored, 0, infra.WrapRepoErr("failed to delete stale availabilities", err)
	}
	return stored, removed, nil
}
