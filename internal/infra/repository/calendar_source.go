package repository

import (
	"context"
	"time"

	"stayhub/internal/domain/calendar"
	"stayhub/internal/infra"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// stored sync errors are truncated to keep the column readable
const maxSyncErrorLength = 1000

type CalendarSourceWriteQueries interface {
	CreateCalendarSource(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCalendarSourceParams) (sqlc.CalendarSources, error)
	DeleteCalendarSource(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteCalendarSourceParams) (int64, error)
	MarkCalendarSourceSyncing(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkCalendarSourceSyncingParams) error
	UpdateCalendarSourceSyncResult(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCalendarSourceSyncResultParams) error
}

type CalendarSourceRepository struct {
	queries CalendarSourceWriteQueries
	db      sqlc.DBTX
}

func NewCalendarSourceRepository(queries CalendarSourceWriteQueries, db sqlc.DBTX) *CalendarSourceRepository {
	return &CalendarSourceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CalendarSourceRepository) Create(ctx context.Context, tx sqlc.DBTX, s *calendar.Source) error {
	params := sqlc.CreateCalendarSourceParams{
		ID:         s.ID(),
		PropertyID: s.PropertyID(),
		Name:       s.Name(),
		Url:        s.URL(),
		Enabled:    s.Enabled(),
		CreatedAt:  pgconv.TimeToPgtype(s.CreatedAt()),
	}
	if _, err := r.queries.CreateCalendarSource(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create calendar source", err)
	}
	return nil
}

func (r *CalendarSourceRepository) Delete(ctx context.Context, tx sqlc.DBTX, propertyID, sourceID uuid.UUID) error {
	n, err := r.queries.DeleteCalendarSource(ctx, tx, sqlc.DeleteCalendarSourceParams{ID: sourceID, PropertyID: propertyID})
	if err != nil {
		return infra.WrapRepoErr("failed to delete calendar source", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("calendar source not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CalendarSourceRepository) MarkSyncing(ctx context.Context, tx sqlc.DBTX, sourceID uuid.UUID, at time.Time) error {
	params := sqlc.MarkCalendarSourceSyncingParams{ID: sourceID, UpdatedAt: pgconv.TimeToPgtype(at)}
	if err := r.queries.MarkCalendarSourceSyncing(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to mark calendar source syncing", err)
	}
	return nil
}

func (r *CalendarSourceRepository) RecordSyncResult(ctx context.Context, tx sqlc.DBTX, result calendar.SyncResult) error {
	params := sqlc.UpdateCalendarSourceSyncResultParams{
		ID:         result.SourceID,
		SyncStatus: result.Status().String(),
		SyncError:  syncErrorText(result.Err),
		LastSyncAt: pgconv.TimeToPgtype(result.SyncedAt),
	}
	if err := r.queries.UpdateCalendarSourceSyncResult(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to record calendar sync result", err)
	}
	return nil
}

func syncErrorText(err error) pgtype.Text {
	if err == nil {
		return pgtype.Text{Valid: false}
	}
	msg := err.Error()
	if len(msg) > maxSyncErrorLength {
		msg = msg[:maxSyncErrorLength]
	}
	return pgtype.Text{String: msg, Valid: true}
}
