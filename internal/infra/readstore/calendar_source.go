package readstore

import (
	"context"

	"github.com/google/uuid"

	"stayhub/internal/infra"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/queries"
)

type CalendarSourceReadQueries interface {
	ListCalendarSourcesByProperty(ctx context.Context, db sqlc.DBTX, propertyID uuid.UUID) ([]sqlc.CalendarSources, error)
}

type CalendarSourceReadStore struct {
	queries CalendarSourceReadQueries
	db      sqlc.DBTX
}

func NewCalendarSourceReadStore(queries CalendarSourceReadQueries, db sqlc.DBTX) *CalendarSourceReadStore {
	return &CalendarSourceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CalendarSourceReadStore) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*queries.CalendarSourceView, error) {
	rows, err := r.queries.ListCalendarSourcesByProperty(ctx, r.db, propertyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list calendar sources", err)
	}

	views := make([]*queries.CalendarSourceView, len(rows))
	for i, row := range rows {
		views[i] = ToCalendarSourceView(row)
	}
	return views, nil
}

func ToCalendarSourceView(row sqlc.CalendarSources) *queries.CalendarSourceView {
	return &queries.CalendarSourceView{
		ID:         row.ID,
		PropertyID: row.PropertyID,
		Name:       row.Name,
		URL:        row.Url,
		Enabled:    row.Enabled,
		LastSyncAt: pgconv.TimePtrFromPgtype(row.LastSyncAt),
		SyncStatus: row.SyncStatus,
		SyncError:  pgconv.StringPtrFromPgtype(row.SyncError),
		CreatedAt:  row.CreatedAt.Time,
	}
}
