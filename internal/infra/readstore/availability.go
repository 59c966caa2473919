package readstore

import (
	"context"

	"github.com/google/uuid"

	"stayhub/internal/infra"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/usecase/queries"
)

type AvailabilityReadQueries interface {
	ListAvailabilitiesByProperty(ctx context.Context, db sqlc.DBTX, propertyID uuid.UUID) ([]sqlc.ListAvailabilitiesByPropertyRow, error)
}

type AvailabilityReadStore struct {
	queries AvailabilityReadQueries
	db      sqlc.DBTX
}

func NewAvailabilityReadStore(queries AvailabilityReadQueries, db sqlc.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AvailabilityReadStore) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*queries.AvailabilityView, error) {
	rows, err := r.queries.ListAvailabilitiesByProperty(ctx, r.db, propertyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list availabilities", err)
	}

	views := make([]*queries.AvailabilityView, len(rows))
	for i, row := range rows {
		views[i] = &queries.AvailabilityView{
			ID:         row.ID,
			PropertyID: row.PropertyID,
			SourceID:   row.SourceID,
			SourceName: row.SourceName,
			UID:        row.Uid,
			Summary:    row.Summary,
			StartDate:  row.StartDate.Time.UTC(),
			EndDate:    row.EndDate.Time.UTC(),
			UpdatedAt:  row.UpdatedAt.Time,
		}
	}
	return views, nil
}
