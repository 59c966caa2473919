package readstore

import (
	"context"

	"github.com/google/uuid"

	"stayhub/internal/infra"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/queries"
)

type PropertyReadQueries interface {
	GetPropertyByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Properties, error)
	GetPropertyByExportToken(ctx context.Context, db sqlc.DBTX, exportToken string) (sqlc.Properties, error)
	ListPropertiesByOwner(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) ([]sqlc.Properties, error)
}

type PropertyReadStore struct {
	queries PropertyReadQueries
	db      sqlc.DBTX
}

func NewPropertyReadStore(queries PropertyReadQueries, db sqlc.DBTX) *PropertyReadStore {
	return &PropertyReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PropertyReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PropertyView, error) {
	row, err := r.queries.GetPropertyByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find property", err)
	}
	return toPropertyView(row), nil
}

func (r *PropertyReadStore) FindByExportToken(ctx context.Context, token string) (*queries.PropertyView, error) {
	row, err := r.queries.GetPropertyByExportToken(ctx, r.db, token)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find property by export token", err)
	}
	return toPropertyView(row), nil
}

func (r *PropertyReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.PropertyView, error) {
	rows, err := r.queries.ListPropertiesByOwner(ctx, r.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list properties", err)
	}

	views := make([]*queries.PropertyView, len(rows))
	for i, row := range rows {
		views[i] = toPropertyView(row)
	}
	return views, nil
}

func toPropertyView(row sqlc.Properties) *queries.PropertyView {
	return &queries.PropertyView{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Name:        row.Name,
		Address:     pgconv.StringPtrFromPgtype(row.Address),
		Description: pgconv.StringPtrFromPgtype(row.Description),
		MaxGuests:   int(row.MaxGuests),
		ExportToken: row.ExportToken,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
