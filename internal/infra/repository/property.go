package repository

import (
	"context"

	"stayhub/internal/domain/property"
	"stayhub/internal/infra"
	"stayhub/internal/infra/repository/converter"
	sqlc "stayhub/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type PropertyWriteQueries interface {
	CreateProperty(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePropertyParams) (sqlc.Properties, error)
	UpdateProperty(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePropertyParams) (int64, error)
	DeleteProperty(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	GetPropertyByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Properties, error)
}

type PropertyRepository struct {
	queries PropertyWriteQueries
	db      sqlc.DBTX
}

func NewPropertyRepository(queries PropertyWriteQueries, db sqlc.DBTX) *PropertyRepository {
	return &PropertyRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PropertyRepository) Create(ctx context.Context, tx sqlc.DBTX, p *property.Property) error {
	params, err := converter.PropertyToCreateParams(p)
	if err != nil {
		return err
	}
	if _, err := r.queries.CreateProperty(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create property", err)
	}
	return nil
}

func (r *PropertyRepository) Update(ctx context.Context, tx sqlc.DBTX, p *property.Property) error {
	params, err := converter.PropertyToUpdateParams(p)
	if err != nil {
		return err
	}
	n, err := r.queries.UpdateProperty(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update property", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("property not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteProperty(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete property", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("property not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PropertyRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*property.Property, error) {
	row, err := r.queries.GetPropertyByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock property", err)
	}
	return converter.PropertyFromInfra(row)
}
