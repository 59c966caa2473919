package readstore

import (
	"context"

	"github.com/google/uuid"

	"stayhub/internal/infra"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/queries"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return toUserView(row), nil
}

func toUserView(row sqlc.Users) *queries.UserView {
	return &queries.UserView{
		ID:          row.ID,
		Email:       row.Email,
		DisplayName: row.DisplayName,
		LastLogin:   pgconv.TimePtrFromPgtype(row.LastLogin),
		IsActive:    row.IsActive,
		CreatedAt:   row.CreatedAt.Time,
	}
}
