package repository

import (
	"context"
	"time"

	"stayhub/internal/domain/user"
	"stayhub/internal/infra"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error)
	UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserLastLoginParams) error
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	params := sqlc.CreateUserParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		DisplayName:  u.DisplayName(),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
	}
	if _, err := r.queries.CreateUser(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, at time.Time) error {
	params := sqlc.UpdateUserLastLoginParams{
		ID:        userID,
		LastLogin: pgconv.TimeToPgtype(at),
	}
	if err := r.queries.UpdateUserLastLogin(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}
