//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"stayhub/internal/domain/user"
	"stayhub/internal/infra"
	sqlc "stayhub/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserLastLoginParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockUserWriteQueries) CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

// sqlc.DBTX implementation for MockUserWriteQueries
func (m *MockUserWriteQueries) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockUserWriteQueries) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockUserWriteQueries) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

func TestUpdateLastLogin(t *testing.T) {
	testUserID := uuid.New()
	at := time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockError error
		wantError bool
	}{
		{
			name:      "success",
			mockError: nil,
			wantError: false,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("UpdateUserLastLogin", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.UpdateUserLastLoginParams) bool {
				return p.ID == testUserID && p.LastLogin.Time.Equal(at) && p.LastLogin.Valid
			})).Return(tt.mockError)

			repo := NewUserRepository(mockQueries, mockQueries)

			err := repo.UpdateLastLogin(context.Background(), mockQueries, testUserID, at)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestCreateUser(t *testing.T) {
	email, err := user.NewEmail("Owner@Example.com")
	require.NoError(t, err)
	u, err := user.NewUser(email, "hash", "Owner", time.Now())
	require.NoError(t, err)

	t.Run("maps entity to params", func(t *testing.T) {
		mockQueries := new(MockUserWriteQueries)
		mockQueries.On("CreateUser", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateUserParams) bool {
			return p.ID == u.ID() && p.Email == "owner@example.com" && p.PasswordHash == "hash"
		})).Return(sqlc.Users{ID: u.ID()}, nil)

		repo := NewUserRepository(mockQueries, mockQueries)
		require.NoError(t, repo.Create(context.Background(), mockQueries, u))
		mockQueries.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mockQueries := new(MockUserWriteQueries)
		mockQueries.On("CreateUser", mock.Anything, mock.Anything, mock.Anything).
			Return(sqlc.Users{}, &pgconn.PgError{Code: "23505"})

		repo := NewUserRepository(mockQueries, mockQueries)
		err := repo.Create(context.Background(), mockQueries, u)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}
