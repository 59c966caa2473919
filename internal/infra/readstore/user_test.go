//go:build unit

package readstore

import (
	"context"
	"database/sql"
	"testing"

	"stayhub/internal/infra"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func TestFindByID(t *testing.T) {
	testUser := builder.NewUserBuilder().BuildInfra()
	inactiveUser := builder.NewUserBuilder().AsInactive().BuildInfra()

	tests := []struct {
		name       string
		userID     uuid.UUID
		mockReturn sqlc.Users
		mockError  error
		wantActive bool
		wantError  bool
	}{
		{
			name:       "success - active user",
			userID:     testUser.ID,
			mockReturn: testUser,
			wantActive: true,
		},
		{
			name:       "success - inactive user (for validation)",
			userID:     inactiveUser.ID,
			mockReturn: inactiveUser,
			wantActive: false,
		},
		{
			name:       "user not found",
			userID:     uuid.New(),
			mockReturn: sqlc.Users{},
			mockError:  sql.ErrNoRows,
			wantError:  true,
		},
		{
			name:       "database error",
			userID:     testUser.ID,
			mockReturn: sqlc.Users{},
			mockError:  assert.AnError,
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("FindUserByID", mock.Anything, mock.Anything, tt.userID).Return(tt.mockReturn, tt.mockError)

			readStore := NewUserReadStore(mockQueries, nil)

			view, err := readStore.FindByID(context.Background(), tt.userID)

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, view)

				if tt.mockError == sql.ErrNoRows {
					assert.True(t, infra.IsKind(err, infra.KindNotFound))
				} else {
					assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.userID, view.ID)
				assert.Equal(t, tt.mockReturn.Email, view.Email)
				assert.Equal(t, tt.wantActive, view.IsActive)
				assert.Nil(t, view.LastLogin)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}
