//go:build unit

package user_test

import (
	"strings"
	"testing"

	"stayhub/internal/domain/user"
	"stayhub/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {

		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("test@example.com")
		expected, err := user.NewUser(email, "hashed_password", "Test Owner", builder.BaseTime)
		require.NoError(t, err)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
		assert.Equal(t, builder.BaseTime, actual.CreatedAt())
	})

	t.Run("メールアドレスは小文字に正規化", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().WithEmail("  Owner@Example.COM ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "owner@example.com", actual.Email().Value())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なメールアドレスOK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "空のメールアドレスNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "無効な形式NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "@なしNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("表示名検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "空の表示名OK",
				mutate: func(b *builder.UserBuilder) { b.WithDisplayName("") },
			},
			{
				name:   "100文字OK",
				mutate: func(b *builder.UserBuilder) { b.WithDisplayName(strings.Repeat("a", 100)) },
			},
			{
				name:   "101文字NG",
				mutate: func(b *builder.UserBuilder) { b.WithDisplayName(strings.Repeat("a", 101)) },
				errIs:  user.ErrDisplayNameTooLong,
			},
		})
	})

	t.Run("パスワードハッシュ検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "空のハッシュNG",
				mutate: func(b *builder.UserBuilder) { b.WithPasswordHash("") },
				errIs:  user.ErrEmptyPasswordHash,
			},
		})
	})
}

func TestPassword(t *testing.T) {
	_, err := user.NewPassword("short")
	require.ErrorIs(t, err, user.ErrPasswordTooWeak)

	p, err := user.NewPassword("longenough")
	require.NoError(t, err)
	assert.Equal(t, "longenough", p.Value())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
