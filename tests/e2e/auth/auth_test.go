//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"stayhub/internal/handler/dto/request"
	"stayhub/internal/handler/dto/response"
	"stayhub/tests/common/authtest"
	"stayhub/tests/common/dbtest"
	"stayhub/tests/common/httptest"
	"stayhub/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	refreshURL  = "/api/auth/refresh"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "test@example.com")
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com")
	dbtest.DeactivateUser(s.T(), s.DB, "inactive@example.com")
}

func (s *authSuite) TestRegister() {
	s.Run("新規登録後にログインできる", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, request.RegisterRequest{
			Email:       "New.Owner@Example.com",
			Password:    "supersecret",
			DisplayName: "New Owner",
		}, "")
		var res response.RegisterResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
		require.Equal(t, "new.owner@example.com", res.Email)

		authtest.LoginUser(t, s.Router, "new.owner@example.com", "supersecret")
	})

	s.Run("登録済みメールは409", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, request.RegisterRequest{
			Email:    "test@example.com",
			Password: "supersecret",
		}, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Email already registered")
	})

	s.Run("短いパスワードは400", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, request.RegisterRequest{
			Email:    "short@example.com",
			Password: "short",
		}, "")
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "正常なログイン",
			email:          "test@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusOK,
			description:    "有効な認証情報でログインできること",
		},
		{
			name:           "存在しないユーザー",
			email:          "nonexistent@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusUnauthorized,
			description:    "存在しないユーザーでログインできないこと",
		},
		{
			name:           "間違ったパスワード",
			email:          "test@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "間違ったパスワードでログインできないこと",
		},
		{
			name:           "非アクティブユーザー",
			email:          "inactive@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusForbidden,
			description:    "非アクティブユーザーはログインできないこと",
		},
		{
			name:           "空のメールアドレス",
			email:          "",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusBadRequest,
			description:    "空のメールアドレスは拒否されること",
		},
		{
			name:           "空のパスワード",
			email:          "test@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
			description:    "空のパスワードは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var loginRes response.LoginResponse
				err := httptest.DecodeResponseBody(t, w.Body, &loginRes)
				require.NoError(t, err)
				require.NotEmpty(t, loginRes.AccessToken, "アクセストークンが空")
				require.NotNil(t, loginRes.User)
				require.Equal(t, tt.email, loginRes.User.Email)
				require.NotNil(t, httptest.ExtractCookie(w, "refresh_token"), "リフレッシュトークンのCookieがない")

				var lastLogin any
				err = s.DB.QueryRow(s.T().Context(), "SELECT last_login FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_loginが更新されていない")
			}
		})
	}
}

func (s *authSuite) TestRefresh() {
	s.Run("Cookieでリフレッシュ", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "test@example.com", Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, w.Code)

		refresh := httptest.ExtractCookie(w, "refresh_token")
		require.NotNil(t, refresh)

		w = httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil, []*http.Cookie{refresh}, "")
		var res response.RefreshResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.NotEmpty(t, res.AccessToken)
	})

	s.Run("無効なリフレッシュトークン", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: "invalid-refresh-token"}, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid refresh token")
	})

	s.Run("リフレッシュトークンなし", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Refresh token required")
	})
}

func (s *authSuite) TestLogout() {
	s.Run("正常なログアウト", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "test@example.com", dbtest.TestPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)
	})

	s.Run("トークンなし", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestMe() {
	s.Run("ユーザー情報取得", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		require.Contains(t, body, "owner@example.com")
		require.NotContains(t, body, "password", "レスポンスにパスワード情報が含まれている")
	})

	s.Run("無効なトークン", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "invalid-token")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("期限切れトークンの拒否", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "expiry@example.com")
		expired := s.jwt.CreateExpiredToken(t, userID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code, "期限切れトークンは拒否されるべき")
	})

	s.Run("生成したトークンで認証できる", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "generated@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, s.jwt.GenerateToken(t, userID))
		require.Equal(t, http.StatusOK, w.Code)
	})
}
