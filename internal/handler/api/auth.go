package api

import (
	"net/http"

	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/httperr"
	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/cookie"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/jwt"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errMissingRefreshToken = errs.New("refresh token required")

type AuthHandler struct {
	commands   commands.AuthCommands
	queries    queries.UserQueries
	jwtService *jwt.Service
	cfg        config.Config
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		commands:   cmds,
		queries:    q,
		jwtService: jwtService,
		cfg:        cfg,
	}
}

// @Summary Register owner account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.RegisterResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.commands.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrEmailTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Email already registered", nil)
		default:
			respondError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.RegisterResponse{
		ID:        result.UserID,
		Email:     result.Email,
		CreatedAt: result.CreatedAt,
	})
}

// @Summary User login
// @Description Login with email and password. Tokens are also set as HttpOnly cookies.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.commands.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidCredentials),
			errs.Is(err, commands.ErrUserNotFound),
			errs.Is(err, commands.ErrAuthenticationFailed):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		case errs.Is(err, commands.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	user, err := h.queries.GetCurrentUser(c.Request.Context(), result.UserID)
	if err != nil {
		h.abortUserError(c, err)
		return
	}

	h.setCookies(c, result.TokenPair)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.TokenPair.AccessToken,
		User:        user,
	})
}

// @Summary Refresh tokens
// @Description Exchanges the refresh token cookie (or body) for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest false "Refresh request"
// @Success 200 {object} resdto.RefreshResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := cookie.GetRefreshToken(c)
	if token == "" {
		var req reqdto.RefreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			token = req.RefreshToken
		}
	}
	if token == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingRefreshToken, "Refresh token required", nil)
		return
	}

	pair, err := h.commands.RefreshToken(c.Request.Context(), token)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid refresh token", nil)
		}
		return
	}

	h.setCookies(c, pair)
	c.JSON(http.StatusOK, resdto.RefreshResponse{AccessToken: pair.AccessToken})
}

// @Summary User logout
// @Description Clears the token cookies
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// tokens are stateless; dropping the cookies is all the server can do
	cookie.ClearTokenCookies(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.UserView
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	user, err := h.queries.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		h.abortUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) abortUserError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, queries.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
	case errs.Is(err, queries.ErrUserInactive):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func (h *AuthHandler) setCookies(c *gin.Context, pair *commands.TokenPair) {
	cookie.SetTokenCookies(c, h.cfg.Cookie,
		pair.AccessToken, pair.RefreshToken,
		h.jwtService.AccessTokenDuration(), h.jwtService.RefreshTokenDuration())
}
