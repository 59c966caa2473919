package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"stayhub/internal/domain/auth"
	"stayhub/internal/domain/user"
	reqdto "stayhub/internal/handler/dto/request"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/jwt"
	"stayhub/internal/pkg/password"
	"stayhub/internal/usecase/shared"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = auth.ErrInvalidCredentials
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
	ErrEmailTaken           = errs.Mark(errs.New("email already registered"), errs.ErrConflict)
)

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*RegisterResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*RegisterResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	u, err := user.NewUser(credentials.Email(), hash, req.DisplayName, a.clock.Now())
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, tx.DB(), u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	slog.Info("user registered", "user_id", u.ID())
	return &RegisterResult{
		UserID:    u.ID(),
		Email:     u.Email().Value(),
		CreatedAt: u.CreatedAt(),
	}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	creds, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	tokenPair, err := a.issueTokens(creds.ID)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		updateErr := tx.Users().UpdateLastLogin(ctx, tx.DB(), creds.ID, a.clock.Now())
		if updateErr != nil {
			slog.Warn("failed to update last login", "user_id", creds.ID, "error", updateErr.Error())
			// Continue without failing - this is not critical
		}
		return nil
	})
	if err != nil {
		slog.Warn("transaction failed during login", "user_id", creds.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:    creds.ID,
		TokenPair: tokenPair,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	// Validate user still exists and is active
	u, err := a.uow.CommandReads().UserByID(ctx, claims.UserID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}

	if !u.IsActive {
		return nil, ErrUserInactive
	}

	return a.issueTokens(claims.UserID)
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*shared.UserCredentials, error) {
	creds, err := a.uow.CommandReads().UserByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Return same error as password mismatch to prevent user enumeration attacks
		return nil, ErrInvalidCredentials
	}

	if !creds.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(creds.PasswordHash, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return creds, nil
}
