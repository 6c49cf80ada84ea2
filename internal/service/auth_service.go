package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/account-service/internal/auth"
	"github.com/spec-kit/account-service/internal/config"
	"github.com/spec-kit/account-service/internal/domain"
	"github.com/spec-kit/account-service/internal/repository"
	apperrors "github.com/spec-kit/account-service/pkg/util"
)

// AuthService coordinates registration and login flows. Token issuance lives
// here; verification is the middleware's job.
type AuthService struct {
	accounts   repository.AccountRepository
	tokenMgr   *auth.TokenManager
	limiter    *auth.LoginLimiter
	bcryptCost int
}

// NewAuthService builds the service. limiter may be nil when Redis is not
// configured; login throttling is then skipped.
func NewAuthService(cfg config.Config, accounts repository.AccountRepository, limiter *auth.LoginLimiter) *AuthService {
	return &AuthService{
		accounts:   accounts,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		limiter:    limiter,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates a new active account with the user role and issues a token.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.Account, string, time.Time, error) {
	if _, err := s.accounts.GetByEmail(ctx, email); err == nil {
		return nil, "", time.Time{}, apperrors.NewValidationError("email already registered")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	account := &domain.Account{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		Active:       true,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.GenerateToken(account.ID, account.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return account, token, exp, nil
}

// Login authenticates an account and issues a token. The role claim is bound
// at issuance time: a later role change only shows up in tokens issued after
// the change.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Account, string, time.Time, error) {
	if err := s.limiter.Check(ctx, email); err != nil {
		if errors.Is(err, auth.ErrLoginLocked) {
			return nil, "", time.Time{}, apperrors.NewUnauthenticated("too many failed login attempts")
		}
		// A limiter fault is a collaborator problem, not bad credentials.
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthenticated("invalid credentials")
		}
		return nil, "", time.Time{}, err
	}
	if !account.Active {
		return nil, "", time.Time{}, apperrors.NewUnauthenticated("invalid credentials")
	}
	if err := auth.ComparePassword(account.PasswordHash, password); err != nil {
		_ = s.limiter.RecordFailure(ctx, email)
		return nil, "", time.Time{}, apperrors.NewUnauthenticated("invalid credentials")
	}
	_ = s.limiter.Reset(ctx, email)

	token, exp, err := s.tokenMgr.GenerateToken(account.ID, account.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return account, token, exp, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
