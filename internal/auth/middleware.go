package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/account-service/internal/domain"
	"github.com/spec-kit/account-service/internal/repository"
	apperrors "github.com/spec-kit/account-service/pkg/util"
)

const identityKey = "auth_identity"

// Identity is the per-request record of the authenticated caller. It exists
// on the request if and only if verification succeeded, and is discarded with
// the request.
type Identity struct {
	AccountID string
	Role      domain.Role
}

// RoleSource selects where the attached role comes from.
type RoleSource int

const (
	// RoleFromClaim trusts the token's role claim. Already-issued tokens
	// keep their privilege until expiry even if the stored role changes.
	RoleFromClaim RoleSource = iota
	// RoleFromAccount re-reads the role from the freshly fetched account
	// record, trading a claim-staleness window for store trust.
	RoleFromAccount
)

// Option configures the middleware.
type Option func(*AuthMiddleware)

// WithRoleSource overrides the default claim-trusting role policy.
func WithRoleSource(src RoleSource) Option {
	return func(m *AuthMiddleware) { m.roleSource = src }
}

// AuthMiddleware validates bearer tokens and attaches caller identity.
type AuthMiddleware struct {
	tokens     *TokenManager
	accounts   repository.AccountRepository
	roleSource RoleSource
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, accounts repository.AccountRepository, opts ...Option) *AuthMiddleware {
	m := &AuthMiddleware{tokens: tokens, accounts: accounts, roleSource: RoleFromClaim}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Handle enforces authentication for protected routes. Steps run in strict
// order, each a termination point: header extraction, token verification,
// account resolution, identity attachment.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return apperrors.NewUnauthenticated("no token or invalid format")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			return apperrors.NewUnauthenticated("token expired")
		}
		return apperrors.NewUnauthenticated("invalid token")
	}

	// The account lookup is the de facto revocation mechanism: deactivating
	// an account invalidates its outstanding tokens immediately.
	account, err := m.accounts.GetByID(c.Context(), claims.AccountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewUnauthenticated("account not found or inactive")
		}
		// A store fault is not a credential problem; surface it as 500.
		return apperrors.NewInternalError(err)
	}
	if !account.Active {
		return apperrors.NewUnauthenticated("account not found or inactive")
	}

	identity := &Identity{AccountID: claims.AccountID, Role: claims.Role}
	if m.roleSource == RoleFromAccount {
		identity.Role = account.Role
	}

	c.Locals(identityKey, identity)
	return c.Next()
}

// IdentityFromContext retrieves the authenticated caller.
func IdentityFromContext(c *fiber.Ctx) (*Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	identity, ok := val.(*Identity)
	return identity, ok
}
