package auth_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/account-service/internal/api/http"
	"github.com/spec-kit/account-service/internal/auth"
	"github.com/spec-kit/account-service/internal/domain"
	"github.com/spec-kit/account-service/internal/observability"
)

func decodeFailureResp(t *testing.T, resp *http.Response) failureBody {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return decodeFailure(t, body)
}

func newGatedApp(required domain.Role, mw *auth.AuthMiddleware) *fiber.App {
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	handlers := []fiber.Handler{}
	if mw != nil {
		handlers = append(handlers, mw.Handle)
	}
	handlers = append(handlers, auth.RequireRole(required), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})
	app.Get("/gated", handlers...)
	return app
}

func TestRequireRoleWithoutIdentity(t *testing.T) {
	// The gate composed without the verifier must fail closed, not crash.
	app := newGatedApp(domain.RoleAdmin, nil)

	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	failure := decodeFailureResp(t, resp)
	assert.Equal(t, "authentication required", failure.Message)
}

func TestRequireRoleMismatch(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", 60)
	mw := auth.NewAuthMiddleware(tokens, newFakeAccountRepo(activeAccount("u1", domain.RoleUser)))
	app := newGatedApp(domain.RoleAdmin, mw)

	token, _, err := tokens.GenerateToken("u1", domain.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	failure := decodeFailureResp(t, resp)
	assert.False(t, failure.Success)
	assert.Equal(t, "insufficient privilege", failure.Message)
}

func TestRequireRoleExactMatchOnly(t *testing.T) {
	// No hierarchy: an admin token does not satisfy a user-gated route.
	tokens := auth.NewTokenManager("test-secret", 60)
	mw := auth.NewAuthMiddleware(tokens, newFakeAccountRepo(activeAccount("a1", domain.RoleAdmin)))
	app := newGatedApp(domain.RoleUser, mw)

	token, _, err := tokens.GenerateToken("a1", domain.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireRoleMatchProceeds(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", 60)
	mw := auth.NewAuthMiddleware(tokens, newFakeAccountRepo(activeAccount("a1", domain.RoleAdmin)))
	app := newGatedApp(domain.RoleAdmin, mw)

	token, _, err := tokens.GenerateToken("a1", domain.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
