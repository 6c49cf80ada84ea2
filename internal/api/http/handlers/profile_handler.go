package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-service/internal/api/dto"
	"github.com/spec-kit/account-service/internal/auth"
	"github.com/spec-kit/account-service/internal/service"
	apperrors "github.com/spec-kit/account-service/pkg/util"
)

// ProfileHandler serves the authenticated caller's own account.
type ProfileHandler struct {
	accounts *service.AccountService
}

// NewProfileHandler constructs handler.
func NewProfileHandler(accountService *service.AccountService) *ProfileHandler {
	return &ProfileHandler{accounts: accountService}
}

// Me handles GET /me and GET /profile. The role on the response comes from
// the attached identity, i.e. from the token claim under the default policy.
func (h *ProfileHandler) Me(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authentication required")
	}

	account, err := h.accounts.Get(c.Context(), identity.AccountID)
	if err != nil {
		return err
	}

	resp := dto.NewAccountResponse(account)
	resp.Role = identity.Role
	return c.JSON(fiber.Map{"success": true, "data": resp})
}
