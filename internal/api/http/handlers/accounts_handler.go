package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-service/internal/api/dto"
	"github.com/spec-kit/account-service/internal/auth"
	"github.com/spec-kit/account-service/internal/domain"
	"github.com/spec-kit/account-service/internal/service"
	apperrors "github.com/spec-kit/account-service/pkg/util"
)

// AccountsHandler exposes admin account management endpoints. Routes are
// mounted behind the auth middleware and the admin role gate; handlers still
// refuse to run without an attached identity.
type AccountsHandler struct {
	accounts *service.AccountService
}

// NewAccountsHandler constructs handler.
func NewAccountsHandler(accountService *service.AccountService) *AccountsHandler {
	return &AccountsHandler{accounts: accountService}
}

// List handles GET /admin/accounts.
func (h *AccountsHandler) List(c *fiber.Ctx) error {
	includeInactive := parseBoolQuery(c, "include_inactive", false)
	accounts, err := h.accounts.List(c.Context(), includeInactive)
	if err != nil {
		return err
	}

	resp := make([]dto.AccountResponse, 0, len(accounts))
	for i := range accounts {
		resp = append(resp, dto.NewAccountResponse(&accounts[i]))
	}
	return c.JSON(fiber.Map{"success": true, "data": resp})
}

// Get handles GET /admin/accounts/:id.
func (h *AccountsHandler) Get(c *fiber.Ctx) error {
	account, err := h.accounts.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": dto.NewAccountResponse(account)})
}

// UpdateRole handles PATCH /admin/accounts/:id/role.
func (h *AccountsHandler) UpdateRole(c *fiber.Ctx) error {
	actor, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authentication required")
	}

	var req dto.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.Role == nil {
		return apperrors.NewValidationError("role required")
	}

	account, err := h.accounts.ChangeRole(c.Context(), actor, c.Params("id"), domain.Role(*req.Role))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": dto.NewAccountResponse(account)})
}

// UpdateStatus handles PATCH /admin/accounts/:id/status.
func (h *AccountsHandler) UpdateStatus(c *fiber.Ctx) error {
	actor, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authentication required")
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.Active == nil {
		return apperrors.NewValidationError("active must be a boolean")
	}

	account, err := h.accounts.ChangeStatus(c.Context(), actor, c.Params("id"), *req.Active)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": dto.NewAccountResponse(account)})
}

// Delete handles DELETE /admin/accounts/:id (soft delete).
func (h *AccountsHandler) Delete(c *fiber.Ctx) error {
	actor, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authentication required")
	}

	if err := h.accounts.Delete(c.Context(), actor, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"status": "deactivated"}})
}

func parseBoolQuery(c *fiber.Ctx, key string, fallback bool) bool {
	val := c.Query(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
