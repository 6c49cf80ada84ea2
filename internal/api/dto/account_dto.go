package dto

import (
	"time"

	"github.com/spec-kit/account-service/internal/domain"
)

// UpdateRoleRequest payload for PATCH /admin/accounts/:id/role.
type UpdateRoleRequest struct {
	Role *string `json:"role"`
}

// UpdateStatusRequest payload for PATCH /admin/accounts/:id/status. Active
// binds to a strict JSON boolean; "true" or 1 fail decoding.
type UpdateStatusRequest struct {
	Active *bool `json:"active"`
}

// AccountResponse is the public view of an account.
type AccountResponse struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	Active    bool        `json:"active"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// NewAccountResponse maps a domain account, dropping the password hash.
func NewAccountResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		ID:        account.ID,
		Name:      account.Name,
		Email:     account.Email,
		Role:      account.Role,
		Active:    account.Active,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}
