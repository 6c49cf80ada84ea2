package service

import (
	"github.com/spec-kit/account-service/internal/domain"
	apperrors "github.com/spec-kit/account-service/pkg/util"
)

// Self-protection rules for admin mutations. These are business rules, not
// authentication rules: they run after the role gate and before any write,
// and a violation terminates the operation with no partial state. Keeping
// them as plain functions lets them be tested without the HTTP layer.

// CheckRoleChange rejects self role changes and roles outside {user, admin}.
func CheckRoleChange(actorID, targetID string, role domain.Role) error {
	if actorID == targetID {
		return apperrors.NewValidationError("cannot change own role")
	}
	if !role.Valid() {
		return apperrors.NewValidationError("invalid role")
	}
	return nil
}

// CheckStatusChange rejects an admin deactivating their own account.
func CheckStatusChange(actorID, targetID string, active bool) error {
	if actorID == targetID && !active {
		return apperrors.NewValidationError("cannot deactivate own account")
	}
	return nil
}

// CheckDelete rejects an admin soft-deleting their own account.
func CheckDelete(actorID, targetID string) error {
	if actorID == targetID {
		return apperrors.NewValidationError("cannot delete own account")
	}
	return nil
}
