package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/account-service/internal/domain"
	apperrors "github.com/spec-kit/account-service/pkg/util"
)

func assertValidation(t *testing.T, err error, message string) {
	t.Helper()
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, apperrors.CodeValidation, domainErr.Code)
	assert.Equal(t, message, domainErr.Message)
}

func TestCheckRoleChange(t *testing.T) {
	t.Run("self change rejected regardless of role", func(t *testing.T) {
		for _, role := range []domain.Role{domain.RoleUser, domain.RoleAdmin} {
			assertValidation(t, CheckRoleChange("a1", "a1", role), "cannot change own role")
		}
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		assertValidation(t, CheckRoleChange("a1", "u1", "superadmin"), "invalid role")
		assertValidation(t, CheckRoleChange("a1", "u1", ""), "invalid role")
	})

	t.Run("valid change on another account allowed", func(t *testing.T) {
		assert.NoError(t, CheckRoleChange("a1", "u1", domain.RoleAdmin))
		assert.NoError(t, CheckRoleChange("a1", "u1", domain.RoleUser))
	})
}

func TestCheckStatusChange(t *testing.T) {
	assertValidation(t, CheckStatusChange("a1", "a1", false), "cannot deactivate own account")
	assert.NoError(t, CheckStatusChange("a1", "a1", true))
	assert.NoError(t, CheckStatusChange("a1", "u1", false))
}

func TestCheckDelete(t *testing.T) {
	assertValidation(t, CheckDelete("a1", "a1"), "cannot delete own account")
	assert.NoError(t, CheckDelete("a1", "u1"))
}
