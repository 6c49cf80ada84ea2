package events

import (
	"time"

	"github.com/spec-kit/account-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAccountRoleChanged   EventType = "account_role_changed"
	EventAccountStatusChanged EventType = "account_status_changed"
	EventAccountDeactivated   EventType = "account_deactivated"
)

// Actor identifies the admin performing a mutation.
type Actor struct {
	AccountID string      `json:"account_id"`
	Role      domain.Role `json:"role"`
}

// Event represents an audit event emitted by the account service.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	AccountID string      `json:"account_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// RoleChangedPayload payload.
type RoleChangedPayload struct {
	OldRole domain.Role `json:"old_role"`
	NewRole domain.Role `json:"new_role"`
}

// StatusChangedPayload payload.
type StatusChangedPayload struct {
	OldActive bool `json:"old_active"`
	NewActive bool `json:"new_active"`
}
