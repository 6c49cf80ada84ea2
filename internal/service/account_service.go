package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/account-service/internal/auth"
	"github.com/spec-kit/account-service/internal/domain"
	"github.com/spec-kit/account-service/internal/events"
	"github.com/spec-kit/account-service/internal/repository"
	apperrors "github.com/spec-kit/account-service/pkg/util"
)

// AccountService implements admin account management. Every mutation runs
// the self-protection policy first and publishes an audit event on success.
type AccountService struct {
	accounts   repository.AccountRepository
	dispatcher events.Dispatcher
}

// NewAccountService builds the service.
func NewAccountService(accounts repository.AccountRepository, dispatcher events.Dispatcher) *AccountService {
	return &AccountService{accounts: accounts, dispatcher: dispatcher}
}

// Get returns a single account.
func (s *AccountService) Get(ctx context.Context, id string) (*domain.Account, error) {
	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("account")
		}
		return nil, err
	}
	return account, nil
}

// List returns accounts, optionally including deactivated ones.
func (s *AccountService) List(ctx context.Context, includeInactive bool) ([]domain.Account, error) {
	return s.accounts.List(ctx, includeInactive)
}

// ChangeRole updates the target account's role on behalf of the actor.
func (s *AccountService) ChangeRole(ctx context.Context, actor *auth.Identity, targetID string, role domain.Role) (*domain.Account, error) {
	if err := CheckRoleChange(actor.AccountID, targetID, role); err != nil {
		return nil, err
	}

	target, err := s.Get(ctx, targetID)
	if err != nil {
		return nil, err
	}
	oldRole := target.Role

	if err := s.accounts.UpdateRole(ctx, targetID, role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("account")
		}
		return nil, err
	}
	target.Role = role

	s.publish(ctx, events.EventAccountRoleChanged, actor, targetID,
		events.RoleChangedPayload{OldRole: oldRole, NewRole: role})
	return target, nil
}

// ChangeStatus activates or deactivates the target account.
func (s *AccountService) ChangeStatus(ctx context.Context, actor *auth.Identity, targetID string, active bool) (*domain.Account, error) {
	if err := CheckStatusChange(actor.AccountID, targetID, active); err != nil {
		return nil, err
	}

	target, err := s.Get(ctx, targetID)
	if err != nil {
		return nil, err
	}
	oldActive := target.Active

	if err := s.accounts.UpdateActive(ctx, targetID, active); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("account")
		}
		return nil, err
	}
	target.Active = active

	s.publish(ctx, events.EventAccountStatusChanged, actor, targetID,
		events.StatusChangedPayload{OldActive: oldActive, NewActive: active})
	return target, nil
}

// Delete soft-deletes the target account by deactivating it, preserving the
// record for audit and recovery.
func (s *AccountService) Delete(ctx context.Context, actor *auth.Identity, targetID string) error {
	if err := CheckDelete(actor.AccountID, targetID); err != nil {
		return err
	}

	if _, err := s.Get(ctx, targetID); err != nil {
		return err
	}

	if err := s.accounts.UpdateActive(ctx, targetID, false); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("account")
		}
		return err
	}

	s.publish(ctx, events.EventAccountDeactivated, actor, targetID, nil)
	return nil
}

func (s *AccountService) publish(ctx context.Context, eventType events.EventType, actor *auth.Identity, targetID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		AccountID: targetID,
		Actor:     events.Actor{AccountID: actor.AccountID, Role: actor.Role},
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
