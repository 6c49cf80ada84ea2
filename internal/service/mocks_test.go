package service

import (
	"context"
	"strconv"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/account-service/internal/domain"
	"github.com/spec-kit/account-service/internal/events"
)

// memAccountRepo is an in-memory AccountRepository for service tests.
type memAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]*domain.Account
	nextID   int
	err      error
}

func newMemAccountRepo(accounts ...*domain.Account) *memAccountRepo {
	repo := &memAccountRepo{accounts: make(map[string]*domain.Account), nextID: 1}
	for _, account := range accounts {
		repo.accounts[account.ID] = account
	}
	return repo
}

func (r *memAccountRepo) Create(_ context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	account.ID = "acct-" + strconv.Itoa(r.nextID)
	r.nextID++
	copied := *account
	r.accounts[account.ID] = &copied
	return nil
}

func (r *memAccountRepo) GetByID(_ context.Context, id string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	account, ok := r.accounts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *account
	return &copied, nil
}

func (r *memAccountRepo) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, account := range r.accounts {
		if account.Email == email {
			copied := *account
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memAccountRepo) List(_ context.Context, includeInactive bool) ([]domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Account
	for _, account := range r.accounts {
		if account.Active || includeInactive {
			out = append(out, *account)
		}
	}
	return out, nil
}

func (r *memAccountRepo) UpdateRole(_ context.Context, id string, role domain.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	account, ok := r.accounts[id]
	if !ok {
		return pgx.ErrNoRows
	}
	account.Role = role
	return nil
}

func (r *memAccountRepo) UpdateActive(_ context.Context, id string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	account, ok := r.accounts[id]
	if !ok {
		return pgx.ErrNoRows
	}
	account.Active = active
	return nil
}

// captureDispatcher records published events.
type captureDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *captureDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *captureDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *captureDispatcher) published() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]events.Event{}, d.events...)
}
