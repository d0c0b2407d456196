package accounts

import (
	"context"

	"medialog/internal/store"
)

// Store captures the persistence needs for account workflows.
type Store interface {
	CreateAccount(ctx context.Context, externalUserID, username, email string) (int64, error)
	GetAccount(ctx context.Context, externalUserID string) (*store.Account, error)
}

// Service coordinates account directory operations.
type Service interface {
	Create(ctx context.Context, externalUserID, username, email string) (int64, error)
	Get(ctx context.Context, externalUserID string) (*store.Account, error)
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Create(ctx context.Context, externalUserID, username, email string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := store.ValidateUsername(username).Err("username"); err != nil {
		return 0, err
	}
	return s.store.CreateAccount(ctx, externalUserID, username, email)
}

func (s *service) Get(ctx context.Context, externalUserID string) (*store.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.GetAccount(ctx, externalUserID)
}
