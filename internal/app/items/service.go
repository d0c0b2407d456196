package items

import (
	"context"

	"medialog/internal/store"
)

// Store captures the persistence needs for item workflows.
type Store interface {
	CreateItem(ctx context.Context, item store.Item) (*store.Item, error)
	ListItemsForUser(ctx context.Context, userID string) ([]*store.Item, error)
	ListItemsForPlaylist(ctx context.Context, playlistID int64) ([]*store.Item, error)
	UpdateItem(ctx context.Context, itemID int64, item store.Item) error
	DeleteItem(ctx context.Context, itemID int64) error
}

// Service coordinates item operations.
type Service interface {
	Create(ctx context.Context, item store.Item) (*store.Item, error)
	ListForUser(ctx context.Context, userID string) ([]*store.Item, error)
	ListForPlaylist(ctx context.Context, playlistID int64) ([]*store.Item, error)
	Update(ctx context.Context, itemID int64, item store.Item) error
	Delete(ctx context.Context, itemID int64) error
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func validateItem(item store.Item) error {
	if item.Name == "" {
		return &store.ValidationError{Field: "name", Reason: "item name is required"}
	}
	if err := store.ValidateStatus(item.Status).Err("status"); err != nil {
		return err
	}
	if err := store.ValidateRating(item.Rating).Err("rating"); err != nil {
		return err
	}
	return nil
}

func (s *service) Create(ctx context.Context, item store.Item) (*store.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateItem(item); err != nil {
		return nil, err
	}
	return s.store.CreateItem(ctx, item)
}

func (s *service) ListForUser(ctx context.Context, userID string) ([]*store.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListItemsForUser(ctx, userID)
}

func (s *service) ListForPlaylist(ctx context.Context, playlistID int64) ([]*store.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListItemsForPlaylist(ctx, playlistID)
}

func (s *service) Update(ctx context.Context, itemID int64, item store.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateItem(item); err != nil {
		return err
	}
	return s.store.UpdateItem(ctx, itemID, item)
}

func (s *service) Delete(ctx context.Context, itemID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteItem(ctx, itemID)
}
