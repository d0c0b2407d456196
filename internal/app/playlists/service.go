package playlists

import (
	"context"

	"medialog/internal/store"
)

// Store captures the persistence needs for playlist workflows.
type Store interface {
	CreatePlaylist(ctx context.Context, userID, name string) (*store.Playlist, error)
	ListPlaylists(ctx context.Context, userID string) ([]*store.Playlist, error)
	DeletePlaylist(ctx context.Context, playlistID int64, userID string) error
}

// Service coordinates playlist operations.
type Service interface {
	Create(ctx context.Context, userID, name string) (*store.Playlist, error)
	List(ctx context.Context, userID string) ([]*store.Playlist, error)
	Delete(ctx context.Context, playlistID int64, userID string) error
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Create(ctx context.Context, userID, name string) (*store.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, &store.ValidationError{Field: "name", Reason: "playlist name is required"}
	}
	return s.store.CreatePlaylist(ctx, userID, name)
}

func (s *service) List(ctx context.Context, userID string) ([]*store.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListPlaylists(ctx, userID)
}

func (s *service) Delete(ctx context.Context, playlistID int64, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeletePlaylist(ctx, playlistID, userID)
}
