package main

import (
	"context"
	"errors"
	"fmt"

	"medialog/internal/store"
)

const demoUserID = "demo"

// bootstrapDemoData seeds a demo account with one playlist of tracked
// items so a fresh instance has something to show.
func bootstrapDemoData(ctx context.Context, dataStore *store.Store) error {
	if err := ensureDemoAccount(ctx, dataStore); err != nil {
		return err
	}
	return ensureDemoItems(ctx, dataStore)
}

func ensureDemoAccount(ctx context.Context, dataStore *store.Store) error {
	account, err := dataStore.GetAccount(ctx, demoUserID)
	if err != nil {
		return fmt.Errorf("lookup demo account: %w", err)
	}
	if account != nil {
		return nil
	}

	if _, err := dataStore.CreateAccount(ctx, demoUserID, "Demo User", "demo@local.com"); err != nil &&
		!errors.Is(err, store.ErrAccountExists) {
		return fmt.Errorf("bootstrap demo account: %w", err)
	}
	return nil
}

func ensureDemoItems(ctx context.Context, dataStore *store.Store) error {
	playlists, err := dataStore.ListPlaylists(ctx, demoUserID)
	if err != nil {
		return fmt.Errorf("list demo playlists: %w", err)
	}
	if len(playlists) > 0 {
		return nil
	}

	playlist, err := dataStore.CreatePlaylist(ctx, demoUserID, "Watchlist")
	if err != nil {
		return fmt.Errorf("bootstrap demo playlist: %w", err)
	}

	intPtr := func(v int) *int { return &v }
	strPtr := func(v string) *string { return &v }

	seed := []store.Item{
		{
			Name:       "The Expanse",
			Status:     store.StatusInProgress,
			Rating:     intPtr(9),
			PlaylistID: playlist.ID,
		},
		{
			Name:       "Dune",
			Status:     store.StatusCompleted,
			Rating:     intPtr(8),
			StatusNote: strPtr("worth a reread"),
			PlaylistID: playlist.ID,
		},
		{
			Name:       "Foundation",
			Status:     store.StatusPending,
			PlaylistID: playlist.ID,
		},
	}

	for _, item := range seed {
		if _, err := dataStore.CreateItem(ctx, item); err != nil {
			return fmt.Errorf("bootstrap demo item %q: %w", item.Name, err)
		}
	}
	return nil
}
