package store

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
)

// Playlist is a named collection of tracked items owned by one user.
type Playlist struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreatePlaylist persists a new playlist and returns it with the
// server-assigned creation timestamp.
func (s *Store) CreatePlaylist(ctx context.Context, userID, name string) (*Playlist, error) {
	playlist := Playlist{UserID: userID, Name: name}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO playlists (user_id, name, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at`, userID, name).Scan(&playlist.ID, &playlist.CreatedAt)
	if err != nil {
		return nil, s.writeErr("insert playlist", err)
	}
	return &playlist, nil
}

// ListPlaylists returns all playlists for a user, oldest first.
func (s *Store) ListPlaylists(ctx context.Context, userID string) ([]*Playlist, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, name, created_at
		FROM playlists
		WHERE user_id = $1`, userID)
	if err != nil {
		return nil, s.readErr("list playlists", err)
	}
	defer rows.Close()

	playlists := make([]*Playlist, 0)
	for rows.Next() {
		var playlist Playlist
		var created sql.NullTime
		if err := rows.Scan(&playlist.ID, &playlist.UserID, &playlist.Name, &created); err != nil {
			return nil, s.readErr("scan playlist", err)
		}
		// A row without a timestamp scans as the zero time and sorts earliest.
		playlist.CreatedAt = created.Time
		playlists = append(playlists, &playlist)
	}
	if err := rows.Err(); err != nil {
		return nil, s.readErr("iterate playlists", err)
	}

	// Ordering in storage alongside the equality filter would need a
	// composite index, so the sort happens here.
	sort.SliceStable(playlists, func(i, j int) bool {
		return playlists[i].CreatedAt.Before(playlists[j].CreatedAt)
	})
	return playlists, nil
}

// DeletePlaylist removes a playlist together with every item inside it.
// The cascade is best effort: if an item delete fails, already deleted
// items stay gone and the playlist row is left untouched.
func (s *Store) DeletePlaylist(ctx context.Context, playlistID int64, userID string) error {
	if err := s.deletePlaylistItems(ctx, playlistID); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `
		DELETE FROM playlists
		WHERE id = $1 AND user_id = $2`, playlistID, userID)
	if err != nil {
		return s.deleteErr("delete playlist", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return s.deleteErr("rows affected", err)
	}
	if affected == 0 {
		return ErrPlaylistNotFound
	}
	return nil
}

// deletePlaylistItems fans out one delete per item and waits for all of
// them to finish. Swapping in a transactional cascade only touches this
// helper.
func (s *Store) deletePlaylistItems(ctx context.Context, playlistID int64) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id
		FROM items
		WHERE playlist_id = $1`, playlistID)
	if err != nil {
		return s.readErr("list playlist items", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return s.readErr("scan item id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return s.readErr("iterate item ids", err)
	}

	var g errgroup.Group
	for _, id := range ids {
		g.Go(func() error {
			if _, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id); err != nil {
				return s.deleteErr("delete item", err)
			}
			return nil
		})
	}
	return g.Wait()
}
