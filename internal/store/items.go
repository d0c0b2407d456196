package store

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/lib/pq"
)

// unknownPlaylistName annotates items whose playlist cannot be resolved.
const unknownPlaylistName = "Unknown"

// Item is a single tracked entry inside a playlist. Rating and StatusNote
// are optional; nil is stored as an explicit NULL so an update can clear a
// previously set value.
type Item struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Status       Status     `json:"status"`
	StatusLabel  string     `json:"statusLabel,omitempty"`
	Rating       *int       `json:"rating,omitempty"`
	StatusNote   *string    `json:"statusNote,omitempty"`
	PlaylistID   int64      `json:"playlistId"`
	PlaylistName string     `json:"playlistName,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

// CreateItem persists a new item and returns it with the storage-assigned
// id and server creation timestamp.
func (s *Store) CreateItem(ctx context.Context, item Item) (*Item, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO items (name, status, rating, status_note, playlist_id, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at`,
		item.Name, item.Status, nullInt(item.Rating), nullStr(item.StatusNote), item.PlaylistID,
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return nil, s.writeErr("insert item", err)
	}
	item.StatusLabel = item.Status.Label()
	return &item, nil
}

// ListItemsForUser returns every item across the user's playlists, newest
// first, each annotated with its playlist name. A user with no playlists
// gets an empty result without an item query.
func (s *Store) ListItemsForUser(ctx context.Context, userID string) ([]*Item, error) {
	playlists, err := s.ListPlaylists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(playlists) == 0 {
		return []*Item{}, nil
	}

	ids := make([]int64, 0, len(playlists))
	names := make(map[int64]string, len(playlists))
	for _, playlist := range playlists {
		ids = append(ids, playlist.ID)
		names[playlist.ID] = playlist.Name
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, status, rating, status_note, playlist_id, created_at, updated_at
		FROM items
		WHERE playlist_id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, s.readErr("list user items", err)
	}

	items, err := s.scanItems(rows)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if name, ok := names[item.PlaylistID]; ok {
			item.PlaylistName = name
		} else {
			item.PlaylistName = unknownPlaylistName
		}
	}

	sortItemsNewestFirst(items)
	return items, nil
}

// ListItemsForPlaylist returns the items of one playlist, newest first.
func (s *Store) ListItemsForPlaylist(ctx context.Context, playlistID int64) ([]*Item, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, status, rating, status_note, playlist_id, created_at, updated_at
		FROM items
		WHERE playlist_id = $1`, playlistID)
	if err != nil {
		return nil, s.readErr("list playlist items", err)
	}

	items, err := s.scanItems(rows)
	if err != nil {
		return nil, err
	}

	sortItemsNewestFirst(items)
	return items, nil
}

// UpdateItem overwrites the editable fields of an item. This is a replace,
// not a merge: a nil rating or status note is written as NULL, clearing
// whatever was there before.
func (s *Store) UpdateItem(ctx context.Context, itemID int64, item Item) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE items
		SET name = $1, status = $2, rating = $3, status_note = $4, playlist_id = $5, updated_at = NOW()
		WHERE id = $6`,
		item.Name, item.Status, nullInt(item.Rating), nullStr(item.StatusNote), item.PlaylistID, itemID)
	if err != nil {
		return s.writeErr("update item", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return s.writeErr("rows affected", err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// DeleteItem removes an item by id. Deleting an absent id is a success.
func (s *Store) DeleteItem(ctx context.Context, itemID int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, itemID); err != nil {
		return s.deleteErr("delete item", err)
	}
	return nil
}

func (s *Store) scanItems(rows *sql.Rows) ([]*Item, error) {
	defer rows.Close()

	items := make([]*Item, 0)
	for rows.Next() {
		var item Item
		var rating sql.NullInt32
		var note sql.NullString
		var created, updated sql.NullTime
		if err := rows.Scan(&item.ID, &item.Name, &item.Status, &rating, &note,
			&item.PlaylistID, &created, &updated); err != nil {
			return nil, s.readErr("scan item", err)
		}
		if rating.Valid {
			value := int(rating.Int32)
			item.Rating = &value
		}
		if note.Valid {
			value := note.String
			item.StatusNote = &value
		}
		item.CreatedAt = created.Time
		if updated.Valid {
			at := updated.Time
			item.UpdatedAt = &at
		}
		item.StatusLabel = item.Status.Label()
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, s.readErr("iterate items", err)
	}
	return items, nil
}

func sortItemsNewestFirst(items []*Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}

func nullInt(value *int) interface{} {
	if value == nil {
		return nil
	}
	return *value
}

func nullStr(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}
