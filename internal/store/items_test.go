package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
)

func TestCreateItem(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	rating := 8
	note := "rewatching"
	created := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO items (name, status, rating, status_note, playlist_id, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at`)).
		WithArgs("Dune", string(StatusInProgress), 8, "rewatching", int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(21), created))

	item, err := s.CreateItem(context.Background(), Item{
		Name:       "Dune",
		Status:     StatusInProgress,
		Rating:     &rating,
		StatusNote: &note,
		PlaylistID: 5,
	})
	if err != nil {
		t.Fatalf("CreateItem error: %v", err)
	}
	if item.ID != 21 {
		t.Fatalf("expected item id 21, got %d", item.ID)
	}
	if item.StatusLabel != "Waiting" {
		t.Fatalf("expected status label Waiting, got %q", item.StatusLabel)
	}
	if !item.CreatedAt.Equal(created) {
		t.Fatalf("expected server timestamp %v, got %v", created, item.CreatedAt)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateItemAbsentOptionalFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	// Absent rating and note are stored as explicit NULLs.
	mock.ExpectQuery("INSERT INTO items").
		WithArgs("Dune", string(StatusPending), nil, nil, int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(22), time.Now()))

	item, err := s.CreateItem(context.Background(), Item{
		Name:       "Dune",
		Status:     StatusPending,
		PlaylistID: 5,
	})
	if err != nil {
		t.Fatalf("CreateItem error: %v", err)
	}
	if item.Rating != nil || item.StatusNote != nil {
		t.Fatalf("expected absent optional fields, got %+v", item)
	}
}

func TestListItemsForPlaylistSortsNewestFirst(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	t1 := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	mock.ExpectQuery("SELECT id, name, status, rating, status_note, playlist_id, created_at, updated_at").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "status", "rating", "status_note", "playlist_id", "created_at", "updated_at",
		}).
			AddRow(int64(1), "first", "pending", nil, nil, int64(5), t1, nil).
			AddRow(int64(2), "second", "completed", 9, "great", int64(5), t2, t2))

	items, err := s.ListItemsForPlaylist(context.Background(), 5)
	if err != nil {
		t.Fatalf("ListItemsForPlaylist error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != 2 || items[1].ID != 1 {
		t.Fatalf("expected newest first [2 1], got [%d %d]", items[0].ID, items[1].ID)
	}
	if items[0].Rating == nil || *items[0].Rating != 9 {
		t.Fatalf("expected rating 9, got %v", items[0].Rating)
	}
	if items[1].Rating != nil {
		t.Fatalf("expected absent rating, got %v", *items[1].Rating)
	}
	if items[0].StatusLabel != "Completed" || items[1].StatusLabel != "Ongoing" {
		t.Fatalf("unexpected labels %q, %q", items[0].StatusLabel, items[1].StatusLabel)
	}
}

func TestListItemsForUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	t1 := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	mock.ExpectQuery("SELECT id, user_id, name, created_at").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "created_at"}).
			AddRow(int64(5), "u1", "Books", t1).
			AddRow(int64(6), "u1", "Films", t1))

	mock.ExpectQuery("SELECT id, name, status, rating, status_note, playlist_id, created_at, updated_at").
		WithArgs(pq.Array([]int64{5, 6})).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "status", "rating", "status_note", "playlist_id", "created_at", "updated_at",
		}).
			AddRow(int64(1), "Dune", "pending", nil, nil, int64(5), t1, nil).
			AddRow(int64(2), "Alien", "completed", 10, nil, int64(6), t2, nil))

	items, err := s.ListItemsForUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListItemsForUser error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].PlaylistName != "Films" || items[1].PlaylistName != "Books" {
		t.Fatalf("unexpected playlist names %q, %q", items[0].PlaylistName, items[1].PlaylistName)
	}
	if items[0].ID != 2 {
		t.Fatalf("expected newest item first, got id %d", items[0].ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListItemsForUserAnnotatesUnknownPlaylist(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	t1 := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT id, user_id, name, created_at").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "created_at"}).
			AddRow(int64(5), "u1", "Books", t1))

	// One row points at a playlist outside the user's set and carries no
	// timestamp.
	mock.ExpectQuery("SELECT id, name, status, rating, status_note, playlist_id, created_at, updated_at").
		WithArgs(pq.Array([]int64{5})).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "status", "rating", "status_note", "playlist_id", "created_at", "updated_at",
		}).
			AddRow(int64(1), "Orphan", "pending", nil, nil, int64(999), nil, nil).
			AddRow(int64(2), "Dune", "completed", nil, nil, int64(5), t1, nil))

	items, err := s.ListItemsForUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListItemsForUser error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	// Missing timestamps sort earliest, so the orphan comes last.
	if items[0].ID != 2 || items[1].ID != 1 {
		t.Fatalf("expected order [2 1], got [%d %d]", items[0].ID, items[1].ID)
	}
	if items[1].PlaylistName != "Unknown" {
		t.Fatalf("expected Unknown playlist name, got %q", items[1].PlaylistName)
	}
	if items[0].PlaylistName != "Books" {
		t.Fatalf("expected Books playlist name, got %q", items[0].PlaylistName)
	}
	if !items[1].CreatedAt.IsZero() {
		t.Fatalf("expected zero createdAt for unstamped item, got %v", items[1].CreatedAt)
	}
}

func TestListItemsForPlaylistEmptyResult(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery("SELECT id, name, status, rating, status_note, playlist_id, created_at, updated_at").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "status", "rating", "status_note", "playlist_id", "created_at", "updated_at",
		}))

	items, err := s.ListItemsForPlaylist(context.Background(), 5)
	if err != nil {
		t.Fatalf("ListItemsForPlaylist error: %v", err)
	}
	if items == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(items) != 0 {
		t.Fatalf("expected 0 items, got %d", len(items))
	}
}

func TestListItemsForUserNoPlaylists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	// Only the playlist query runs; the item query is short-circuited.
	mock.ExpectQuery("SELECT id, user_id, name, created_at").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "created_at"}))

	items, err := s.ListItemsForUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListItemsForUser error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty result, got %d items", len(items))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateItemClearsAbsentFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE items
		SET name = $1, status = $2, rating = $3, status_note = $4, playlist_id = $5, updated_at = NOW()
		WHERE id = $6`)).
		WithArgs("Dune", string(StatusOnHold), nil, nil, int64(5), int64(21)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = s.UpdateItem(context.Background(), 21, Item{
		Name:       "Dune",
		Status:     StatusOnHold,
		PlaylistID: 5,
	})
	if err != nil {
		t.Fatalf("UpdateItem error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteItemIdempotent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM items WHERE id = $1`)).
		WithArgs(int64(21)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM items WHERE id = $1`)).
		WithArgs(int64(21)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := s.DeleteItem(context.Background(), 21); err != nil {
		t.Fatalf("first DeleteItem error: %v", err)
	}
	if err := s.DeleteItem(context.Background(), 21); err != nil {
		t.Fatalf("second DeleteItem error: %v", err)
	}
}
