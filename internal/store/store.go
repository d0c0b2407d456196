package store

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrAccountExists signals the external identity already has an account.
	ErrAccountExists = errors.New("account already exists")
	// ErrPlaylistNotFound indicates the playlist does not exist or belongs to another user.
	ErrPlaylistNotFound = errors.New("playlist not found")
	// ErrItemNotFound indicates the item does not exist.
	ErrItemNotFound = errors.New("item not found")
)

// Store provides persistence backed by Postgres. It keeps no state of its
// own between calls, so a single Store is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
