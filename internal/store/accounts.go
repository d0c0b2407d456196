package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Account links an external identity to a local profile record.
type Account struct {
	ID             int64     `json:"id"`
	ExternalUserID string    `json:"externalUserId"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CreateAccount inserts a profile record for an external identity and
// returns the storage-assigned id. The creation timestamp is assigned by
// the server.
func (s *Store) CreateAccount(ctx context.Context, externalUserID, username, email string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO accounts (external_user_id, username, email, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id`, externalUserID, username, email).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrAccountExists
		}
		return 0, s.writeErr("insert account", err)
	}
	return id, nil
}

// GetAccount returns the account for an external identity, or nil when no
// record exists. Should duplicates predate the unique index, the first row
// returned by the query wins.
func (s *Store) GetAccount(ctx context.Context, externalUserID string) (*Account, error) {
	var account Account
	err := s.db.QueryRowContext(ctx, `
		SELECT id, external_user_id, username, email, created_at
		FROM accounts
		WHERE external_user_id = $1
		LIMIT 1`, externalUserID).Scan(
		&account.ID, &account.ExternalUserID, &account.Username, &account.Email, &account.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, s.readErr("lookup account", err)
	}
	return &account, nil
}
