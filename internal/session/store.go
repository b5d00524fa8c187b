package session

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// Session is the persisted token pair plus the user record returned at
// login, kept verbatim as JSON.
type Session struct {
	AccessToken  string
	RefreshToken string
	User         json.RawMessage
}

// Store persists the single current session in the local state database.
// Token pair and user record are always written and cleared together.
type Store struct {
	db *sql.DB
}

// NewStore wraps an opened state database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Save upserts the current session in one statement.
func (s *Store) Save(sess Session) error {
	_, err := s.db.Exec(`
		INSERT INTO session (id, access_token, refresh_token, user_json, updated_at)
		VALUES (1, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			access_token = excluded.access_token,
			refresh_token = excluded.refresh_token,
			user_json = excluded.user_json,
			updated_at = CURRENT_TIMESTAMP
	`, sess.AccessToken, sess.RefreshToken, string(sess.User))
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Load returns the persisted session, if any.
func (s *Store) Load() (Session, bool, error) {
	var sess Session
	var userJSON string
	err := s.db.QueryRow(`
		SELECT access_token, refresh_token, user_json
		FROM session
		WHERE id = 1
	`).Scan(&sess.AccessToken, &sess.RefreshToken, &userJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, false, nil
	}
	if err != nil {
		return Session{}, false, fmt.Errorf("load session: %w", err)
	}
	if userJSON != "" {
		sess.User = json.RawMessage(userJSON)
	}
	return sess, true, nil
}

// Clear removes the persisted session. Clearing an already-empty store is
// not an error.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM session WHERE id = 1`); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
