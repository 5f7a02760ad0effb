package sessions

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/iammorganparry/clive/apps/todo/internal/models"
	"github.com/iammorganparry/clive/apps/todo/internal/store"
)

// ErrCorruptState is returned by GetByID when a stored row cannot be decoded.
var ErrCorruptState = errors.New("corrupt session state")

// state is the serialized part of a session; id and timestamps live in
// their own columns.
type state struct {
	Lists []models.List `json:"lists"`
	Flash *models.Flash `json:"flash,omitempty"`
}

// SessionStore handles Session persistence on SQLite.
type SessionStore struct {
	db *store.DB
}

// NewSessionStore creates a new session store.
func NewSessionStore(db *store.DB) *SessionStore {
	return &SessionStore{db: db}
}

// GetByID fetches a session by ID. It returns nil, nil when none exists.
func (s *SessionStore) GetByID(id string) (*models.Session, error) {
	var sess models.Session
	var raw string

	err := s.db.QueryRow(`
		SELECT id, state, created_at, updated_at
		FROM sessions WHERE id = ?
	`, id).Scan(&sess.ID, &raw, &sess.CreatedAt, &sess.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var st state
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	sess.Lists = st.Lists
	sess.Flash = st.Flash
	if sess.Lists == nil {
		sess.Lists = []models.List{}
	}
	return &sess, nil
}

// Save upserts the session and bumps updated_at. The whole state is written,
// so concurrent requests on one session resolve as last write wins.
func (s *SessionStore) Save(sess *models.Session) error {
	raw, err := json.Marshal(state{Lists: sess.Lists, Flash: sess.Flash})
	if err != nil {
		return fmt.Errorf("encode session state: %w", err)
	}

	now := time.Now().Unix()
	if sess.CreatedAt == 0 {
		sess.CreatedAt = now
	}
	sess.UpdatedAt = now

	_, err = s.db.Exec(`
		INSERT INTO sessions (id, state, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET state = excluded.state, updated_at = excluded.updated_at
	`, sess.ID, string(raw), sess.CreatedAt, sess.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Delete removes a session.
func (s *SessionStore) Delete(id string) error {
	_, err := s.db.Exec(`DELETE FROM sessions WHERE id = ?`, id)
	return err
}

// PurgeExpired deletes sessions not updated since before (unix seconds) and
// returns how many were removed.
func (s *SessionStore) PurgeExpired(before int64) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM sessions WHERE updated_at < ?`, before)
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	return res.RowsAffected()
}
