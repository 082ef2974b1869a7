// Package session persists the authenticated session (gateway JWT plus
// the current user record) in a small SQLite file next to the terminal,
// so a restart does not force a new login. Nothing else is stored
// locally; all catalogue and tab data lives on the gateway.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"comanda/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS session (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	token TEXT NOT NULL,
	user_json TEXT NOT NULL,
	saved_at TIMESTAMP NOT NULL
);`

// Store is the on-disk session cache. A store holds at most one session.
type Store struct {
	db     *sqlx.DB
	logger zerolog.Logger
}

// Open opens (creating if needed) the session database at path.
func Open(path string, logger zerolog.Logger) (*Store, error) {
	db, err := sqlx.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping session database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialise session schema: %w", err)
	}
	return &Store{
		db:     db,
		logger: logger.With().Str("component", "session").Logger(),
	}, nil
}

// Save replaces the stored session.
func (s *Store) Save(ctx context.Context, sess model.Session) error {
	userJSON, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO session (id, token, user_json, saved_at) VALUES (1, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET token = excluded.token,
		                               user_json = excluded.user_json,
		                               saved_at = excluded.saved_at`,
		sess.Token, string(userJSON), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Debug().Str("user", sess.User.Email).Msg("session saved")
	return nil
}

// Load returns the stored session, or nil when logged out. A corrupt row
// is treated as logged out and reported, never fatal.
func (s *Store) Load(ctx context.Context) (*model.Session, error) {
	var row struct {
		Token    string `db:"token"`
		UserJSON string `db:"user_json"`
	}
	err := s.db.GetContext(ctx, &row, `SELECT token, user_json FROM session WHERE id = 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var user model.User
	if err := json.Unmarshal([]byte(row.UserJSON), &user); err != nil {
		s.logger.Warn().Err(err).Msg("stored session is corrupt, treating as logged out")
		return nil, nil
	}
	return &model.Session{Token: row.Token, User: user}, nil
}

// Clear removes the stored session.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE id = 1`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.logger.Debug().Msg("session cleared")
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
