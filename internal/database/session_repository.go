package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/thenoetrevino/taskdesk/internal/models"
)

// SessionRepo persists sessions in the sessions table
type SessionRepo struct {
	db *sql.DB
}

// NewSessionRepo wraps db
func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// GetSession returns the session for apiURL or ErrSessionNotFound
func (r *SessionRepo) GetSession(ctx context.Context, apiURL string) (*models.Session, error) {
	session := &models.Session{}
	err := r.db.QueryRowContext(ctx,
		"SELECT api_url, token, email, created_at FROM sessions WHERE api_url = ?",
		apiURL,
	).Scan(&session.APIURL, &session.Token, &session.Email, &session.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	return session, nil
}

// SaveSession inserts or replaces the session for session.APIURL
func (r *SessionRepo) SaveSession(ctx context.Context, session *models.Session) error {
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions (api_url, token, email, created_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(api_url) DO UPDATE SET
			token = excluded.token,
			email = excluded.email,
			created_at = excluded.created_at
	`, session.APIURL, session.Token, session.Email, session.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// DeleteSession removes the session for apiURL. Deleting a missing session is not an error.
func (r *SessionRepo) DeleteSession(ctx context.Context, apiURL string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM sessions WHERE api_url = ?", apiURL); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
