// Package session keeps the bearer token for the configured API and derives
// the authenticated flag from its presence.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/thenoetrevino/taskdesk/internal/database"
	"github.com/thenoetrevino/taskdesk/internal/models"
)

// Store reads and writes the session of one API base URL.
// It implements api.TokenSource.
type Store struct {
	repo   database.SessionRepository
	apiURL string

	mu     sync.RWMutex
	cached *models.Session
	loaded bool
}

// NewStore creates a store bound to apiURL
func NewStore(repo database.SessionRepository, apiURL string) *Store {
	return &Store{repo: repo, apiURL: apiURL}
}

// APIURL returns the base URL the store is scoped to
func (s *Store) APIURL() string {
	return s.apiURL
}

// Current returns the stored session, or nil when logged out
func (s *Store) Current(ctx context.Context) (*models.Session, error) {
	s.mu.RLock()
	if s.loaded {
		defer s.mu.RUnlock()
		return s.cached, nil
	}
	s.mu.RUnlock()

	return s.Reload(ctx)
}

// Reload rereads the session from the database, picking up logins and
// logouts made by other processes
func (s *Store) Reload(ctx context.Context) (*models.Session, error) {
	session, err := s.repo.GetSession(ctx, s.apiURL)
	if err != nil && !errors.Is(err, database.ErrSessionNotFound) {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = session
	s.loaded = true
	return session, nil
}

// Token implements api.TokenSource. It returns "" when logged out.
func (s *Store) Token(ctx context.Context) (string, error) {
	session, err := s.Current(ctx)
	if err != nil || session == nil {
		return "", err
	}
	return session.Token, nil
}

// IsAuthenticated reports whether a token is present
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	token, err := s.Token(ctx)
	return err == nil && token != ""
}

// Save persists a freshly issued token
func (s *Store) Save(ctx context.Context, token, email string) error {
	session := &models.Session{
		APIURL:    s.apiURL,
		Token:     token,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.SaveSession(ctx, session); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = session
	s.loaded = true
	return nil
}

// Clear removes the token
func (s *Store) Clear(ctx context.Context) error {
	if err := s.repo.DeleteSession(ctx, s.apiURL); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = nil
	s.loaded = true
	return nil
}

// Claims is what can be read from a JWT bearer token without the signing key
type Claims struct {
	Subject   string     `json:"subject,omitempty"`
	Email     string     `json:"email,omitempty"`
	Issuer    string     `json:"issuer,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// tokenClaims matches the claims the task API puts in its tokens
type tokenClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// ErrOpaqueToken indicates a token that is not a JWT
var ErrOpaqueToken = errors.New("token is opaque")

// DecodeClaims reads the claims of a JWT token without verifying its signature.
// The client never holds the key. The result is for display only.
func DecodeClaims(token string) (*Claims, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, &tokenClaims{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpaqueToken, err)
	}

	tc, ok := parsed.Claims.(*tokenClaims)
	if !ok {
		return nil, ErrOpaqueToken
	}

	claims := &Claims{
		Subject: tc.Subject,
		Email:   tc.Email,
		Issuer:  tc.Issuer,
	}
	if tc.ExpiresAt != nil {
		exp := tc.ExpiresAt.Time
		claims.ExpiresAt = &exp
	}
	return claims, nil
}
