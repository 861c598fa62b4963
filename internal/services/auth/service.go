// Package auth registers, logs in and logs out against the task API and keeps
// the local session in step.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/taskdesk/internal/events"
	"github.com/thenoetrevino/taskdesk/internal/models"
	"github.com/thenoetrevino/taskdesk/internal/session"
	"github.com/thenoetrevino/taskdesk/internal/validation"
)

// API is the part of the REST client the auth service uses
type API interface {
	Register(ctx context.Context, creds models.Credentials) error
	Login(ctx context.Context, creds models.Credentials) (string, error)
}

// SessionStore persists the bearer token
type SessionStore interface {
	APIURL() string
	Current(ctx context.Context) (*models.Session, error)
	Save(ctx context.Context, token, email string) error
	Clear(ctx context.Context) error
}

// Status describes the local session
type Status struct {
	APIURL        string          `json:"api_url"`
	Authenticated bool            `json:"authenticated"`
	Email         string          `json:"email,omitempty"`
	Claims        *session.Claims `json:"claims,omitempty"`
}

// Service defines all auth-related business operations
type Service interface {
	Register(ctx context.Context, creds models.Credentials) error
	Login(ctx context.Context, creds models.Credentials) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) (*Status, error)
}

// service implements Service interface
type service struct {
	api         API
	store       SessionStore
	eventClient events.EventPublisher
}

// NewService creates a new auth service. eventClient may be nil.
func NewService(client API, store SessionStore, eventClient events.EventPublisher) Service {
	return &service{
		api:         client,
		store:       store,
		eventClient: eventClient,
	}
}

// normalize trims the email. Passwords are sent as typed.
func normalize(creds models.Credentials) models.Credentials {
	creds.Email = strings.TrimSpace(creds.Email)
	return creds
}

// Register creates an account. It does not log in.
func (s *service) Register(ctx context.Context, creds models.Credentials) error {
	creds = normalize(creds)
	if err := validation.Credentials(creds); err != nil {
		return err
	}

	if err := s.api.Register(ctx, creds); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}
	return nil
}

// Login exchanges credentials for a token and stores it, replacing any
// earlier session for the same API
func (s *service) Login(ctx context.Context, creds models.Credentials) error {
	creds = normalize(creds)

	// Login only checks presence; the server decides whether the pair is valid
	errs := &validation.Errors{}
	errs.Add("email", validation.Required("email", creds.Email))
	errs.Add("password", validation.Required("password", creds.Password))
	if err := errs.Err(); err != nil {
		return err
	}

	token, err := s.api.Login(ctx, creds)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	if token == "" {
		return fmt.Errorf("login failed: %w", ErrNoToken)
	}

	if err := s.store.Save(ctx, token, creds.Email); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	s.publishSessionEvent(true)
	return nil
}

// Logout removes the stored token. Logging out twice is not an error.
func (s *service) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	s.publishSessionEvent(false)
	return nil
}

// Status reports the local session. Claims are decoded without verification
// and are nil for opaque tokens.
func (s *service) Status(ctx context.Context) (*Status, error) {
	current, err := s.store.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	st := &Status{APIURL: s.store.APIURL()}
	if current == nil || current.Token == "" {
		return st, nil
	}

	st.Authenticated = true
	st.Email = current.Email
	if claims, err := session.DecodeClaims(current.Token); err == nil {
		st.Claims = claims
	}
	return st, nil
}

// publishSessionEvent tells other clients of the same API to switch views
func (s *service) publishSessionEvent(authenticated bool) {
	if s.eventClient == nil {
		return
	}

	if err := events.PublishWithRetry(s.eventClient, events.Event{
		Type:          events.EventSessionChanged,
		Scope:         s.store.APIURL(),
		Authenticated: authenticated,
	}, 3); err != nil {
		slog.Warn("failed to publish session event", "authenticated", authenticated, "error", err)
	}
}
