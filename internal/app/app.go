package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/taskdesk/internal/api"
	"github.com/thenoetrevino/taskdesk/internal/config"
	"github.com/thenoetrevino/taskdesk/internal/database"
	"github.com/thenoetrevino/taskdesk/internal/events"
	authservice "github.com/thenoetrevino/taskdesk/internal/services/auth"
	taskservice "github.com/thenoetrevino/taskdesk/internal/services/task"
	"github.com/thenoetrevino/taskdesk/internal/session"
)

// App holds all application services and provides dependency injection.
// One App talks to exactly one API base URL.
type App struct {
	cfg *config.Config

	// Session is the token store for cfg.APIURL. The API client reads its
	// bearer token from here on every request.
	Session *session.Store
	API     *api.Client

	// Event system for live updates
	eventClient    events.EventPublisher
	stopForwarding func()

	// Service layer (business logic)
	AuthService authservice.Service
	TaskService taskservice.Service
}

// New creates a new App with all services initialized.
// db must carry the client schema; the caller keeps ownership of it.
func New(cfg *config.Config, db *sql.DB, opts ...Option) (*App, error) {
	options := &appConfig{}
	for _, opt := range opts {
		opt(options)
	}

	store := session.NewStore(database.NewSessionRepo(db), cfg.APIURL)

	clientOpts := []api.Option{api.WithTokenSource(store)}
	if options.httpClient != nil {
		clientOpts = append(clientOpts, api.WithHTTPClient(options.httpClient))
	}
	client, err := api.New(cfg.APIURL, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	return &App{
		cfg:            cfg,
		Session:        store,
		API:            client,
		eventClient:    options.eventClient,
		stopForwarding: taskservice.ForwardInvalidations(client.Tags(), options.eventClient, cfg.APIURL),
		AuthService:    authservice.NewService(client, store, options.eventClient),
		TaskService:    taskservice.NewService(client, store),
	}, nil
}

// Config returns the configuration the app was built from
func (a *App) Config() *config.Config {
	return a.cfg
}

// EventClient returns the daemon connection, or nil when running without one
func (a *App) EventClient() events.EventPublisher {
	return a.eventClient
}

// Close stops forwarding invalidations and closes the daemon connection
func (a *App) Close() error {
	a.stopForwarding()
	if a.eventClient != nil {
		return a.eventClient.Close()
	}
	return nil
}

type contextKey struct{}

// NewContext returns ctx carrying a. Commands run with such a context use a
// instead of building their own, which is how tests inject an App.
func NewContext(ctx context.Context, a *App) context.Context {
	return context.WithValue(ctx, contextKey{}, a)
}

// FromContext returns the App stored by NewContext
func FromContext(ctx context.Context) (*App, bool) {
	a, ok := ctx.Value(contextKey{}).(*App)
	return a, ok && a != nil
}
