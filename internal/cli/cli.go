package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/taskdesk/internal/app"
	"github.com/thenoetrevino/taskdesk/internal/config"
	"github.com/thenoetrevino/taskdesk/internal/database"
	"github.com/thenoetrevino/taskdesk/internal/events"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services
	db  *sql.DB  // nil when the App was injected
}

// NewCLI loads the config, opens the local database and connects to the event
// daemon when it is running. apiURL overrides the configured API when set.
func NewCLI(ctx context.Context, apiURL string) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
	}

	db, err := database.InitDB(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// The daemon is optional - silent fallback
	var opts []app.Option
	client := events.NewClient(cfg.Daemon.Socket, cfg.APIURL)
	if err := client.Connect(ctx); err == nil {
		opts = append(opts, app.WithEventPublisher(client))
	} else {
		slog.Debug("event daemon unavailable", "error", err)
		_ = client.Close()
	}

	application, err := app.New(cfg, db, opts...)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &CLI{App: application, db: db}, nil
}

// Close flushes pending events and closes the database
func (c *CLI) Close() error {
	if c.db == nil {
		return nil
	}
	if err := c.App.Close(); err != nil {
		slog.Debug("error closing event client", "error", err)
	}
	return c.db.Close()
}
