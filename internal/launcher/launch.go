package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskdesk/internal/app"
	"github.com/thenoetrevino/taskdesk/internal/config"
	"github.com/thenoetrevino/taskdesk/internal/database"
	"github.com/thenoetrevino/taskdesk/internal/events"
	"github.com/thenoetrevino/taskdesk/internal/logging"
	"github.com/thenoetrevino/taskdesk/internal/tui/core"
)

// Launch starts the TUI application and blocks until it exits or ctx is
// cancelled. apiURL overrides the configured API when set.
func Launch(ctx context.Context, apiURL string) error {
	// Initialize logging to file before anything else
	if err := logging.Init(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	// SIGTERM is not a key press; catch it here as well as in main
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
	}

	// Live updates are optional; the daemon may not be running
	var opts []app.Option
	eventClient := events.NewClient(cfg.Daemon.Socket, cfg.APIURL)
	if err := eventClient.Connect(ctx); err != nil {
		var daemonErr *events.DaemonError
		if errors.As(err, &daemonErr) {
			slog.Warn("failed to connect to daemon", "message", daemonErr.Message, "hint", daemonErr.Hint)
		} else {
			slog.Warn("failed to connect to daemon", "error", err)
		}
		slog.Info("continuing without live updates")
		_ = eventClient.Close()
	} else {
		opts = append(opts, app.WithEventPublisher(eventClient))
	}

	db, err := database.InitDB(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	application, err := app.New(cfg, db, opts...)
	if err != nil {
		return err
	}
	// Flushes pending invalidations to the daemon before exit
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing event client", "error", err)
		}
	}()

	tuiApp := core.New(ctx, application)
	defer tuiApp.Close()

	slog.Info("starting tui", "api_url", cfg.APIURL)
	p := tea.NewProgram(tuiApp, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running program: %w", err)
	}
	if ctx.Err() != nil {
		slog.Info("shutdown signal received, cleaning up")
	}
	return nil
}
