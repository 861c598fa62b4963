package server

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/thenoetrevino/taskdesk/internal/database"
)

// Config controls the development server
type Config struct {
	Addr     string        `env:"TASKDESK_SERVER_ADDR" env-default:":8080"`
	DBPath   string        `env:"TASKDESK_SERVER_DB" env-default:"taskdesk-server.db"` // ":memory:" keeps everything in RAM
	Secret   string        `env:"TASKDESK_SERVER_SECRET"`                              // HS256 signing key; random per run when empty
	TokenTTL time.Duration `env:"TASKDESK_SERVER_TOKEN_TTL" env-default:"24h"`
}

// ReadEnv builds a Config from the environment. Unset variables take the
// defaults in the struct tags.
func ReadEnv() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read server config: %w", err)
	}
	return cfg, nil
}

// NewFromConfig opens the database and builds a Server. The returned close
// function releases the database.
func NewFromConfig(ctx context.Context, cfg Config) (*Server, func() error, error) {
	db, err := database.Open(ctx, cfg.DBPath, database.ServerMigrations)
	if err != nil {
		return nil, nil, err
	}

	secret := []byte(cfg.Secret)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to generate signing key: %w", err)
		}
		slog.Warn("no signing secret configured, tokens will not survive a restart")
	}

	tokens := NewTokenIssuer("taskdesk-dev", secret, cfg.TokenTTL)
	return New(database.NewRepository(db), tokens), db.Close, nil
}

// Run serves the API on cfg.Addr until ctx is done, then drains in-flight
// requests for up to five seconds.
func Run(ctx context.Context, cfg Config) error {
	srv, closeDB, err := NewFromConfig(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeDB(); err != nil {
			slog.Error("error closing db", "error", err)
		}
	}()

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("api server listening", "addr", cfg.Addr, "db", cfg.DBPath)
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	slog.Info("api server shutting down")
	return httpServer.Shutdown(shutdownCtx)
}
