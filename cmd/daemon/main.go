package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/taskdesk/internal/config"
	"github.com/thenoetrevino/taskdesk/internal/daemon"
	"github.com/thenoetrevino/taskdesk/internal/logging"
)

func main() {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	logging.InitWriter(os.Stderr, slog.LevelInfo)

	// The socket path comes from config so the TUI and daemon agree on it
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := daemon.Run(ctx, cfg.Daemon.Socket); err != nil {
		slog.Error("daemon error", "error", err)
		os.Exit(1)
	}
}
