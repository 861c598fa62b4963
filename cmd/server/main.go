package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/pflag"
	"github.com/thenoetrevino/taskdesk/internal/logging"
	"github.com/thenoetrevino/taskdesk/internal/server"
)

func main() {
	// .env in the working directory is loaded before this runs
	cfg, err := server.ReadEnv()
	if err != nil {
		slog.Error("invalid server environment", "error", err)
		os.Exit(1)
	}

	pflag.StringVar(&cfg.Addr, "addr", cfg.Addr, "address to listen on (TASKDESK_SERVER_ADDR)")
	pflag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database path, \":memory:\" for a throwaway store (TASKDESK_SERVER_DB)")
	pflag.DurationVar(&cfg.TokenTTL, "token-ttl", cfg.TokenTTL, "lifetime of issued tokens (TASKDESK_SERVER_TOKEN_TTL)")
	verbose := pflag.BoolP("verbose", "v", false, "log debug output")
	pflag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logging.InitWriter(os.Stderr, level)

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	start := time.Now()
	if err := server.Run(ctx, cfg); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
	slog.Info("api server stopped", "uptime", time.Since(start).Round(time.Second))
}
