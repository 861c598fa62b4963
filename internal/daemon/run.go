package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// Run creates a server on socketPath and serves until ctx is done
func Run(ctx context.Context, socketPath string) error {
	server, err := NewServer(socketPath)
	if err != nil {
		return fmt.Errorf("failed to create daemon: %w", err)
	}

	slog.Info("taskdesk daemon starting", "socket_path", socketPath, "pid", os.Getpid())

	if err := server.Start(ctx); err != nil {
		return err
	}

	slog.Info("taskdesk daemon shut down gracefully")
	return nil
}
