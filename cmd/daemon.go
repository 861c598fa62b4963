package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdesk/internal/config"
	"github.com/thenoetrevino/taskdesk/internal/daemon"
	"github.com/thenoetrevino/taskdesk/internal/logging"
)

// daemonCmd runs the live update daemon in the foreground
func daemonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "daemon",
		Short: "Run the live update daemon",
		Long: `Runs the daemon that relays task changes and logins between taskdesk
windows on this machine. Stop it with Ctrl+C.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.InitWriter(os.Stderr, slog.LevelInfo)

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return daemon.Run(cmd.Context(), cfg.Daemon.Socket)
		},
	}
}
