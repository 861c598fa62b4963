package auth

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdesk/internal/cli"
	"github.com/thenoetrevino/taskdesk/internal/cli/styles"
	authservice "github.com/thenoetrevino/taskdesk/internal/services/auth"
)

// StatusCmd returns the auth status subcommand
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the stored session",
		Long: `Show whether a token is stored for the configured API. Claims are read
from the token without verifying it; they are informational only.

Exits with status 2 when logged out, so scripts can test it.`,
		RunE: runStatus,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "No output, exit status only")

	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail("INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	status, err := cliInstance.App.AuthService.Status(ctx)
	if err != nil {
		return formatter.Fail("SESSION_ERROR", err)
	}

	switch {
	case quietMode:
	case jsonOutput:
		if err := formatter.Success(status); err != nil {
			return err
		}
	default:
		fmt.Println(renderStatus(status))
	}

	if !status.Authenticated {
		return cli.Exit(cli.ExitUsage, nil)
	}
	return nil
}

func renderStatus(st *authservice.Status) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", styles.LabelStyle.Render("API:  "), st.APIURL)
	if !st.Authenticated {
		fmt.Fprintf(&b, "%s %s", styles.LabelStyle.Render("User: "), styles.SubtitleStyle.Render("not logged in"))
		return b.String()
	}

	fmt.Fprintf(&b, "%s %s", styles.LabelStyle.Render("User: "), st.Email)
	if st.Claims != nil && st.Claims.ExpiresAt != nil {
		expires := st.Claims.ExpiresAt.Local().Format(time.DateTime)
		if st.Claims.ExpiresAt.Before(time.Now()) {
			expires += " " + styles.WarningStyle.Render("expired")
		}
		fmt.Fprintf(&b, "\n%s %s", styles.LabelStyle.Render("Token:"), "expires "+expires)
	}
	return b.String()
}
