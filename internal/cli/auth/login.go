package auth

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdesk/internal/cli"
)

// LoginCmd returns the auth login subcommand
func LoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the token",
		Long: `Log in to the configured task API. The token is stored locally, keyed by
the API URL, and replaces any earlier login for that API.

Examples:
  taskdesk auth login --email=ana@example.com
  echo "$PASSWORD" | taskdesk auth login --email=ana@example.com --password-stdin --quiet
`,
		RunE: runLogin,
	}

	addCredentialFlags(cmd)
	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	creds, err := readCredentials(cmd, "Log in")
	if err != nil {
		return formatter.Fail("INPUT_ERROR", err)
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail("INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	if err := cliInstance.App.AuthService.Login(ctx, creds); err != nil {
		return formatter.Fail("LOGIN_ERROR", err)
	}

	email := strings.TrimSpace(creds.Email)
	apiURL := cliInstance.App.Session.APIURL()
	if quietMode {
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"email":   email,
			"api_url": apiURL,
		})
	}

	fmt.Printf("Logged in to %s as %s\n", apiURL, email)
	return nil
}
