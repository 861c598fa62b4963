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

// RegisterCmd returns the auth register subcommand
func RegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Long: `Create an account on the configured task API. Registering does not log in.

Examples:
  # Interactive
  taskdesk auth register

  # Scripted
  echo "$PASSWORD" | taskdesk auth register --email=ana@example.com --password-stdin --json
`,
		RunE: runRegister,
	}

	addCredentialFlags(cmd)
	return cmd
}

func runRegister(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	creds, err := readCredentials(cmd, "Create an account")
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

	if err := cliInstance.App.AuthService.Register(ctx, creds); err != nil {
		return formatter.Fail("REGISTER_ERROR", err)
	}

	email := strings.TrimSpace(creds.Email)
	if quietMode {
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"email":   email,
		})
	}

	fmt.Printf("Registered %s. Log in with: taskdesk auth login --email=%s\n", email, email)
	return nil
}
