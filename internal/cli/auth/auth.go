// Package auth holds the "taskdesk auth" subcommands
package auth

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"charm.land/huh/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdesk/internal/models"
)

// AuthCmd returns the auth parent command
func AuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Register, log in and log out",
	}

	cmd.AddCommand(RegisterCmd())
	cmd.AddCommand(LoginCmd())
	cmd.AddCommand(LogoutCmd())
	cmd.AddCommand(StatusCmd())

	return cmd
}

// addCredentialFlags registers the flags shared by register and login
func addCredentialFlags(cmd *cobra.Command) {
	cmd.Flags().String("email", "", "Account email")
	cmd.Flags().String("password", "", "Account password (prompted when omitted)")
	cmd.Flags().Bool("password-stdin", false, "Read the password from stdin")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")
}

// readCredentials collects credentials from flags, stdin or an interactive form.
// The form is only shown when a field is missing and output is not JSON/quiet.
func readCredentials(cmd *cobra.Command, title string) (models.Credentials, error) {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	fromStdin, _ := cmd.Flags().GetBool("password-stdin")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	if fromStdin {
		line, err := readLine(cmd.InOrStdin())
		if err != nil {
			return models.Credentials{}, fmt.Errorf("failed to read password from stdin: %w", err)
		}
		password = line
	}

	creds := models.Credentials{Email: email, Password: password}
	if (email != "" && password != "") || jsonOutput || quietMode {
		return creds, nil
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Email").
			Placeholder("you@example.com").
			Value(&creds.Email),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&creds.Password),
	).Title(title))

	if err := form.Run(); err != nil {
		return models.Credentials{}, err
	}
	return creds, nil
}

// readLine returns the first line of r without its line ending
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
