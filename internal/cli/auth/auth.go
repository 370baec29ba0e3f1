package auth

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hirepaso/internal/cli"
	"github.com/thenoetrevino/hirepaso/internal/session"
	"github.com/thenoetrevino/hirepaso/internal/tui/huhforms"
)

// SessionCmd returns the session parent command
func SessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage the recruiting portal login",
	}

	cmd.AddCommand(LoginCmd())
	cmd.AddCommand(LogoutCmd())
	cmd.AddCommand(StatusCmd())

	return cmd
}

type sessionStatus struct {
	Profile         string     `json:"profile"`
	LoggedIn        bool       `json:"logged_in"`
	HasRefreshToken bool       `json:"has_refresh_token"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
	APIBaseURL      string     `json:"api_base_url"`
	CircuitBreaker  string     `json:"circuit_breaker"`
}

func (s sessionStatus) QuietLines() []string {
	if s.LoggedIn {
		return []string{"logged-in"}
	}
	return []string{"logged-out"}
}

func (s sessionStatus) HumanString() string {
	var b strings.Builder
	if s.LoggedIn {
		fmt.Fprintf(&b, "Logged in (profile %s)\n", s.Profile)
	} else {
		fmt.Fprintf(&b, "Not logged in (profile %s)\n", s.Profile)
	}
	fmt.Fprintf(&b, "  API: %s\n", s.APIBaseURL)
	fmt.Fprintf(&b, "  Refresh token: %t\n", s.HasRefreshToken)
	if s.UpdatedAt != nil {
		fmt.Fprintf(&b, "  Updated: %s\n", s.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(&b, "  Circuit breaker: %s", s.CircuitBreaker)
	return b.String()
}

func statusOf(c *cli.CLI) sessionStatus {
	tokens := c.App.Session.Tokens()
	status := sessionStatus{
		Profile:         c.App.Session.Profile(),
		LoggedIn:        !tokens.Empty(),
		HasRefreshToken: tokens.RefreshToken != "",
		APIBaseURL:      c.App.Config.API.BaseURL,
		CircuitBreaker:  c.App.Client.BreakerState(),
	}
	if !tokens.UpdatedAt.IsZero() {
		updated := tokens.UpdatedAt
		status.UpdatedAt = &updated
	}
	return status
}

// LoginCmd returns the session login subcommand
func LoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store portal tokens for this profile",
		Long: `Store the access and refresh tokens issued by the recruiting portal.

Without --access-token an interactive prompt asks for them.

Examples:
  hirepaso session login
  hirepaso session login --access-token "$TOKEN" --refresh-token "$REFRESH"
`,
		Args: cobra.NoArgs,
		RunE: runLogin,
	}

	cmd.Flags().String("access-token", "", "Access token")
	cmd.Flags().String("refresh-token", "", "Refresh token")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runLogin(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromCmd(cmd)

	access, _ := cmd.Flags().GetString("access-token")
	refresh, _ := cmd.Flags().GetString("refresh-token")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.FailWith(formatter, "INITIALIZATION_ERROR", cli.ExitError, err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	if strings.TrimSpace(access) == "" {
		if formatter.JSON || formatter.Quiet {
			return cli.FailWith(formatter, "MISSING_TOKEN", cli.ExitUsage,
				fmt.Errorf("--access-token is required with --json or --quiet"), "")
		}
		form := huhforms.CreateLoginForm(&access, &refresh).
			WithTheme(huhforms.CreateTheme(cliInstance.App.Config.ColorScheme))
		if err := form.Run(); err != nil {
			return cli.FailWith(formatter, "LOGIN_ABORTED", cli.ExitError, err, "")
		}
	}

	tokens := session.Tokens{
		AccessToken:  strings.TrimSpace(access),
		RefreshToken: strings.TrimSpace(refresh),
	}
	if err := cliInstance.App.Session.Update(ctx, tokens); err != nil {
		return cli.FailWith(formatter, "SESSION_SAVE_ERROR", cli.ExitError, err, "")
	}

	return formatter.Success(statusOf(cliInstance))
}

// LogoutCmd returns the session logout subcommand
func LogoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored tokens for this profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			formatter := cli.FormatterFromCmd(cmd)

			cliInstance, err := cli.GetCLIFromContext(ctx)
			if err != nil {
				return cli.FailWith(formatter, "INITIALIZATION_ERROR", cli.ExitError, err, "")
			}
			defer func() {
				if err := cliInstance.Close(); err != nil {
					slog.Error("failed to close CLI", "error", err)
				}
			}()

			if err := cliInstance.App.Session.Clear(ctx); err != nil {
				return cli.FailWith(formatter, "SESSION_CLEAR_ERROR", cli.ExitError, err, "")
			}
			return formatter.Success(statusOf(cliInstance))
		},
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

// StatusCmd returns the session status subcommand
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show login state and API health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			formatter := cli.FormatterFromCmd(cmd)

			cliInstance, err := cli.GetCLIFromContext(cmd.Context())
			if err != nil {
				return cli.FailWith(formatter, "INITIALIZATION_ERROR", cli.ExitError, err, "")
			}
			defer func() {
				if err := cliInstance.Close(); err != nil {
					slog.Error("failed to close CLI", "error", err)
				}
			}()

			return formatter.Success(statusOf(cliInstance))
		},
	}

	cli.AddOutputFlags(cmd)
	return cmd
}
