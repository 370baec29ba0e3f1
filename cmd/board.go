package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"charm.land/huh/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hirepaso/internal/api"
	"github.com/thenoetrevino/hirepaso/internal/app"
	"github.com/thenoetrevino/hirepaso/internal/cli"
	"github.com/thenoetrevino/hirepaso/internal/launcher"
	"github.com/thenoetrevino/hirepaso/internal/tui/huhforms"
	"github.com/thenoetrevino/hirepaso/internal/types"
)

func boardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board [vacancy-id]",
		Short: "Open the interactive pipeline board",
		Long: `Open a vacancy's pipeline as an interactive kanban board.

Without a vacancy id the board opens the vacancy you used last, or lets you
pick one of the organisation's vacancies.

Examples:
  hirepaso board 42
  hirepaso board
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runBoard,
	}
}

func runBoard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	a := cliInstance.App
	if !a.Session.LoggedIn() {
		return cli.Exit(cli.ExitError, fmt.Errorf("not logged in, run: hirepaso session login"))
	}

	vacancyID := ""
	if len(args) > 0 {
		vacancyID = strings.TrimSpace(args[0])
	}
	if vacancyID == "" {
		vacancyID = a.LastVacancy(ctx)
	}
	if vacancyID == "" {
		form := vacancyPicker(ctx, a, &vacancyID).
			WithTheme(huhforms.CreateTheme(a.Config.ColorScheme))
		if err := form.Run(); err != nil {
			return cli.Exit(cli.ExitError, err)
		}
		vacancyID = strings.TrimSpace(vacancyID)
	}

	a.RememberVacancy(ctx, vacancyID)
	return launcher.Launch(ctx, a, types.VacancyID(vacancyID))
}

// vacancyPicker selects from the organisation's vacancies, or asks for an id
// when none can be listed
func vacancyPicker(ctx context.Context, a *app.App, vacancyID *string) *huh.Form {
	vacancies, err := a.ListVacancies(ctx, api.VacancyQuery{})
	if err != nil {
		slog.Warn("failed to list vacancies, asking for an id", "error", err)
		return huhforms.CreateVacancyForm(vacancyID)
	}
	if len(vacancies) == 0 {
		return huhforms.CreateVacancyForm(vacancyID)
	}
	return huhforms.CreateVacancySelect(vacancyID, vacancies)
}
