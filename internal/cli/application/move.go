package application

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hirepaso/internal/board"
	"github.com/thenoetrevino/hirepaso/internal/cli"
	"github.com/thenoetrevino/hirepaso/internal/models"
	"github.com/thenoetrevino/hirepaso/internal/types"
)

// MoveCmd returns the application move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <stage|next|prev>",
		Short: "Move an application to another stage",
		Long: `Move an application to another stage by direction or stage name.

The stage only changes once the recruiting service accepts it.

Examples:
  # Move to next stage
  hirepaso application move --vacancy 42 --id 7 next

  # Move to previous stage
  hirepaso application move --vacancy 42 --id 7 prev

  # Move to a specific stage by slug or label (case-insensitive)
  hirepaso application move --vacancy 42 --id 7 interview
  hirepaso application move --vacancy 42 --id 7 "Offer"

  # JSON output for agents
  hirepaso application move --vacancy 42 --id 7 next --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runMove,
	}

	cmd.Flags().String("vacancy", "", "Vacancy ID (defaults to the last vacancy opened)")
	cmd.Flags().Int("id", 0, "Application ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cli.AddOutputFlags(cmd)

	return cmd
}

type moveResult struct {
	ApplicationID int    `json:"application_id"`
	VacancyID     string `json:"vacancy_id"`
	From          string `json:"from_stage"`
	To            string `json:"to_stage"`
	FromLabel     string `json:"-"`
	ToLabel       string `json:"-"`
}

func (r moveResult) GetID() int {
	return r.ApplicationID
}

func (r moveResult) HumanString() string {
	if r.From == r.To {
		return fmt.Sprintf("Application %d is already in '%s'", r.ApplicationID, r.ToLabel)
	}
	return fmt.Sprintf("Application %d moved from '%s' to '%s'", r.ApplicationID, r.FromLabel, r.ToLabel)
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromCmd(cmd)

	vacancyID, _ := cmd.Flags().GetString("vacancy")
	rawID, _ := cmd.Flags().GetInt("id")
	applicationID := types.ApplicationID(rawID)
	target := args[0]

	if !applicationID.Valid() {
		return cli.FailWith(formatter, "INVALID_APPLICATION_ID", cli.ExitUsage,
			fmt.Errorf("application ID must be a positive integer"),
			"Usage: hirepaso application move --id <id> <stage|next|prev>")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.FailWith(formatter, "INITIALIZATION_ERROR", cli.ExitError, err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	ctrl, err := cliInstance.LoadBoard(ctx, vacancyID)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer ctrl.Close()

	b := ctrl.Board()
	stages := b.Stages()

	current, ok := b.StageOf(applicationID)
	if !ok {
		return cli.FailWith(formatter, "APPLICATION_NOT_FOUND", cli.ExitNotFound,
			fmt.Errorf("application %d is not on vacancy %s", rawID, b.VacancyID()),
			"List applications with: hirepaso pipeline show "+b.VacancyID().String())
	}

	result := moveResult{
		ApplicationID: rawID,
		VacancyID:     b.VacancyID().String(),
		From:          current,
		FromLabel:     cli.StageLabel(stages, current),
	}

	intent := board.MoveIntent{ApplicationID: applicationID}
	if direction, ok := models.ParseDirection(target); ok {
		intent.Direction = direction
	} else {
		stage, err := cli.FindStage(stages, target)
		if err != nil {
			return cli.FailWith(formatter, "STAGE_NOT_FOUND", cli.ExitNotFound, err,
				fmt.Sprintf("Application is currently in: %s\nAvailable stages: %s",
					result.FromLabel, cli.FormatAvailableStages(stages)))
		}
		// Already there: silent success
		if stage.Slug == current {
			result.To, result.ToLabel = current, result.FromLabel
			return formatter.Success(result)
		}
		intent.TargetSlug = stage.Slug
	}

	ticket, err := ctrl.Move(ctx, intent)
	if err != nil {
		code, exit := cli.Classify(err)
		suggestion := ""
		if exit == cli.ExitValidation && intent.Direction != models.NoDirection {
			suggestion = fmt.Sprintf("Application is currently in: %s", result.FromLabel)
		}
		return cli.FailWith(formatter, code, exit, err, suggestion)
	}

	result.To = ticket.To
	result.ToLabel = cli.StageLabel(stages, ticket.To)
	return formatter.Success(result)
}
