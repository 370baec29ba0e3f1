package application

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hirepaso/internal/cli"
	"github.com/thenoetrevino/hirepaso/internal/cli/styles"
	"github.com/thenoetrevino/hirepaso/internal/models"
	"github.com/thenoetrevino/hirepaso/internal/types"
)

// ShowCmd returns the application show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show an application's full record",
		Long:  "Display the applicant, resume file and evaluations of one application.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().Int("id", 0, "Application ID (can also be provided as positional argument)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromCmd(cmd)

	var rawID int
	if len(args) > 0 {
		rawID, _ = strconv.Atoi(strings.TrimSpace(args[0]))
	} else {
		rawID, _ = cmd.Flags().GetInt("id")
	}

	if rawID <= 0 {
		return cli.FailWith(formatter, "INVALID_APPLICATION_ID", cli.ExitUsage,
			fmt.Errorf("application ID must be a positive integer"),
			"Usage: hirepaso application show <id> or hirepaso application show --id=<id>")
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

	ctrl := cliInstance.App.NewController()
	defer ctrl.Close()

	detail, err := ctrl.OpenDetail(ctx, types.ApplicationID(rawID))
	if err != nil {
		return cli.Fail(formatter, err)
	}

	styles.Init(cliInstance.App.Config.ColorScheme)
	color := cliInstance.App.Config.StagePalette().Color(detail.Status)
	return formatter.Success(detailView{ApplicationDetail: detail, stageColor: color})
}

type detailView struct {
	*models.ApplicationDetail
	stageColor string
}

func (v detailView) GetID() int {
	return v.ID.ToInt()
}

func (v detailView) HumanString() string {
	d := v.ApplicationDetail
	lines := []string{
		styles.TitleStyle.Render(d.Applicant.FullName()) + "  " + styles.StageBadge(d.DisplayStatus(), v.stageColor),
		"",
		styles.Field("Application", d.ID.String()),
		styles.Field("Vacancy", d.VacancyID),
		styles.Field("Email", d.Applicant.Email),
	}
	if d.Applicant.Phone != "" {
		lines = append(lines, styles.Field("Phone", d.Applicant.Phone))
	}
	if !d.CreatedAt.IsZero() {
		lines = append(lines, styles.Field("Applied", d.CreatedAt.Format("2006-01-02 15:04")))
	}

	if d.CVFile != nil {
		lines = append(lines, styles.SectionStyle.Render("Resume"),
			styles.Field("File", d.CVFile.OriginalFilename),
			styles.Field("Size", fmt.Sprintf("%.1f KB", d.CVFile.SizeKB())))
	}

	lines = append(lines, evaluationLines("Resume evaluation", d.ResumeEvaluation)...)
	lines = append(lines, evaluationLines("Interview evaluation", d.InterviewEvaluation)...)

	return styles.RenderCard(strings.Join(lines, "\n"))
}

func evaluationLines(title string, e *models.Evaluation) []string {
	if e == nil {
		return nil
	}
	lines := []string{
		styles.SectionStyle.Render(title),
		styles.Field("Score", fmt.Sprintf("%.0f%%", e.FinalPercent())),
	}

	categories := make([]string, 0, len(e.CategoryScores))
	for name := range e.CategoryScores {
		categories = append(categories, name)
	}
	sort.Strings(categories)
	for _, name := range categories {
		lines = append(lines, fmt.Sprintf("  %s: %.0f%%", name, models.CategoryPercent(e.CategoryScores[name])))
	}

	if e.Justification != "" {
		lines = append(lines, styles.ValueStyle.Render(e.Justification))
	}
	return lines
}
