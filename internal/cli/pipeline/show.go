package pipeline

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hirepaso/internal/cli"
	"github.com/thenoetrevino/hirepaso/internal/cli/styles"
	"github.com/thenoetrevino/hirepaso/internal/config/colors"
	"github.com/thenoetrevino/hirepaso/internal/models"
)

// backgroundOpacity is how strongly a stage color tints its column background
const backgroundOpacity = 0.15

// ShowCmd returns the pipeline show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [vacancy-id]",
		Short: "Show every stage of a vacancy with its applications",
		Long: `Fetch a vacancy's kanban and print its stages in order.

Without a vacancy id the last vacancy opened is used.

Examples:
  # Human-readable board
  hirepaso pipeline show 42

  # JSON output for agents
  hirepaso pipeline show 42 --json

  # One "application-id<TAB>stage" line per card
  hirepaso pipeline show 42 --quiet
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runShow,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromCmd(cmd)

	vacancyID := ""
	if len(args) > 0 {
		vacancyID = args[0]
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

	styles.Init(cliInstance.App.Config.ColorScheme)
	view := newPipelineView(string(ctrl.Board().VacancyID()), ctrl.Board().Columns(), cliInstance.App.Config.StagePalette())
	return formatter.Success(view)
}

type pipelineView struct {
	VacancyID string      `json:"vacancy_id"`
	Stages    []stageView `json:"stages"`
}

type stageView struct {
	Slug         string     `json:"slug"`
	Label        string     `json:"label"`
	Color        string     `json:"color"`
	TextColor    string     `json:"text_color"`
	Background   string     `json:"background"`
	Applications []cardView `json:"applications"`
}

type cardView struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func newPipelineView(vacancyID string, columns []*models.Column, palette colors.StagePalette) pipelineView {
	view := pipelineView{VacancyID: vacancyID, Stages: make([]stageView, 0, len(columns))}
	for _, col := range columns {
		color := palette.Color(col.Slug)
		stage := stageView{
			Slug:         col.Slug,
			Label:        col.Label,
			Color:        color,
			TextColor:    colors.ContrastColor(color),
			Background:   colors.LighterColor(color, backgroundOpacity),
			Applications: make([]cardView, 0, len(col.Cards)),
		}
		for _, card := range col.Cards {
			stage.Applications = append(stage.Applications, cardView{
				ID:    card.ID.ToInt(),
				Name:  card.Applicant.FullName(),
				Email: card.Applicant.Email,
			})
		}
		view.Stages = append(view.Stages, stage)
	}
	return view
}

// QuietLines prints one "id<TAB>stage" line per application
func (v pipelineView) QuietLines() []string {
	var lines []string
	for _, s := range v.Stages {
		for _, a := range s.Applications {
			lines = append(lines, fmt.Sprintf("%d\t%s", a.ID, s.Slug))
		}
	}
	return lines
}

func (v pipelineView) HumanString() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Vacancy " + v.VacancyID))
	b.WriteString("\n")

	for _, s := range v.Stages {
		label := s.Label
		if label == "" {
			label = s.Slug
		}
		b.WriteString("\n")
		b.WriteString(styles.StageHeader(label, len(s.Applications), s.Color))
		b.WriteString("\n")
		if len(s.Applications) == 0 {
			b.WriteString(styles.SubtitleStyle.Render("  no applications"))
			b.WriteString("\n")
			continue
		}
		for _, a := range s.Applications {
			fmt.Fprintf(&b, "  #%-5d %s", a.ID, a.Name)
			if a.Email != "" {
				b.WriteString(" " + styles.SubtitleStyle.Render("<"+a.Email+">"))
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
