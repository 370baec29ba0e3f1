package pipeline

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hirepaso/internal/api"
	"github.com/thenoetrevino/hirepaso/internal/cli"
	"github.com/thenoetrevino/hirepaso/internal/cli/styles"
	"github.com/thenoetrevino/hirepaso/internal/models"
)

// ListCmd returns the pipeline list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"vacancies", "ls"},
		Short:   "List the vacancies you can open a pipeline for",
		Long: `List an organisation's vacancies one page at a time.

The organisation defaults to api.organisation_id from the config file
or HIREPASO_ORGANISATION_ID.

Examples:
  # Vacancies of the configured organisation
  hirepaso pipeline list

  # Include archived vacancies, second page of 20
  hirepaso pipeline list --archived --skip 20 --limit 20

  # One vacancy id per line, for scripting
  hirepaso pipeline list --quiet
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("org", "", "Organisation ID (defaults to the configured one)")
	cmd.Flags().Bool("archived", false, "Include archived vacancies")
	cmd.Flags().Int("skip", 0, "Number of vacancies to skip")
	cmd.Flags().Int("limit", api.DefaultVacancyLimit, "Maximum number of vacancies to return")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromCmd(cmd)

	org, _ := cmd.Flags().GetString("org")
	archived, _ := cmd.Flags().GetBool("archived")
	skip, _ := cmd.Flags().GetInt("skip")
	limit, _ := cmd.Flags().GetInt("limit")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.FailWith(formatter, "INITIALIZATION_ERROR", cli.ExitError, err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	vacancies, err := cliInstance.App.ListVacancies(ctx, api.VacancyQuery{
		OrganisationID:  strings.TrimSpace(org),
		IncludeArchived: archived,
		Skip:            skip,
		Limit:           limit,
	})
	if err != nil {
		return cli.Fail(formatter, err)
	}

	styles.Init(cliInstance.App.Config.ColorScheme)
	return formatter.Success(vacancyList{Vacancies: vacancies})
}

type vacancyList struct {
	Vacancies []*models.Vacancy `json:"vacancies"`
}

// QuietLines prints one vacancy id per line
func (l vacancyList) QuietLines() []string {
	lines := make([]string, 0, len(l.Vacancies))
	for _, v := range l.Vacancies {
		lines = append(lines, v.ID)
	}
	return lines
}

func (l vacancyList) HumanString() string {
	if len(l.Vacancies) == 0 {
		return styles.SubtitleStyle.Render("No vacancies found")
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("Vacancies (%d)", len(l.Vacancies))))
	b.WriteString("\n")
	for _, v := range l.Vacancies {
		fmt.Fprintf(&b, "\n  #%-5s %s", v.ID, v.DisplayTitle())
		var details []string
		if v.Location != "" {
			details = append(details, v.Location)
		}
		if v.EmploymentType != "" {
			details = append(details, v.EmploymentType)
		}
		if salary := v.SalaryRange(); salary != "" {
			details = append(details, salary)
		}
		if len(details) > 0 {
			b.WriteString("\n         " + styles.SubtitleStyle.Render(strings.Join(details, " · ")))
		}
	}
	return b.String()
}
