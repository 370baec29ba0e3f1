package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/hirepaso/internal/models"
)

// AddOutputFlags adds the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
}

// FormatterFromCmd builds an OutputFormatter from the --json/--quiet flags
func FormatterFromCmd(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// FindStage matches target against stage slugs, then labels, case-insensitively
func FindStage(stages []models.Stage, target string) (models.Stage, error) {
	want := strings.ToLower(strings.TrimSpace(target))
	for _, s := range stages {
		if strings.ToLower(s.Slug) == want {
			return s, nil
		}
	}
	for _, s := range stages {
		if strings.ToLower(s.Label) == want {
			return s, nil
		}
	}
	return models.Stage{}, fmt.Errorf("stage '%s' not found", target)
}

// FormatAvailableStages lists stage slugs in pipeline order
func FormatAvailableStages(stages []models.Stage) string {
	slugs := make([]string, len(stages))
	for i, s := range stages {
		slugs[i] = s.Slug
	}
	return strings.Join(slugs, ", ")
}

// StageLabel returns the label for slug, falling back to the slug itself
func StageLabel(stages []models.Stage, slug string) string {
	for _, s := range stages {
		if s.Slug == slug && s.Label != "" {
			return s.Label
		}
	}
	return slug
}
