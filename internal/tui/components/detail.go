package components

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/hirepaso/internal/models"
	"github.com/thenoetrevino/hirepaso/internal/tui/theme"
)

const (
	DetailLoadingText = "Loading application details..."
	DetailFailedText  = "Unable to load application details"

	scoreBarWidth   = 20
	detailLabelWide = 12
)

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderMarkdown renders evaluator text as markdown, falling back to plain
// wrapped text when glamour can't handle it
func RenderMarkdown(text string, width int) string {
	if renderer, err := getRenderer(width); err == nil {
		if out, err := renderer.Render(text); err == nil {
			return strings.TrimSpace(out)
		}
	}
	return wordwrap.String(text, width)
}

// RenderDetailBody renders the full application record for the overlay viewport
func RenderDetailBody(d *models.ApplicationDetail, width int) string {
	name := d.Applicant.FullName()
	if name == "" {
		name = "Unnamed applicant"
	}

	lines := []string{
		TitleStyle.Render(name) + "  " + RenderStageBadge(d.Status, d.DisplayStatus()),
		"",
		detailField("Application", "#"+d.ID.String()),
	}
	if d.VacancyID != "" {
		lines = append(lines, detailField("Vacancy", d.VacancyID))
	}
	lines = append(lines, detailField("Email", d.Applicant.Email))
	if d.Applicant.Phone != "" {
		lines = append(lines, detailField("Phone", d.Applicant.Phone))
	}
	if d.Applicant.Role != "" {
		lines = append(lines, detailField("Role", d.Applicant.Role))
	}
	if !d.CreatedAt.IsZero() {
		lines = append(lines, detailField("Applied", d.CreatedAt.Local().Format("2006-01-02 15:04")))
	}

	lines = append(lines, "", sectionTitle("Resume"))
	if d.CVFile == nil {
		lines = append(lines, SubtleStyle.Render("No CV uploaded"))
	} else {
		lines = append(lines,
			detailField("File", d.CVFile.OriginalFilename),
			detailField("Size", fmt.Sprintf("%.1f KB", d.CVFile.SizeKB())),
		)
		if d.CVFile.MimeType != "" {
			lines = append(lines, detailField("Type", d.CVFile.MimeType))
		}
		if d.CVFile.StorageURL != "" {
			lines = append(lines, detailField("Link", d.CVFile.StorageURL))
		}
	}

	lines = append(lines, renderEvaluation("Resume evaluation", d.ResumeEvaluation, width)...)
	lines = append(lines, renderEvaluation("Interview evaluation", d.InterviewEvaluation, width)...)

	return strings.Join(lines, "\n")
}

func renderEvaluation(title string, e *models.Evaluation, width int) []string {
	lines := []string{"", sectionTitle(title)}
	if e == nil {
		return append(lines, SubtleStyle.Render("Not evaluated yet"))
	}

	lines = append(lines, detailField("Score", fmt.Sprintf("%.0f%%", e.FinalPercent())))
	if !e.EvaluatedAt.IsZero() {
		lines = append(lines, detailField("Evaluated", e.EvaluatedAt.Local().Format("2006-01-02 15:04")))
	}
	if e.LLMModelUsed != "" {
		lines = append(lines, detailField("Model", e.LLMModelUsed))
	}

	categories := make([]string, 0, len(e.CategoryScores))
	for name := range e.CategoryScores {
		categories = append(categories, name)
	}
	sort.Strings(categories)
	if len(categories) > 0 {
		lines = append(lines, "")
	}
	for _, name := range categories {
		lines = append(lines, ScoreBar(name, models.CategoryPercent(e.CategoryScores[name])))
	}

	if e.Justification != "" {
		lines = append(lines, "", RenderMarkdown(e.Justification, max(width, 20)))
	}
	return lines
}

// ScoreBar renders a labelled horizontal bar for a percentage
func ScoreBar(label string, percent float64) string {
	percent = min(max(percent, 0), 100)
	filled := int(percent / 100 * scoreBarWidth)

	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Highlight)).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Render(strings.Repeat("░", scoreBarWidth-filled))

	return fmt.Sprintf("%s %s %3.0f%%", lipgloss.NewStyle().Width(detailLabelWide+4).Render(fit(label, detailLabelWide+3)), bar, percent)
}

// RenderDetailBox wraps overlay content with a border and a key hint
func RenderDetailBox(body string, width, height int) string {
	footer := SubtleStyle.Render("j/k scroll · esc close")
	content := lipgloss.JoinVertical(lipgloss.Left, body, "", footer)

	return DetailBoxStyle.
		Width(width).
		Height(height).
		Render(content)
}

// RenderDetailPlaceholder renders the loading or failed state of the overlay
func RenderDetailPlaceholder(text string, err error) string {
	if err == nil {
		return SubtleStyle.Render(text)
	}
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ErrorFg)).Bold(true)
	return errStyle.Render(text) + "\n\n" + SubtleStyle.Render(err.Error())
}

func detailField(label, value string) string {
	labelStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Highlight)).
		Width(detailLabelWide)
	return labelStyle.Render(label) + lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal)).Render(value)
}

func sectionTitle(title string) string {
	return TitleStyle.Render(title)
}
