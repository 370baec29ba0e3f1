package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/hirepaso/internal/config"
)

// RenderHelp renders the key reference shown in help mode
func RenderHelp(km config.KeyMappings) string {
	sections := []struct {
		title string
		rows  [][2]string
	}{
		{"Navigation", [][2]string{
			{km.PrevStage + " / ←", "previous stage"},
			{km.NextStage + " / →", "next stage"},
			{km.PrevCard + " / ↑", "previous application"},
			{km.NextCard + " / ↓", "next application"},
			{km.ScrollViewportLeft + " " + km.ScrollViewportRight, "scroll stages"},
		}},
		{"Moving", [][2]string{
			{km.MoveBackward, "move to previous stage"},
			{km.MoveForward, "move to next stage"},
			{km.GrabCard, "grab / drop on selected stage"},
			{km.Close, "cancel grab"},
		}},
		{"Other", [][2]string{
			{km.OpenDetail + " / space", "application details"},
			{km.Reload, "reload pipeline"},
			{km.ShowHelp, "toggle help"},
			{km.Quit, "quit"},
		}},
	}

	keyStyle := lipgloss.NewStyle().Bold(true).Width(14)

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Keyboard shortcuts"))
	for _, section := range sections {
		b.WriteString("\n\n")
		b.WriteString(TitleStyle.Render(section.title))
		for _, row := range section.rows {
			b.WriteString("\n")
			b.WriteString(keyStyle.Render(row[0]))
			b.WriteString(row[1])
		}
	}
	b.WriteString("\n\n")
	b.WriteString(SubtleStyle.Render("press ? or esc to close"))

	return HelpBoxStyle.Render(b.String())
}
