package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/hirepaso/internal/tui/state"
)

// Render renders a boxed banner with an icon header, used where the board
// itself cannot be drawn (load failures, empty pipelines).
func Render(severity Severity, message string) string {
	style := severity.style()

	headerText := style.icon + " " + style.title
	maxWidth := max(lipgloss.Width(headerText), lipgloss.Width(message))

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Bold(true).
		Width(maxWidth).
		Render(headerText)

	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Width(maxWidth).
		Render(message)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(style.borderForeground)).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

// RenderInline renders a compact single-line notification for the header
func RenderInline(severity Severity, message string) string {
	style := severity.style()

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(style.icon + " " + message)
}

// RenderInlineFromState renders the notification n inline
func RenderInlineFromState(n state.Notification) string {
	return RenderInline(FromLevel(n.Level), n.Message)
}
