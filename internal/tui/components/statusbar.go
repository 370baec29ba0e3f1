package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

type StatusBarProps struct {
	Width     int
	VacancyID string
	Loading   bool
	Pending   int  // moves waiting for the service
	Grabbing  bool // a card is picked up
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: "hirepaso · vacancy {id}" and the board activity
// Right side: the key hint for the current state
func RenderStatusBar(props StatusBarProps) string {
	left := "hirepaso"
	if props.VacancyID != "" {
		left += " · vacancy " + props.VacancyID
	}

	var activity []string
	if props.Loading {
		activity = append(activity, "loading…")
	}
	if props.Pending > 0 {
		activity = append(activity, fmt.Sprintf("updating %d", props.Pending))
	}
	if len(activity) > 0 {
		left += " · " + strings.Join(activity, " · ")
	}

	right := "press ? for help"
	if props.Grabbing {
		right = "move to a stage and press m to drop, esc to cancel"
	}

	leftRendered := StatusBarStyle.Render(" " + left)
	rightRendered := StatusBarStyle.Render(right + " ")

	gap := max(props.Width-lipgloss.Width(leftRendered)-lipgloss.Width(rightRendered), 1)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, StatusBarStyle.Width(gap).Render(""), rightRendered)
}
