package components

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/thenoetrevino/hirepaso/internal/config/colors"
	"github.com/thenoetrevino/hirepaso/internal/models"
	"github.com/thenoetrevino/hirepaso/internal/tui/theme"
)

// CardProps describes how one application card is drawn
type CardProps struct {
	Card     *models.ApplicationCard
	Selected bool
	Grabbed  bool // picked up and waiting to be dropped
	Moving   bool // stage change sent, waiting for the service
}

// RenderCard renders a single application as a fixed-size card
//
//	┏━━━━━━━━━━━━━━━━━━━━━━━━━━━━┓
//	┃ Ann Doe                    ┃
//	┃ ann@example.com            ┃
//	┃ #12              moving…   ┃
//	┗━━━━━━━━━━━━━━━━━━━━━━━━━━━━┛
func RenderCard(props CardProps) string {
	card := props.Card
	accent := theme.StageColor(card.StageSlug)

	bg := colors.Blend(accent, theme.CardBg, cardTintOpacity)
	border := theme.CardBorder
	if props.Selected {
		bg = theme.SelectedBg
		border = theme.SelectedBorder
	}
	if props.Grabbed {
		border = theme.Highlight
	}

	line := lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Width(cardInnerWidth)

	name := card.Applicant.FullName()
	if name == "" {
		name = "Unnamed applicant"
	}
	nameLine := line.Bold(true).
		Foreground(lipgloss.Color(theme.Normal)).
		Render(" " + fit(name, cardInnerWidth-1))

	emailLine := line.
		Foreground(lipgloss.Color(theme.Subtle)).
		Render(" " + fit(card.Applicant.Email, cardInnerWidth-1))

	content := lipgloss.JoinVertical(lipgloss.Left, nameLine, emailLine, renderCardFooter(props, bg))

	return CardStyle.
		BorderForeground(lipgloss.Color(border)).
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg)).
		Render(content)
}

// renderCardFooter renders the application id on the left and its move state on the right
func renderCardFooter(props CardProps, bg string) string {
	base := lipgloss.NewStyle().Background(lipgloss.Color(bg))

	left := base.Foreground(lipgloss.Color(theme.StageColor(props.Card.StageSlug))).
		Render(fmt.Sprintf(" #%d", props.Card.ID))

	var right string
	switch {
	case props.Moving:
		right = BusyStyle.Background(lipgloss.Color(bg)).Render("moving… ")
	case props.Grabbed:
		right = base.Foreground(lipgloss.Color(theme.Highlight)).Bold(true).Render("grabbed ")
	}

	gap := max(cardInnerWidth-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, base.Width(gap).Render(""), right)
}

// fit shortens s to width cells, ending with an ellipsis when cut
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(width), "…")
}
