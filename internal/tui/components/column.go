package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/hirepaso/internal/config/colors"
	"github.com/thenoetrevino/hirepaso/internal/models"
	"github.com/thenoetrevino/hirepaso/internal/tui/theme"
	"github.com/thenoetrevino/hirepaso/internal/types"
)

// Column overhead breakdown:
//   - Border: 2 lines (top and bottom)
//   - Header: 1 line (stage badge and count)
//   - Top indicator: 1 line (empty line or "▲ more above")
//   - Bottom indicator: 1 line ("▼ more below" when present)
const columnOverhead = 5

// ColumnProps describes how one stage column is drawn
type ColumnProps struct {
	Column       *models.Column
	Selected     bool
	SelectedCard int // index of the selected card, -1 if the column isn't selected
	Height       int // total height including borders, 0 for auto
	ScrollOffset int // index of the first visible card
	DropTarget   bool
	Grabbed      types.ApplicationID
	Moving       func(types.ApplicationID) bool
}

// VisibleCards returns how many cards fit in a column of the given height
func VisibleCards(height int) int {
	return max((height-columnOverhead)/CardHeight, 1)
}

// RenderStageBadge renders a stage label on its accent colour with readable text
func RenderStageBadge(slug, label string) string {
	accent := theme.StageColor(slug)
	return lipgloss.NewStyle().
		Background(lipgloss.Color(accent)).
		Foreground(lipgloss.Color(colors.ContrastColor(accent))).
		Bold(true).
		Padding(0, 1).
		Render(label)
}

// RenderColumn renders a stage with its header and the visible cards
//
// Layout:
//
//	{Stage badge} ({count})
//	▲ (if scrolled down)
//	{Card 1}
//	{Card 2}
//	...
//	▼ (if more cards below)
func RenderColumn(props ColumnProps) string {
	col := props.Column
	header := RenderStageBadge(col.Slug, col.Label) +
		SubtleStyle.Italic(false).Render(fmt.Sprintf(" (%d)", len(col.Cards)))

	lines := []string{header}

	if len(col.Cards) == 0 {
		lines = append(lines, SubtleStyle.Padding(1, 0).Render("No applications"))
	} else {
		maxVisible := VisibleCards(props.Height)
		offset := min(max(props.ScrollOffset, 0), len(col.Cards)-1)
		end := min(offset+maxVisible, len(col.Cards))

		if offset > 0 {
			lines = append(lines, IndicatorStyle.Render("▲ more above"))
		} else {
			lines = append(lines, "")
		}

		for i, card := range col.Cards[offset:end] {
			lines = append(lines, RenderCard(CardProps{
				Card:     card,
				Selected: props.Selected && offset+i == props.SelectedCard,
				Grabbed:  props.Grabbed != 0 && card.ID == props.Grabbed,
				Moving:   props.Moving != nil && props.Moving(card.ID),
			}))
		}

		if end < len(col.Cards) {
			used := 2 + (end-offset)*CardHeight
			if pad := props.Height - 2 - used - 1; pad > 0 {
				lines = append(lines, strings.Repeat("\n", pad-1))
			}
			lines = append(lines, IndicatorStyle.Render("▼ more below"))
		}
	}

	style := ColumnStyle
	switch {
	case props.DropTarget:
		style = style.BorderForeground(lipgloss.Color(theme.Highlight))
	case props.Selected:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if props.Height > 0 {
		style = style.Height(props.Height - 2)
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
