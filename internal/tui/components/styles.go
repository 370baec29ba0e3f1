// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/hirepaso/internal/config/colors"
	"github.com/thenoetrevino/hirepaso/internal/tui/state"
	"github.com/thenoetrevino/hirepaso/internal/tui/theme"
)

const (
	CardHeight     = 5 // border(2) + name, email, footer
	cardInnerWidth = state.ColumnContentWidth - 4

	// cardTintOpacity is how much of the stage colour bleeds into a card
	cardTintOpacity = 0.12
)

var (
	// ColumnStyle defines the appearance of a stage column
	ColumnStyle lipgloss.Style

	// CardStyle defines the appearance of an application card
	CardStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (vacancy header, overlay headings)
	TitleStyle lipgloss.Style

	// SubtleStyle is used for placeholders and secondary text
	SubtleStyle lipgloss.Style

	// HelpBoxStyle defines the base style for the help overlay
	HelpBoxStyle lipgloss.Style

	// DetailBoxStyle defines the base style for the application detail overlay
	DetailBoxStyle lipgloss.Style

	// IndicatorStyle defines the appearance of scroll indicators
	IndicatorStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style

	// BusyStyle marks cards with a move in progress
	BusyStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme and stage palette
func InitStyles(scheme colors.ColorScheme, stages colors.StagePalette) {
	theme.Init(scheme, stages)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.ColumnBorder)).
		PaddingLeft(1).
		PaddingRight(1).
		Width(state.ColumnContentWidth + 2)

	CardStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(scheme.CardBorder)).
		Padding(0).
		Width(cardInnerWidth + 2)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle)).
		Italic(true)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Background(lipgloss.Color(scheme.Background)).
		Padding(1, 2)

	DetailBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Background(lipgloss.Color(scheme.Background)).
		Padding(1, 2)

	IndicatorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle)).
		Align(lipgloss.Center)

	StatusBarStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(scheme.StatusBarBg)).
		Foreground(lipgloss.Color(scheme.StatusBarText))

	BusyStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.WarningFg)).
		Italic(true)
}

func init() {
	InitStyles(*colors.Default(), colors.DefaultStagePalette())
}
