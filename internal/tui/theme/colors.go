package theme

import "github.com/thenoetrevino/hirepaso/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Background     string
	Subtle         string
	Normal         string
	Title          string
	SelectedBorder string
	SelectedBg     string
	CardBg         string
	CardBorder     string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
)

// Stages maps a stage slug to its accent colour
var Stages = colors.DefaultStagePalette()

// Init initializes the theme colors from the given color scheme and stage palette
func Init(scheme colors.ColorScheme, stages colors.StagePalette) {
	Highlight = scheme.Accent
	Background = scheme.Background
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	Title = scheme.Title
	SelectedBorder = scheme.SelectedBorder
	SelectedBg = scheme.SelectedBg
	CardBg = scheme.CardBackground
	CardBorder = scheme.CardBorder
	InfoFg = scheme.InfoFg
	InfoBg = scheme.InfoBg
	WarningFg = scheme.WarningFg
	WarningBg = scheme.WarningBg
	ErrorFg = scheme.ErrorFg
	ErrorBg = scheme.ErrorBg
	if stages != nil {
		Stages = stages
	}
}

// StageColor returns the accent colour for slug
func StageColor(slug string) string {
	return Stages.Color(slug)
}
