package colors

// ColorScheme defines all configurable UI color values.
// Stage accent colors live in StagePalette; these cover the board chrome.
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Background colors
	Background       string `yaml:"background"`
	ColumnBackground string `yaml:"column_background"`

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	CardBorder     string `yaml:"card_border"`
	CardBackground string `yaml:"card_background"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`

	// Status bar
	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&c.Accent, preset.Accent)
	fill(&c.Background, preset.Background)
	fill(&c.ColumnBackground, preset.ColumnBackground)
	fill(&c.ColumnBorder, preset.ColumnBorder)
	fill(&c.CardBorder, preset.CardBorder)
	fill(&c.CardBackground, preset.CardBackground)
	fill(&c.SelectedBorder, preset.SelectedBorder)
	fill(&c.SelectedBg, preset.SelectedBg)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.InfoFg, preset.InfoFg)
	fill(&c.InfoBg, preset.InfoBg)
	fill(&c.WarningFg, preset.WarningFg)
	fill(&c.WarningBg, preset.WarningBg)
	fill(&c.ErrorFg, preset.ErrorFg)
	fill(&c.ErrorBg, preset.ErrorBg)
	fill(&c.StatusBarBg, preset.StatusBarBg)
	fill(&c.StatusBarText, preset.StatusBarText)
}

// MergeFrom copies every non-empty value from other over c
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}

	merge(&c.Preset, other.Preset)
	merge(&c.Accent, other.Accent)
	merge(&c.Background, other.Background)
	merge(&c.ColumnBackground, other.ColumnBackground)
	merge(&c.ColumnBorder, other.ColumnBorder)
	merge(&c.CardBorder, other.CardBorder)
	merge(&c.CardBackground, other.CardBackground)
	merge(&c.SelectedBorder, other.SelectedBorder)
	merge(&c.SelectedBg, other.SelectedBg)
	merge(&c.Title, other.Title)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
	merge(&c.InfoFg, other.InfoFg)
	merge(&c.InfoBg, other.InfoBg)
	merge(&c.WarningFg, other.WarningFg)
	merge(&c.WarningBg, other.WarningBg)
	merge(&c.ErrorFg, other.ErrorFg)
	merge(&c.ErrorBg, other.ErrorBg)
	merge(&c.StatusBarBg, other.StatusBarBg)
	merge(&c.StatusBarText, other.StatusBarText)
}
