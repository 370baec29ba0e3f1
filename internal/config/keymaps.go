package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Navigation
	PrevStage           string `yaml:"prev_stage"`
	NextStage           string `yaml:"next_stage"`
	PrevCard            string `yaml:"prev_card"`
	NextCard            string `yaml:"next_card"`
	ScrollViewportLeft  string `yaml:"scroll_viewport_left"`
	ScrollViewportRight string `yaml:"scroll_viewport_right"`

	// Moves
	MoveBackward string `yaml:"move_backward"`
	MoveForward  string `yaml:"move_forward"`
	GrabCard     string `yaml:"grab_card"` // pick up a card, press again on another stage to drop it

	// Detail overlay
	OpenDetail string `yaml:"open_detail"`
	Close      string `yaml:"close"`

	// Other
	Reload   string `yaml:"reload"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Navigation
		PrevStage:           "h",
		NextStage:           "l",
		PrevCard:            "k",
		NextCard:            "j",
		ScrollViewportLeft:  "[",
		ScrollViewportRight: "]",

		// Moves
		MoveBackward: "H",
		MoveForward:  "L",
		GrabCard:     "m",

		// Detail overlay
		OpenDetail: "enter",
		Close:      "esc",

		// Other
		Reload:   "r",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&k.PrevStage, defaults.PrevStage)
	fill(&k.NextStage, defaults.NextStage)
	fill(&k.PrevCard, defaults.PrevCard)
	fill(&k.NextCard, defaults.NextCard)
	fill(&k.ScrollViewportLeft, defaults.ScrollViewportLeft)
	fill(&k.ScrollViewportRight, defaults.ScrollViewportRight)
	fill(&k.MoveBackward, defaults.MoveBackward)
	fill(&k.MoveForward, defaults.MoveForward)
	fill(&k.GrabCard, defaults.GrabCard)
	fill(&k.OpenDetail, defaults.OpenDetail)
	fill(&k.Close, defaults.Close)
	fill(&k.Reload, defaults.Reload)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
