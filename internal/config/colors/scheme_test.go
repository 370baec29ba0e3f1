package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaultsUsesPreset(t *testing.T) {
	c := ColorScheme{Preset: "monochrome", Accent: "#FF0000"}
	c.ApplyDefaults()

	assert.Equal(t, "#FF0000", c.Accent, "custom values survive")
	assert.Equal(t, Monochrome().Title, c.Title)
	assert.Equal(t, Monochrome().StatusBarBg, c.StatusBarBg)
}

func TestGetPresetFallsBackToDefault(t *testing.T) {
	assert.Equal(t, "default", GetPreset("").Preset)
	assert.Equal(t, "default", GetPreset("no-such-theme").Preset)
	assert.Equal(t, "monochrome", GetPreset("monochrome").Preset)
}

func TestMergeFromOnlyCopiesNonEmpty(t *testing.T) {
	c := *Default()
	c.MergeFrom(ColorScheme{Accent: "#123456"})

	assert.Equal(t, "#123456", c.Accent)
	assert.Equal(t, Default().Title, c.Title)
}
