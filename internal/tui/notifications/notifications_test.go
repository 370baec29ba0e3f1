package notifications

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/hirepaso/internal/tui/state"
)

func TestFromLevel(t *testing.T) {
	assert.Equal(t, Info, FromLevel(state.LevelInfo))
	assert.Equal(t, Warning, FromLevel(state.LevelWarning))
	assert.Equal(t, Error, FromLevel(state.LevelError))
}

func TestRenderInlineCarriesMessage(t *testing.T) {
	out := RenderInlineFromState(state.Notification{Level: state.LevelError, Message: "Move rejected"})
	assert.Contains(t, out, "Move rejected")
	assert.Contains(t, out, "✕")
}

func TestRenderBannerHasTitle(t *testing.T) {
	out := Render(Warning, "No stages configured")
	assert.Contains(t, out, "Warning")
	assert.Contains(t, out, "No stages configured")
}
