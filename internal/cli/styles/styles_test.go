package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/hirepaso/internal/config"
)

func TestStageBadgeKeepsLabel(t *testing.T) {
	Init(config.DefaultColorScheme())

	assert.Contains(t, StageBadge("Interview", "#1abc9c"), "Interview")
	assert.Contains(t, StageHeader("Hired", 3, "#f1c40f"), "Hired (3)")
}

func TestFieldAndCard(t *testing.T) {
	Init(config.DefaultColorScheme())

	out := RenderCard(Field("Email", "ann@example.com"))
	assert.Contains(t, out, "Email:")
	assert.Contains(t, out, "ann@example.com")
}
