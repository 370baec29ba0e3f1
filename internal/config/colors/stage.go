package colors

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Foreground colors returned by ContrastColor
const (
	Light = "#ffffff"
	Dark  = "#000000"
)

// FallbackStageColor is used for stage slugs that have no entry in the palette
const FallbackStageColor = "#34495e"

// contrastThreshold splits light from dark backgrounds.
// A luminance exactly on the threshold counts as dark and gets light text.
const contrastThreshold = 0.5

// StagePalette maps stage slugs to accent colors
type StagePalette map[string]string

// DefaultStagePalette returns the accent colors for the well-known pipeline stages
func DefaultStagePalette() StagePalette {
	return StagePalette{
		"new":       "#3498db",
		"screening": "#9b59b6",
		"interview": "#1abc9c",
		"offer":     "#2ecc71",
		"rejected":  "#e74c3c",
		"hired":     "#f1c40f",
	}
}

// Color returns the accent color for a stage slug, or FallbackStageColor for unknown slugs.
// Entries that don't parse as hex colors are ignored.
func (p StagePalette) Color(slug string) string {
	if c, ok := p[strings.ToLower(strings.TrimSpace(slug))]; ok {
		if _, err := colorful.Hex(c); err == nil {
			return c
		}
	}
	return FallbackStageColor
}

// Merge returns a new palette with overrides layered over p
func (p StagePalette) Merge(overrides map[string]string) StagePalette {
	merged := make(StagePalette, len(p)+len(overrides))
	for k, v := range p {
		merged[k] = v
	}
	for k, v := range overrides {
		if v == "" {
			continue
		}
		merged[strings.ToLower(k)] = v
	}
	return merged
}

var defaultPalette = DefaultStagePalette()

// StageColor returns the default accent color for a stage slug
func StageColor(slug string) string {
	return defaultPalette.Color(slug)
}

// Luminance computes the weighted relative luminance of a hex color:
// (0.299*R + 0.587*G + 0.114*B) / 255 with 8-bit channels.
func Luminance(hex string) (float64, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255, nil
}

// ContrastForLuminance picks the foreground for a background of the given luminance
func ContrastForLuminance(luminance float64) string {
	if luminance > contrastThreshold {
		return Dark
	}
	return Light
}

// ContrastColor returns a readable text color (Dark or Light) for a background.
// Unparseable colors get Light, matching the fallback stage color.
func ContrastColor(hex string) string {
	l, err := Luminance(hex)
	if err != nil {
		return Light
	}
	return ContrastForLuminance(l)
}

// LighterColor appends an alpha channel to a hex color, producing #rrggbbaa.
// Opacity is clamped to [0,1]; the alpha byte is round(opacity*255).
func LighterColor(hex string, opacity float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		c, _ = colorful.Hex(FallbackStageColor)
	}
	alpha := int(math.Round(clamp01(opacity) * 255))
	return fmt.Sprintf("%s%02x", c.Hex(), alpha)
}

// Blend composites a color over a background at the given opacity.
// Terminals have no alpha channel, so subdued backgrounds are pre-blended.
func Blend(hex, background string, opacity float64) string {
	fg, err := colorful.Hex(hex)
	if err != nil {
		fg, _ = colorful.Hex(FallbackStageColor)
	}
	bg, err := colorful.Hex(background)
	if err != nil {
		return fg.Hex()
	}
	return bg.BlendRgb(fg, clamp01(opacity)).Clamped().Hex()
}

// clamp01 limits v to [0,1]; NaN counts as 0
func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
