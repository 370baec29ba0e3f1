// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}

// OverlayDimensions returns the outer size of a modal overlay for the screen.
// Small screens get the whole screen rather than an overlay below the minimums.
func OverlayDimensions(screenWidth, screenHeight int) (int, int) {
	width := min(max(screenWidth/OverlayWidthDivisor, OverlayMinWidth), OverlayMaxWidth)
	height := max(screenHeight*OverlayMaxHeightNumerator/OverlayMaxHeightDivisor, OverlayMinHeight)

	return min(width, screenWidth), min(height, screenHeight)
}

// InnerDimensions returns the content area of an overlay of the given outer size
func InnerDimensions(width, height int) (int, int) {
	return max(width-OverlayBorderPaddingWidth, 1), max(height-OverlayBorderPaddingHeight, 1)
}
