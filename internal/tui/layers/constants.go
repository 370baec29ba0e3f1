package layers

const (
	OverlayWidthDivisor = 2 // half the screen

	OverlayMinWidth  = 50
	OverlayMaxWidth  = 90
	OverlayMinHeight = 12

	OverlayMaxHeightNumerator = 4
	OverlayMaxHeightDivisor   = 5 // 4/5 = 80% of screen height

	OverlayBorderPaddingWidth  = 6 // border + padding, left and right
	OverlayBorderPaddingHeight = 4 // border + padding, top and bottom
)
