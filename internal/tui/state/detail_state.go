package state

import (
	"charm.land/bubbles/v2/viewport"
	"charm.land/lipgloss/v2"
)

// DetailState holds the scrollable body of the application detail overlay.
type DetailState struct {
	Viewport viewport.Model
	content  string
}

func NewDetailState() *DetailState {
	vp := viewport.New()
	vp.Style = lipgloss.NewStyle()
	vp.MouseWheelEnabled = true
	return &DetailState{Viewport: vp}
}

// SetSize resizes the viewport, keeping the current scroll position.
func (s *DetailState) SetSize(width, height int) {
	s.Viewport.SetWidth(max(width, 1))
	s.Viewport.SetHeight(max(height, 1))
}

// SetContent replaces the body and scrolls back to the top.
func (s *DetailState) SetContent(content string) {
	s.content = content
	s.Viewport.SetContent(content)
	s.Viewport.GotoTop()
}

func (s *DetailState) Content() string {
	return s.content
}

// Reset empties the overlay body.
func (s *DetailState) Reset() {
	s.SetContent("")
}
