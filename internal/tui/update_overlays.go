package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/hirepaso/internal/models"
	"github.com/thenoetrevino/hirepaso/internal/tui/components"
	"github.com/thenoetrevino/hirepaso/internal/tui/state"
)

// ============================================================================
// HELP MODE HANDLERS
// ============================================================================

func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.handleQuit()
	case m.Config.KeyMappings.ShowHelp, m.Config.KeyMappings.Quit, m.Config.KeyMappings.Close, "esc", "enter", "space", " ":
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// ============================================================================
// DETAIL MODE HANDLERS
// ============================================================================

// handleDetailMode closes the overlay or scrolls its body
func (m Model) handleDetailMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.handleQuit()
	case m.Config.KeyMappings.Close, m.Config.KeyMappings.Quit, "esc":
		m.Controller.CloseDetail()
		m.DetailState.Reset()
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	var cmd tea.Cmd
	m.DetailState.Viewport, cmd = m.DetailState.Viewport.Update(msg)
	return m, cmd
}

// renderDetail lays the record out at the overlay's current width
func (m Model) renderDetail(detail *models.ApplicationDetail) {
	w, h := m.detailInnerSize()
	m.DetailState.SetSize(w, h)
	m.DetailState.SetContent(components.RenderDetailBody(detail, w))
}
