package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/hirepaso/internal/board"
	"github.com/thenoetrevino/hirepaso/internal/models"
	"github.com/thenoetrevino/hirepaso/internal/tui/state"
)

func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		return m.handleQuit()
	case km.ShowHelp:
		return m.handleShowHelp()
	case km.Reload:
		return m.handleReload()
	case km.ScrollViewportRight:
		return m.handleScrollRight()
	case km.ScrollViewportLeft:
		return m.handleScrollLeft()
	case km.PrevStage, "left":
		return m.handleNavigateLeft()
	case km.NextStage, "right":
		return m.handleNavigateRight()
	case km.NextCard, "down":
		return m.handleNavigateDown()
	case km.PrevCard, "up":
		return m.handleNavigateUp()
	case km.MoveForward:
		return m.handleMoveDirection(models.Forward)
	case km.MoveBackward:
		return m.handleMoveDirection(models.Backward)
	case km.GrabCard:
		return m.handleGrabOrDrop()
	case km.OpenDetail, "space", " ":
		return m.handleOpenDetail()
	case km.Close:
		return m.handleCancelGrab()
	}

	return m, nil
}

// handleQuit tears the board down so results still in flight are discarded
func (m Model) handleQuit() (tea.Model, tea.Cmd) {
	m.Controller.Close()
	return m, tea.Quit
}

func (m Model) handleShowHelp() (tea.Model, tea.Cmd) {
	m.UiState.SetMode(state.HelpMode)
	return m, nil
}

func (m Model) handleReload() (tea.Model, tea.Cmd) {
	m.GrabState.Release()
	m.UiState.StopFollowing()
	return m, m.loadPipeline()
}

// ============================================================================
// NAVIGATION
// ============================================================================

func (m Model) handleNavigateLeft() (tea.Model, tea.Cmd) {
	m.UiState.StopFollowing()
	if m.UiState.SelectedStage() > 0 {
		m.UiState.SetSelectedStage(m.UiState.SelectedStage() - 1)
		m.UiState.SetSelectedCard(0)
		m.UiState.EnsureSelectionVisible(m.UiState.SelectedStage())
	} else {
		m.NotificationState.Add(state.LevelInfo, "Already at the first stage")
	}
	return m, nil
}

func (m Model) handleNavigateRight() (tea.Model, tea.Cmd) {
	m.UiState.StopFollowing()
	if m.UiState.SelectedStage() < len(m.Board().Stages())-1 {
		m.UiState.SetSelectedStage(m.UiState.SelectedStage() + 1)
		m.UiState.SetSelectedCard(0)
		m.UiState.EnsureSelectionVisible(m.UiState.SelectedStage())
	} else {
		m.NotificationState.Add(state.LevelInfo, "Already at the last stage")
	}
	return m, nil
}

func (m Model) handleNavigateUp() (tea.Model, tea.Cmd) {
	m.UiState.StopFollowing()
	col := m.currentColumn(m.Board().Columns())
	if col == nil {
		return m, nil
	}

	if m.UiState.SelectedCard() > 0 {
		m.UiState.SetSelectedCard(m.UiState.SelectedCard() - 1)
		m.UiState.EnsureCardVisible(col.Slug, m.UiState.SelectedCard(), m.visibleCards())
	} else if len(col.Cards) > 0 {
		m.NotificationState.Add(state.LevelInfo, "Already at the first application")
	}
	return m, nil
}

func (m Model) handleNavigateDown() (tea.Model, tea.Cmd) {
	m.UiState.StopFollowing()
	col := m.currentColumn(m.Board().Columns())
	if col == nil {
		return m, nil
	}

	if m.UiState.SelectedCard() < len(col.Cards)-1 {
		m.UiState.SetSelectedCard(m.UiState.SelectedCard() + 1)
		m.UiState.EnsureCardVisible(col.Slug, m.UiState.SelectedCard(), m.visibleCards())
	} else if len(col.Cards) > 0 {
		m.NotificationState.Add(state.LevelInfo, "Already at the last application")
	}
	return m, nil
}

func (m Model) handleScrollRight() (tea.Model, tea.Cmd) {
	if m.UiState.ScrollViewportRight(len(m.Board().Stages())) {
		if m.UiState.SelectedStage() < m.UiState.ViewportOffset() {
			m.UiState.SetSelectedStage(m.UiState.ViewportOffset())
			m.UiState.SetSelectedCard(0)
		}
	} else {
		m.NotificationState.Add(state.LevelInfo, "Already at the rightmost view")
	}
	return m, nil
}

func (m Model) handleScrollLeft() (tea.Model, tea.Cmd) {
	if m.UiState.ScrollViewportLeft() {
		if m.UiState.SelectedStage() >= m.UiState.ViewportOffset()+m.UiState.ViewportSize() {
			m.UiState.SetSelectedStage(m.UiState.ViewportOffset() + m.UiState.ViewportSize() - 1)
			m.UiState.SetSelectedCard(0)
		}
	} else {
		m.NotificationState.Add(state.LevelInfo, "Already at the leftmost view")
	}
	return m, nil
}

// ============================================================================
// MOVES
// ============================================================================

// handleMoveDirection sends the selected application one stage forward or back
func (m Model) handleMoveDirection(dir models.Direction) (tea.Model, tea.Cmd) {
	card := m.currentCard(m.Board().Columns())
	if card == nil {
		m.NotificationState.Add(state.LevelInfo, "No application selected")
		return m, nil
	}

	cmd := m.moveApplication(board.MoveIntent{ApplicationID: card.ID, Direction: dir})
	if cmd != nil {
		m.UiState.Follow(card.ID)
	}
	return m, cmd
}

// handleGrabOrDrop picks up the selected card, or drops the held one on the
// selected stage. Dropping on the stage it came from just lets go.
func (m Model) handleGrabOrDrop() (tea.Model, tea.Cmd) {
	columns := m.Board().Columns()

	if !m.GrabState.Active() {
		card := m.currentCard(columns)
		if card == nil {
			m.NotificationState.Add(state.LevelInfo, "No application selected")
			return m, nil
		}
		if m.Board().InFlight(card.ID) {
			m.NotificationState.Add(state.LevelInfo, "That application is still moving")
			return m, nil
		}
		m.GrabState.Grab(card.ID, card.StageSlug)
		return m, nil
	}

	target := m.currentColumn(columns)
	id, from, _ := m.GrabState.Release()
	if target == nil || target.Slug == from {
		return m, nil
	}

	cmd := m.moveApplication(board.MoveIntent{ApplicationID: id, TargetSlug: target.Slug})
	if cmd != nil {
		m.UiState.Follow(id)
	}
	return m, cmd
}

func (m Model) handleCancelGrab() (tea.Model, tea.Cmd) {
	m.GrabState.Release()
	return m, nil
}

func (m Model) handleOpenDetail() (tea.Model, tea.Cmd) {
	card := m.currentCard(m.Board().Columns())
	if card == nil {
		m.NotificationState.Add(state.LevelInfo, "No application selected")
		return m, nil
	}
	return m, m.openDetail(card.ID)
}
