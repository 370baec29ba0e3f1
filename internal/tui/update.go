package tui

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/hirepaso/internal/board"
	"github.com/thenoetrevino/hirepaso/internal/models"
	"github.com/thenoetrevino/hirepaso/internal/tui/layers"
	"github.com/thenoetrevino/hirepaso/internal/tui/state"
)

// Update handles all incoming messages and returns the updated model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		m.resizeDetail()
		m.clampSelection(m.Board().Columns())
		return m, nil

	case loadResultMsg:
		return m.handleLoadResult(msg)

	case moveResultMsg:
		return m.handleMoveResult(msg)

	case detailResultMsg:
		return m.handleDetailResult(msg)

	case tea.KeyPressMsg:
		switch m.UiState.Mode() {
		case state.HelpMode:
			return m.handleHelpMode(msg)
		case state.DetailMode:
			return m.handleDetailMode(msg)
		default:
			return m.handleNormalMode(msg)
		}

	case tea.MouseWheelMsg:
		if m.UiState.Mode() == state.DetailMode {
			var cmd tea.Cmd
			m.DetailState.Viewport, cmd = m.DetailState.Viewport.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// ============================================================================
// RESULT HANDLERS
// ============================================================================

func (m Model) handleLoadResult(msg loadResultMsg) (tea.Model, tea.Cmd) {
	switch {
	case errors.Is(msg.err, board.ErrStaleSnapshot):
		m.NotificationState.Add(state.LevelInfo, "Pipeline is still changing, press "+m.Config.KeyMappings.Reload+" to refresh")
	case errors.Is(msg.err, board.ErrSuperseded), errors.Is(msg.err, board.ErrClosed):
		// a newer load owns the board
		return m, nil
	case msg.err != nil:
		m.NotificationState.Add(state.LevelError, fmt.Sprintf("Could not load pipeline: %v", msg.err))
	}

	m.clampSelection(m.Board().Columns())
	return m, nil
}

func (m Model) handleMoveResult(msg moveResultMsg) (tea.Model, tea.Cmd) {
	columns := m.Board().Columns()
	following := m.UiState.Following() == msg.ticket.ApplicationID
	if following {
		m.UiState.StopFollowing()
	}

	var moveErr *board.MoveError
	switch {
	case errors.As(msg.err, &moveErr):
		m.NotificationState.Add(state.LevelError, fmt.Sprintf("Could not move #%d to %s: %v",
			moveErr.ApplicationID, stageLabel(columns, moveErr.To), moveErr.Err))
	case errors.Is(msg.err, board.ErrSuperseded), errors.Is(msg.err, board.ErrClosed):
		m.Logger.Debug("move result discarded", "application_id", msg.ticket.ApplicationID.ToInt())
	case msg.err != nil:
		// the write went through but the reload that followed failed
		m.NotificationState.Add(state.LevelError, fmt.Sprintf("Could not refresh pipeline: %v", msg.err))
	default:
		if following {
			m.selectCard(columns, msg.ticket.ApplicationID)
		}
		m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("Moved #%d to %s",
			msg.ticket.ApplicationID, stageLabel(columns, msg.ticket.To)))
	}

	m.clampSelection(columns)
	return m, nil
}

func (m Model) handleDetailResult(msg detailResultMsg) (tea.Model, tea.Cmd) {
	if errors.Is(msg.err, board.ErrSuperseded) {
		return m, nil
	}
	if msg.err == nil && msg.detail != nil {
		m.renderDetail(msg.detail)
	}
	return m, nil
}

// ============================================================================
// NOTIFICATIONS
// ============================================================================

// notifyMoveRejected explains why a move never left the board
func (m Model) notifyMoveRejected(err error) {
	switch {
	case errors.Is(err, models.ErrNoNextStage):
		m.NotificationState.Add(state.LevelInfo, "Already in the last stage")
	case errors.Is(err, models.ErrNoPrevStage):
		m.NotificationState.Add(state.LevelInfo, "Already in the first stage")
	case errors.Is(err, board.ErrAlreadyInStage):
		m.NotificationState.Add(state.LevelInfo, "Already in that stage")
	case errors.Is(err, board.ErrMoveInFlight):
		m.NotificationState.Add(state.LevelInfo, "That application is still moving")
	case errors.Is(err, board.ErrApplicationNotFound):
		m.NotificationState.Add(state.LevelWarning, "That application is no longer on the board")
	case errors.Is(err, board.ErrUnknownStage):
		m.NotificationState.Add(state.LevelWarning, "That stage is no longer on the board")
	default:
		m.NotificationState.Add(state.LevelError, fmt.Sprintf("Could not move application: %v", err))
	}
}

// stageLabel returns the display name for slug, or the slug itself
func stageLabel(columns []*models.Column, slug string) string {
	for _, col := range columns {
		if col.Slug == slug && col.Label != "" {
			return col.Label
		}
	}
	return slug
}

// ============================================================================
// DETAIL OVERLAY SIZING
// ============================================================================

func (m Model) detailInnerSize() (int, int) {
	w, h := layers.OverlayDimensions(m.UiState.Width(), m.UiState.Height())
	innerW, innerH := layers.InnerDimensions(w, h)
	const footerLines = 2
	return innerW, max(innerH-footerLines, 1)
}

func (m Model) resizeDetail() {
	w, h := m.detailInnerSize()
	m.DetailState.SetSize(w, h)
	if detail := m.Detail().Detail(); detail != nil && m.Detail().IsOpen() {
		m.renderDetail(detail)
	}
}
