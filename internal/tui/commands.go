package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/hirepaso/internal/board"
	"github.com/thenoetrevino/hirepaso/internal/tui/state"
	"github.com/thenoetrevino/hirepaso/internal/types"
)

// Every remote call is split the same way: the Begin step runs here on the
// update loop so the board reflects the request immediately, and the
// blocking Complete step runs inside the returned command.

// loadPipeline starts a fetch of the current vacancy's pipeline
func (m Model) loadPipeline() tea.Cmd {
	ticket, err := m.Controller.BeginLoad(m.VacancyID)
	if err != nil {
		return func() tea.Msg {
			return loadResultMsg{vacancyID: m.VacancyID, err: err}
		}
	}

	ctx, ctrl := m.Ctx, m.Controller
	return func() tea.Msg {
		return loadResultMsg{vacancyID: ticket.VacancyID, err: ctrl.CompleteLoad(ctx, ticket)}
	}
}

// moveApplication validates intent and sends the stage change. No-op
// intents are reported straight away and never reach the service.
func (m Model) moveApplication(intent board.MoveIntent) tea.Cmd {
	ticket, err := m.Controller.BeginMove(intent)
	if err != nil {
		m.notifyMoveRejected(err)
		return nil
	}

	ctx, ctrl := m.Ctx, m.Controller
	return func() tea.Msg {
		return moveResultMsg{ticket: ticket, err: ctrl.CompleteMove(ctx, ticket)}
	}
}

// openDetail shows the overlay in its loading state and fetches the record
func (m Model) openDetail(id types.ApplicationID) tea.Cmd {
	ticket := m.Controller.BeginDetail(id)
	m.DetailState.Reset()
	m.UiState.SetMode(state.DetailMode)

	ctx, ctrl := m.Ctx, m.Controller
	return func() tea.Msg {
		detail, err := ctrl.CompleteDetail(ctx, ticket)
		return detailResultMsg{applicationID: id, detail: detail, err: err}
	}
}
