package tui

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/hirepaso/internal/board"
	"github.com/thenoetrevino/hirepaso/internal/config"
	"github.com/thenoetrevino/hirepaso/internal/models"
	"github.com/thenoetrevino/hirepaso/internal/tui/components"
	"github.com/thenoetrevino/hirepaso/internal/tui/state"
	"github.com/thenoetrevino/hirepaso/internal/types"
)

// Model represents the application state for the TUI
type Model struct {
	Ctx        context.Context
	Config     *config.Config
	Controller *board.Controller
	Logger     *slog.Logger
	VacancyID  types.VacancyID

	UiState           *state.UIState
	NotificationState *state.NotificationState
	GrabState         *state.GrabState
	DetailState       *state.DetailState
}

// Option configures a Model
type Option func(*Model)

func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.Logger = logger
		}
	}
}

// InitialModel creates the board model for one vacancy. The pipeline is
// fetched by the command returned from Init.
func InitialModel(ctx context.Context, ctrl *board.Controller, cfg *config.Config, vacancyID types.VacancyID, opts ...Option) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	components.InitStyles(cfg.ColorScheme, cfg.StagePalette())

	m := Model{
		Ctx:               ctx,
		Config:            cfg,
		Controller:        ctrl,
		Logger:            slog.Default(),
		VacancyID:         vacancyID,
		UiState:           state.NewUIState(),
		NotificationState: state.NewNotificationState(),
		GrabState:         state.NewGrabState(),
		DetailState:       state.NewDetailState(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the first pipeline load.
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return m.loadPipeline()
}

// Board returns the board the model renders
func (m Model) Board() *board.Board {
	return m.Controller.Board()
}

// Detail returns the application detail overlay state
func (m Model) Detail() *board.DetailView {
	return m.Controller.Detail()
}

// currentColumn returns the selected stage, or nil on an empty board
func (m Model) currentColumn(columns []*models.Column) *models.Column {
	idx := m.UiState.SelectedStage()
	if idx < 0 || idx >= len(columns) {
		return nil
	}
	return columns[idx]
}

// currentCard returns the selected application card, or nil if there is none
func (m Model) currentCard(columns []*models.Column) *models.ApplicationCard {
	col := m.currentColumn(columns)
	if col == nil {
		return nil
	}
	idx := m.UiState.SelectedCard()
	if idx < 0 || idx >= len(col.Cards) {
		return nil
	}
	return col.Cards[idx]
}

// clampSelection keeps the cursor on the board after it changed underneath it
func (m Model) clampSelection(columns []*models.Column) {
	m.UiState.ClampSelection(len(columns), func(i int) int {
		return len(columns[i].Cards)
	})
	if col := m.currentColumn(columns); col != nil {
		m.UiState.EnsureCardVisible(col.Slug, m.UiState.SelectedCard(), m.visibleCards())
	}
}

// selectCard moves the cursor onto the application with id, if it is on the board
func (m Model) selectCard(columns []*models.Column, id types.ApplicationID) {
	for stageIdx, col := range columns {
		for cardIdx, card := range col.Cards {
			if card.ID == id {
				m.UiState.SetSelectedStage(stageIdx)
				m.UiState.SetSelectedCard(cardIdx)
				m.UiState.EnsureSelectionVisible(stageIdx)
				m.UiState.EnsureCardVisible(col.Slug, cardIdx, m.visibleCards())
				return
			}
		}
	}
}

func (m Model) visibleCards() int {
	return components.VisibleCards(m.UiState.ContentHeight())
}
