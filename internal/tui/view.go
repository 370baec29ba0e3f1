package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/hirepaso/internal/models"
	"github.com/thenoetrevino/hirepaso/internal/tui/components"
	"github.com/thenoetrevino/hirepaso/internal/tui/layers"
	"github.com/thenoetrevino/hirepaso/internal/tui/notifications"
	"github.com/thenoetrevino/hirepaso/internal/tui/state"
	"github.com/thenoetrevino/hirepaso/internal/tui/theme"
)

// View renders the board with any overlay for the current mode on top
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(theme.Background)

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	layerStack := []*lipgloss.Layer{
		lipgloss.NewLayer(m.viewBoard()),
	}

	var overlay *lipgloss.Layer
	switch m.UiState.Mode() {
	case state.HelpMode:
		overlay = layers.CreateCenteredLayer(components.RenderHelp(m.Config.KeyMappings), m.UiState.Width(), m.UiState.Height())
	case state.DetailMode:
		overlay = layers.CreateCenteredLayer(m.viewDetail(), m.UiState.Width(), m.UiState.Height())
	}
	if overlay != nil {
		layerStack = append(layerStack, overlay)
	}

	view.Content = lipgloss.NewCanvas(layerStack...).Render()
	return view
}

// viewBoard renders header, stage columns and status bar
func (m Model) viewBoard() string {
	b := m.Board()
	columns := b.Columns()

	header := m.viewHeader()
	footer := components.RenderStatusBar(components.StatusBarProps{
		Width:     m.UiState.Width(),
		VacancyID: m.VacancyID.String(),
		Loading:   b.Loading(),
		Pending:   b.PendingMoves(),
		Grabbing:  m.GrabState.Active(),
	})

	var body string
	switch {
	case len(columns) == 0 && b.Loading():
		body = components.SubtleStyle.Render("Loading pipeline...")
	case len(columns) == 0 && b.LoadErr() != nil:
		body = notifications.Render(notifications.Error, "Could not load the pipeline. Press "+m.Config.KeyMappings.Reload+" to retry.")
	case len(columns) == 0:
		body = components.SubtleStyle.Render("This vacancy has no stages yet.")
	default:
		body = m.viewColumns(columns)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, header, body)

	// Constrain content to fit terminal height, leaving room for footer
	lines := strings.Split(content, "\n")
	maxLines := max(m.UiState.Height()-1, 1)
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	} else {
		for len(lines) < maxLines {
			lines = append(lines, "")
		}
	}

	return strings.Join(lines, "\n") + "\n" + footer
}

// viewHeader renders the vacancy title with the latest notification on the right
func (m Model) viewHeader() string {
	title := components.TitleStyle.Render("Vacancy " + m.VacancyID.String())

	if n, ok := m.NotificationState.Latest(); ok {
		inline := notifications.RenderInlineFromState(n)
		gap := max(m.UiState.Width()-lipgloss.Width(title)-lipgloss.Width(inline), 1)
		title = title + strings.Repeat(" ", gap) + inline
	}

	return title + "\n"
}

// viewColumns renders the stages inside the horizontal viewport
func (m Model) viewColumns(columns []*models.Column) string {
	offset := min(m.UiState.ViewportOffset(), len(columns)-1)
	end := min(offset+m.UiState.ViewportSize(), len(columns))
	height := m.UiState.ContentHeight()
	b := m.Board()

	rendered := make([]string, 0, end-offset)
	for i, col := range columns[offset:end] {
		idx := offset + i
		selected := idx == m.UiState.SelectedStage()

		selectedCard := -1
		if selected {
			selectedCard = m.UiState.SelectedCard()
		}

		rendered = append(rendered, components.RenderColumn(components.ColumnProps{
			Column:       col,
			Selected:     selected,
			SelectedCard: selectedCard,
			Height:       height,
			ScrollOffset: m.UiState.CardScrollOffset(col.Slug),
			DropTarget:   selected && m.GrabState.Active() && col.Slug != m.GrabState.FromStage(),
			Grabbed:      m.GrabState.ApplicationID(),
			Moving:       b.InFlight,
		}))
	}

	left, right := " ", " "
	if offset > 0 {
		left = components.IndicatorStyle.Render("◀")
	}
	if end < len(columns) {
		right = components.IndicatorStyle.Render("▶")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", lipgloss.JoinHorizontal(lipgloss.Top, rendered...), " ", right)
}

// viewDetail renders the application overlay in its loading, failed or loaded state
func (m Model) viewDetail() string {
	w, h := layers.OverlayDimensions(m.UiState.Width(), m.UiState.Height())
	d := m.Detail()

	var body string
	switch {
	case d.Loading() || !d.IsOpen():
		body = components.RenderDetailPlaceholder(components.DetailLoadingText, nil)
	case d.Failed():
		body = components.RenderDetailPlaceholder(components.DetailFailedText, d.Err())
	default:
		body = m.DetailState.Viewport.View()
	}

	return components.RenderDetailBox(body, w, h)
}
