package state

import "github.com/thenoetrevino/hirepaso/internal/types"

// Mode represents the current interaction mode of the board.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode Mode = iota // Default navigation mode
	HelpMode               // Displaying help screen
	DetailMode             // Application detail overlay
)

// Column layout:
//   - Content width: 32 characters
//   - Padding: 2 characters (1 on each side)
//   - Border: 2 characters (1 on each side)
//   - Spacing: 2 characters (between columns)
const (
	ColumnContentWidth = 32
	columnWidth        = ColumnContentWidth + 6
	reservedWidth      = 4 // margins and scroll indicators
)

// UIState manages the user interface state.
// This includes navigation (stage/card selection), viewport scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedStage is the index of the currently selected stage column
	selectedStage int

	// selectedCard is the index of the currently selected card within the selected stage
	selectedCard int

	width  int
	height int

	mode Mode

	// viewportOffset is the index of the leftmost visible stage
	viewportOffset int

	// viewportSize is the number of stages that fit on the screen
	viewportSize int

	// cardScrollOffsets tracks the vertical scroll offset for each stage
	// Key: stage slug, Value: index of first visible card
	cardScrollOffsets map[string]int

	// followID is a card the cursor should track once its move settles
	followID types.ApplicationID
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:              NormalMode,
		viewportSize:      1, // recalculated when width is set
		cardScrollOffsets: make(map[string]int),
	}
}

func (s *UIState) SelectedStage() int {
	return s.selectedStage
}

func (s *UIState) SetSelectedStage(index int) {
	s.selectedStage = index
}

func (s *UIState) SelectedCard() int {
	return s.selectedCard
}

func (s *UIState) SetSelectedCard(index int) {
	s.selectedCard = index
}

func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width and recalculates viewport size.
func (s *UIState) SetWidth(width int) {
	s.width = width
	s.calculateViewportSize()
}

func (s *UIState) Height() int {
	return s.height
}

func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the available height for the stage columns.
// This is terminal height minus header and status bar, ensuring a minimum of 5.
func (s *UIState) ContentHeight() int {
	const headerHeight = 2    // vacancy title + gap line
	const statusBarHeight = 2 // status bar + gap line
	return max(s.height-headerHeight-statusBarHeight, 5)
}

func (s *UIState) Mode() Mode {
	return s.mode
}

func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

func (s *UIState) SetViewportOffset(offset int) {
	s.viewportOffset = offset
}

func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

func (s *UIState) calculateViewportSize() {
	if s.width == 0 {
		s.viewportSize = 1
		return
	}
	s.viewportSize = max(1, (s.width-reservedWidth)/columnWidth)
}

// ScrollViewportLeft scrolls the viewport one stage to the left.
// Returns false if already at leftmost position.
func (s *UIState) ScrollViewportLeft() bool {
	if s.viewportOffset > 0 {
		s.viewportOffset--
		return true
	}
	return false
}

// ScrollViewportRight scrolls the viewport one stage to the right.
// Returns false if the last stage is already visible.
func (s *UIState) ScrollViewportRight(stageCount int) bool {
	if s.viewportOffset+s.viewportSize < stageCount {
		s.viewportOffset++
		return true
	}
	return false
}

// EnsureSelectionVisible adjusts the viewport so the selected stage is on screen.
func (s *UIState) EnsureSelectionVisible(selectedStage int) {
	if selectedStage < s.viewportOffset {
		s.viewportOffset = selectedStage
	}
	if selectedStage >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = selectedStage - s.viewportSize + 1
	}
}

// ClampSelection keeps the selection inside the board after it was reloaded
// or a card left the selected stage.
func (s *UIState) ClampSelection(stageCount int, cardCount func(stage int) int) {
	if stageCount == 0 {
		s.ResetSelection()
		return
	}
	s.selectedStage = min(max(s.selectedStage, 0), stageCount-1)
	s.selectedCard = min(max(s.selectedCard, 0), max(cardCount(s.selectedStage)-1, 0))
	if s.viewportOffset+s.viewportSize > stageCount {
		s.viewportOffset = max(0, stageCount-s.viewportSize)
	}
	s.EnsureSelectionVisible(s.selectedStage)
}

// ResetSelection resets stage and card selection to zero.
func (s *UIState) ResetSelection() {
	s.selectedStage = 0
	s.selectedCard = 0
	s.viewportOffset = 0
	s.cardScrollOffsets = make(map[string]int)
}

// CardScrollOffset returns the vertical scroll offset for a stage.
func (s *UIState) CardScrollOffset(slug string) int {
	return s.cardScrollOffsets[slug]
}

func (s *UIState) SetCardScrollOffset(slug string, offset int) {
	s.cardScrollOffsets[slug] = max(0, offset)
}

// EnsureCardVisible adjusts the scroll offset so the selected card is on screen.
func (s *UIState) EnsureCardVisible(slug string, selectedIdx int, visibleCount int) {
	offset := s.CardScrollOffset(slug)

	if selectedIdx < offset {
		s.cardScrollOffsets[slug] = selectedIdx
	}
	if selectedIdx >= offset+visibleCount {
		s.cardScrollOffsets[slug] = selectedIdx - visibleCount + 1
	}
}

// Follow asks the cursor to track id to its new stage once a move settles.
func (s *UIState) Follow(id types.ApplicationID) {
	s.followID = id
}

// Following returns the card the cursor is tracking, zero if none.
func (s *UIState) Following() types.ApplicationID {
	return s.followID
}

func (s *UIState) StopFollowing() {
	s.followID = 0
}
