package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/hirepaso/internal/types"
)

// TestCalculateViewportSize_ZeroWidth ensures viewport defaults to 1 when terminal width is 0.
// Edge case: Terminal not fully initialized yet.
func TestCalculateViewportSize_ZeroWidth(t *testing.T) {
	s := NewUIState()
	s.SetWidth(0)
	assert.Equal(t, 1, s.ViewportSize())
}

// TestCalculateViewportSize_NarrowTerminal ensures at least one stage is always visible.
func TestCalculateViewportSize_NarrowTerminal(t *testing.T) {
	s := NewUIState()
	s.SetWidth(20)
	assert.Equal(t, 1, s.ViewportSize())
}

func TestCalculateViewportSize_WideTerminal(t *testing.T) {
	s := NewUIState()
	s.SetWidth(reservedWidth + 3*columnWidth)
	assert.Equal(t, 3, s.ViewportSize())
}

func TestScrollViewportLeft_AtBoundary(t *testing.T) {
	s := NewUIState()

	assert.False(t, s.ScrollViewportLeft())
	assert.Equal(t, 0, s.ViewportOffset())
}

// TestScrollViewportRight_AtBoundary ensures scroll right is a no-op once the last stage shows.
func TestScrollViewportRight_AtBoundary(t *testing.T) {
	s := NewUIState()
	s.SetWidth(reservedWidth + 2*columnWidth)

	assert.True(t, s.ScrollViewportRight(3))
	assert.False(t, s.ScrollViewportRight(3))
	assert.Equal(t, 1, s.ViewportOffset())
}

func TestEnsureSelectionVisible(t *testing.T) {
	s := NewUIState()
	s.SetWidth(reservedWidth + 2*columnWidth)

	s.EnsureSelectionVisible(4)
	assert.Equal(t, 3, s.ViewportOffset())

	s.EnsureSelectionVisible(0)
	assert.Equal(t, 0, s.ViewportOffset())
}

func TestClampSelection(t *testing.T) {
	counts := []int{2, 0, 1}
	cardCount := func(i int) int { return counts[i] }

	t.Run("selection past the last stage", func(t *testing.T) {
		s := NewUIState()
		s.SetSelectedStage(7)
		s.SetSelectedCard(3)
		s.ClampSelection(len(counts), cardCount)
		assert.Equal(t, 2, s.SelectedStage())
		assert.Equal(t, 0, s.SelectedCard())
	})

	t.Run("card removed from the end of a stage", func(t *testing.T) {
		s := NewUIState()
		s.SetSelectedCard(2)
		s.ClampSelection(len(counts), cardCount)
		assert.Equal(t, 1, s.SelectedCard())
	})

	t.Run("empty stage", func(t *testing.T) {
		s := NewUIState()
		s.SetSelectedStage(1)
		s.SetSelectedCard(1)
		s.ClampSelection(len(counts), cardCount)
		assert.Equal(t, 0, s.SelectedCard())
	})

	t.Run("empty board", func(t *testing.T) {
		s := NewUIState()
		s.SetSelectedStage(2)
		s.SetCardScrollOffset("new", 4)
		s.ClampSelection(0, cardCount)
		assert.Equal(t, 0, s.SelectedStage())
		assert.Equal(t, 0, s.CardScrollOffset("new"))
	})
}

func TestEnsureCardVisible(t *testing.T) {
	s := NewUIState()

	s.EnsureCardVisible("screening", 5, 3)
	assert.Equal(t, 3, s.CardScrollOffset("screening"))

	s.EnsureCardVisible("screening", 1, 3)
	assert.Equal(t, 1, s.CardScrollOffset("screening"))

	assert.Equal(t, 0, s.CardScrollOffset("interview"))
}

func TestSetCardScrollOffsetClampsNegative(t *testing.T) {
	s := NewUIState()
	s.SetCardScrollOffset("new", -2)
	assert.Equal(t, 0, s.CardScrollOffset("new"))
}

func TestFollow(t *testing.T) {
	s := NewUIState()
	assert.Zero(t, s.Following())

	s.Follow(types.ApplicationID(9))
	assert.Equal(t, types.ApplicationID(9), s.Following())

	s.StopFollowing()
	assert.Zero(t, s.Following())
}
