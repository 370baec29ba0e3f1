package board

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/hirepaso/internal/models"
	"github.com/thenoetrevino/hirepaso/internal/types"
)

// assertExactlyOneStage checks every expected id is stored under exactly one stage
// and that each card's StageSlug names that stage.
func assertExactlyOneStage(t *testing.T, b *Board, ids []types.ApplicationID) {
	t.Helper()
	counts := map[types.ApplicationID]int{}
	for _, col := range b.Columns() {
		for _, c := range col.Cards {
			counts[c.ID]++
			assert.Equal(t, col.Slug, c.StageSlug, "card %d StageSlug", c.ID)
		}
	}
	for _, id := range ids {
		assert.Equal(t, 1, counts[id], "application %d", id)
	}
}

func allIDs() []types.ApplicationID {
	return []types.ApplicationID{1, 2, 3, 4, 7}
}

func TestBeginLoadRejectsEmptyVacancy(t *testing.T) {
	b := New(nil)
	_, err := b.BeginLoad("  ")
	assert.ErrorIs(t, err, ErrInvalidVacancyID)
	assert.False(t, b.Loading())
}

func TestLoadReplacesStateWholesale(t *testing.T) {
	b := loadedBoard(t, samplePipeline())

	cols := b.Columns()
	require.Len(t, cols, 4)
	assert.Equal(t, []types.ApplicationID{7, 3}, cardIDs(cols[1]))
	assert.Equal(t, 2, cols[2].Order)
	assertExactlyOneStage(t, b, allIDs())

	ticket, err := b.BeginLoad("vac-1")
	require.NoError(t, err)
	require.NoError(t, b.FinishLoad(ticket, &models.Pipeline{
		Columns: []*models.Column{column("new", card(9, "Zed"))},
	}, nil))

	cols = b.Columns()
	require.Len(t, cols, 1)
	assert.Equal(t, []types.ApplicationID{9}, cardIDs(cols[0]))
	assert.NoError(t, b.LoadErr())
}

func TestLoadFailureLeavesEmptyBoard(t *testing.T) {
	b := loadedBoard(t, samplePipeline())

	ticket, err := b.BeginLoad("vac-1")
	require.NoError(t, err)
	err = b.FinishLoad(ticket, nil, errRemote)

	assert.ErrorIs(t, err, errRemote)
	assert.Empty(t, b.Columns())
	assert.ErrorIs(t, b.LoadErr(), errRemote)
	assert.False(t, b.Loading())
}

func TestLoadDropsDuplicateApplications(t *testing.T) {
	p := samplePipeline()
	p.Columns[2].Cards = append(p.Columns[2].Cards, card(7, "Sam"))

	b := loadedBoard(t, p)

	stage, ok := b.StageOf(7)
	require.True(t, ok)
	assert.Equal(t, models.StageScreening, stage)
	assertExactlyOneStage(t, b, allIDs())
}

func TestLoadNormalisesStageSlug(t *testing.T) {
	p := samplePipeline()
	p.Columns[0].Cards[0].StageSlug = "somewhere-else"

	b := loadedBoard(t, p)

	assert.Equal(t, models.StageNew, b.Columns()[0].Cards[0].StageSlug)
	// the caller's snapshot is not touched
	assert.Equal(t, "somewhere-else", p.Columns[0].Cards[0].StageSlug)
}

func TestColumnsReturnsCopies(t *testing.T) {
	b := loadedBoard(t, samplePipeline())

	cols := b.Columns()
	cols[0].Cards = nil
	cols[1].Cards[0].StageSlug = "tampered"

	fresh := b.Columns()
	assert.Len(t, fresh[0].Cards, 2)
	assert.Equal(t, models.StageScreening, fresh[1].Cards[0].StageSlug)
}

func TestMoveToTargetStage(t *testing.T) {
	b := loadedBoard(t, samplePipeline())

	ticket, err := b.BeginMove(MoveIntent{ApplicationID: 7, TargetSlug: models.StageInterview})
	require.NoError(t, err)
	assert.Equal(t, models.StageScreening, ticket.From)
	assert.Equal(t, models.StageInterview, ticket.To)
	assert.True(t, b.InFlight(7))

	// confirm-then-apply: nothing changes before the remote write settles
	stage, _ := b.StageOf(7)
	assert.Equal(t, models.StageScreening, stage)

	require.NoError(t, b.FinishMove(ticket, nil))

	cols := b.Columns()
	assert.Equal(t, []types.ApplicationID{3}, cardIDs(cols[1]))
	assert.Equal(t, []types.ApplicationID{4, 7}, cardIDs(cols[2]))
	assert.False(t, b.InFlight(7))
	assertExactlyOneStage(t, b, allIDs())
}

func TestMoveByDirection(t *testing.T) {
	b := loadedBoard(t, samplePipeline())

	ticket, err := b.BeginMove(MoveIntent{ApplicationID: 4, Direction: models.Forward})
	require.NoError(t, err)
	assert.Equal(t, models.StageHired, ticket.To)
	require.NoError(t, b.FinishMove(ticket, nil))

	ticket, err = b.BeginMove(MoveIntent{ApplicationID: 3, Direction: models.Backward})
	require.NoError(t, err)
	assert.Equal(t, models.StageNew, ticket.To)
	require.NoError(t, b.FinishMove(ticket, nil))

	cols := b.Columns()
	assert.Equal(t, []types.ApplicationID{1, 2, 3}, cardIDs(cols[0]))
	assert.Equal(t, []types.ApplicationID{4}, cardIDs(cols[3]))
	assertExactlyOneStage(t, b, allIDs())
}

func TestNoopMoves(t *testing.T) {
	tests := []struct {
		name   string
		intent MoveIntent
		want   error
	}{
		{"same stage", MoveIntent{ApplicationID: 7, TargetSlug: models.StageScreening}, ErrAlreadyInStage},
		{"unknown application", MoveIntent{ApplicationID: 99, TargetSlug: models.StageHired}, ErrApplicationNotFound},
		{"unknown stage", MoveIntent{ApplicationID: 7, TargetSlug: "limbo"}, ErrUnknownStage},
		{"backward from first stage", MoveIntent{ApplicationID: 1, Direction: models.Backward}, models.ErrNoPrevStage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := loadedBoard(t, samplePipeline())
			before := b.Columns()

			_, err := b.BeginMove(tt.intent)

			assert.ErrorIs(t, err, tt.want)
			assert.True(t, IsNoop(err))
			assert.Equal(t, before, b.Columns())
			assert.Zero(t, b.PendingMoves())
		})
	}
}

func TestForwardFromLastStageIsNoop(t *testing.T) {
	p := samplePipeline()
	p.Columns[3].Cards = []*models.ApplicationCard{card(8, "Hal")}
	b := loadedBoard(t, p)
	before := b.Columns()

	_, err := b.BeginMove(MoveIntent{ApplicationID: 8, Direction: models.Forward})

	assert.ErrorIs(t, err, models.ErrNoNextStage)
	assert.True(t, IsNoop(err))
	assert.Equal(t, before, b.Columns())
}

func TestInvalidIntent(t *testing.T) {
	b := loadedBoard(t, samplePipeline())

	_, err := b.BeginMove(MoveIntent{ApplicationID: 7})
	assert.ErrorIs(t, err, ErrInvalidMoveIntent)

	_, err = b.BeginMove(MoveIntent{ApplicationID: 7, TargetSlug: "offer", Direction: models.Forward})
	assert.ErrorIs(t, err, ErrInvalidMoveIntent)
	assert.False(t, IsNoop(err))
}

func TestUnknownDirectionIsInvalid(t *testing.T) {
	b := loadedBoard(t, samplePipeline())

	_, err := b.BeginMove(MoveIntent{ApplicationID: 7, Direction: models.Direction(9)})

	assert.ErrorIs(t, err, ErrInvalidMoveIntent)
	assert.False(t, b.InFlight(7))
	assert.Zero(t, b.PendingMoves())
}

func TestStageWithoutSlugIsDropped(t *testing.T) {
	b := loadedBoard(t, &models.Pipeline{Columns: []*models.Column{
		column("  ", card(9, "Ivy")),
		column(models.StageNew, card(1, "Ann")),
	}})

	cols := b.Columns()
	require.Len(t, cols, 1)
	assert.Equal(t, models.StageNew, cols[0].Slug)
	assert.Equal(t, 0, cols[0].Order)

	_, ok := b.StageOf(9)
	assert.False(t, ok)

	_, err := b.BeginMove(MoveIntent{ApplicationID: 1, Direction: models.Direction(9)})
	assert.ErrorIs(t, err, ErrInvalidMoveIntent)

	_, err = b.BeginMove(MoveIntent{ApplicationID: 1, TargetSlug: " "})
	assert.ErrorIs(t, err, ErrInvalidMoveIntent)
}

func TestMoveInFlightIsNotReentered(t *testing.T) {
	b := loadedBoard(t, samplePipeline())

	first, err := b.BeginMove(MoveIntent{ApplicationID: 7, Direction: models.Forward})
	require.NoError(t, err)

	_, err = b.BeginMove(MoveIntent{ApplicationID: 7, TargetSlug: models.StageHired})
	assert.ErrorIs(t, err, ErrMoveInFlight)
	assert.True(t, IsNoop(err))

	// other cards stay movable
	other, err := b.BeginMove(MoveIntent{ApplicationID: 3, Direction: models.Forward})
	require.NoError(t, err)
	assert.Equal(t, 2, b.PendingMoves())

	require.NoError(t, b.FinishMove(first, nil))
	require.NoError(t, b.FinishMove(other, nil))
	assert.Equal(t, []types.ApplicationID{4, 7, 3}, cardIDs(b.Columns()[2]))
}

func TestFailedMoveLeavesBoardIdentical(t *testing.T) {
	b := loadedBoard(t, samplePipeline())
	before := b.Columns()

	ticket, err := b.BeginMove(MoveIntent{ApplicationID: 7, TargetSlug: models.StageInterview})
	require.NoError(t, err)

	err = b.FinishMove(ticket, errRemote)

	var moveErr *MoveError
	require.True(t, errors.As(err, &moveErr))
	assert.Equal(t, types.ApplicationID(7), moveErr.ApplicationID)
	assert.Equal(t, models.StageInterview, moveErr.To)
	assert.ErrorIs(t, err, errRemote)
	assert.Equal(t, before, b.Columns())
	assert.False(t, b.InFlight(7), "failed card stays interactable")
}

func TestLoadSupersedesInFlightMove(t *testing.T) {
	b := loadedBoard(t, samplePipeline())

	move, err := b.BeginMove(MoveIntent{ApplicationID: 7, TargetSlug: models.StageInterview})
	require.NoError(t, err)

	load, err := b.BeginLoad("vac-1")
	require.NoError(t, err)
	assert.False(t, b.InFlight(7))

	require.NoError(t, b.FinishLoad(load, samplePipeline(), nil))
	assert.ErrorIs(t, b.FinishMove(move, nil), ErrSuperseded)

	stage, _ := b.StageOf(7)
	assert.Equal(t, models.StageScreening, stage)
}

func TestStaleLoadDoesNotOverwriteMove(t *testing.T) {
	b := loadedBoard(t, samplePipeline())

	load, err := b.BeginLoad("vac-1")
	require.NoError(t, err)

	move, err := b.BeginMove(MoveIntent{ApplicationID: 7, TargetSlug: models.StageInterview})
	require.NoError(t, err)
	require.NoError(t, b.FinishMove(move, nil))

	// snapshot taken before the move was written
	err = b.FinishLoad(load, samplePipeline(), nil)
	assert.ErrorIs(t, err, ErrStaleSnapshot)

	stage, _ := b.StageOf(7)
	assert.Equal(t, models.StageInterview, stage)
	assert.False(t, b.Loading())
}

func TestVacancySwitchSupersedesLoad(t *testing.T) {
	b := New(nil)

	ticketA, err := b.BeginLoad("A")
	require.NoError(t, err)
	ticketB, err := b.BeginLoad("B")
	require.NoError(t, err)

	pipelineB := &models.Pipeline{Columns: []*models.Column{column("new", card(20, "Bea"))}}
	require.NoError(t, b.FinishLoad(ticketB, pipelineB, nil))

	pipelineA := &models.Pipeline{Columns: []*models.Column{column("new", card(10, "Al"))}}
	assert.ErrorIs(t, b.FinishLoad(ticketA, pipelineA, nil), ErrSuperseded)

	assert.Equal(t, types.VacancyID("B"), b.VacancyID())
	assert.Equal(t, []types.ApplicationID{20}, cardIDs(b.Columns()[0]))
}

func TestCloseDiscardsLateResults(t *testing.T) {
	b := loadedBoard(t, samplePipeline())

	load, err := b.BeginLoad("vac-1")
	require.NoError(t, err)
	b.Close()

	assert.ErrorIs(t, b.FinishLoad(load, samplePipeline(), nil), ErrSuperseded)
	assert.Empty(t, b.Columns())
	assert.True(t, b.Closed())

	_, err = b.BeginLoad("vac-1")
	assert.ErrorIs(t, err, ErrClosed)
	_, err = b.BeginMove(MoveIntent{ApplicationID: 7, Direction: models.Forward})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestStaleSnapshotIsSuperseded(t *testing.T) {
	assert.ErrorIs(t, ErrStaleSnapshot, ErrSuperseded)
	assert.NotErrorIs(t, ErrSuperseded, ErrStaleSnapshot)
}
