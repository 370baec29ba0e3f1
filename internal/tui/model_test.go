package tui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/hirepaso/internal/board"
	"github.com/thenoetrevino/hirepaso/internal/config"
	"github.com/thenoetrevino/hirepaso/internal/models"
	"github.com/thenoetrevino/hirepaso/internal/tui/state"
	"github.com/thenoetrevino/hirepaso/internal/types"
)

var errRemote = errors.New("service unavailable")

// fakeRemote serves one canned pipeline and records stage updates
type fakeRemote struct {
	mu        sync.Mutex
	pipeline  *models.Pipeline
	fetchErr  error
	updateErr error
	detailErr error
	fetches   int
	updates   []string
	details   []types.ApplicationID
}

func (f *fakeRemote) FetchPipeline(ctx context.Context, vacancyID types.VacancyID) (*models.Pipeline, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.pipeline, nil
}

func (f *fakeRemote) UpdateApplicationStage(ctx context.Context, id types.ApplicationID, stageSlug string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, id.String()+"->"+stageSlug)
	return f.updateErr
}

func (f *fakeRemote) FetchApplicationDetail(ctx context.Context, id types.ApplicationID) (*models.ApplicationDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.details = append(f.details, id)
	if f.detailErr != nil {
		return nil, f.detailErr
	}
	return &models.ApplicationDetail{
		ID:          id,
		Status:      models.StageScreening,
		StatusLabel: "Screening",
		Applicant:   models.Applicant{FirstName: "Sam", LastName: "Doe", Email: "sam@example.com"},
	}, nil
}

func testCard(id int, first string) *models.ApplicationCard {
	return &models.ApplicationCard{
		ID:        types.ApplicationID(id),
		Applicant: models.Applicant{FirstName: first, LastName: "Doe", Email: strings.ToLower(first) + "@example.com"},
	}
}

func testColumn(slug, label string, cards ...*models.ApplicationCard) *models.Column {
	return &models.Column{Stage: models.Stage{Slug: slug, Label: label}, Cards: cards}
}

// new[1,2] screening[7,3] interview[4] hired[]
func testPipeline() *models.Pipeline {
	return &models.Pipeline{
		Columns: []*models.Column{
			testColumn(models.StageNew, "New", testCard(1, "Ann"), testCard(2, "Bob")),
			testColumn(models.StageScreening, "Screening", testCard(7, "Sam"), testCard(3, "Cy")),
			testColumn(models.StageInterview, "Interview", testCard(4, "Dee")),
			testColumn(models.StageHired, "Hired"),
		},
	}
}

// setupModel returns a model with the test pipeline loaded and a sized window
func setupModel(t *testing.T) (Model, *fakeRemote) {
	t.Helper()
	remote := &fakeRemote{pipeline: testPipeline()}
	ctrl := board.NewController(remote)
	m := InitialModel(context.Background(), ctrl, config.Default(), "vac-1")

	m = update(t, m, tea.WindowSizeMsg{Width: 180, Height: 40})
	m = run(t, m, m.Init())
	require.Len(t, m.Board().Columns(), 4)
	return m, remote
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

// press sends a key and returns the model with the command it produced
func press(t *testing.T, m Model, msg tea.KeyPressMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

// run executes cmd synchronously and feeds its message back into the model
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	return update(t, m, cmd())
}

func key(s string) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: []rune(s)[0], Text: s})
}

func special(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: code})
}

func cardIDs(col *models.Column) []types.ApplicationID {
	ids := make([]types.ApplicationID, len(col.Cards))
	for i, c := range col.Cards {
		ids[i] = c.ID
	}
	return ids
}

func latestMessage(m Model) string {
	n, _ := m.NotificationState.Latest()
	return n.Message
}

func TestInitLoadsPipeline(t *testing.T) {
	m, remote := setupModel(t)

	assert.Equal(t, 1, remote.fetches)
	assert.False(t, m.Board().Loading())

	view := m.viewBoard()
	assert.Contains(t, view, "Ann Doe")
	assert.Contains(t, view, "Screening")
	assert.Contains(t, view, "vacancy vac-1")
}

func TestViewBeforeWindowSize(t *testing.T) {
	remote := &fakeRemote{pipeline: testPipeline()}
	m := InitialModel(context.Background(), board.NewController(remote), nil, "vac-1")

	v := m.View()
	assert.Equal(t, "Loading...", v.Content)
	assert.True(t, v.AltScreen)
}

func TestLoadFailureShowsError(t *testing.T) {
	remote := &fakeRemote{fetchErr: errRemote}
	m := InitialModel(context.Background(), board.NewController(remote), config.Default(), "vac-1")
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})
	m = run(t, m, m.Init())

	assert.Contains(t, latestMessage(m), "Could not load pipeline")
	assert.Contains(t, m.viewBoard(), "Could not load the pipeline")
	assert.Error(t, m.Board().LoadErr())
}

func TestEmptyVacancyIDReportsError(t *testing.T) {
	remote := &fakeRemote{pipeline: testPipeline()}
	m := InitialModel(context.Background(), board.NewController(remote), config.Default(), "")
	m = run(t, m, m.Init())

	assert.Equal(t, 0, remote.fetches)
	assert.Contains(t, latestMessage(m), "vacancy id cannot be empty")
}

func TestMoveForwardConfirmsThenApplies(t *testing.T) {
	m, remote := setupModel(t)

	m, cmd := press(t, m, key("L"))
	require.NotNil(t, cmd)

	// nothing moves until the service answers
	assert.True(t, m.Board().InFlight(1))
	assert.Equal(t, []types.ApplicationID{1, 2}, cardIDs(m.Board().Columns()[0]))
	assert.Contains(t, m.viewBoard(), "moving…")

	m = run(t, m, cmd)

	cols := m.Board().Columns()
	assert.Equal(t, []string{"1->screening"}, remote.updates)
	assert.Equal(t, []types.ApplicationID{2}, cardIDs(cols[0]))
	assert.Equal(t, []types.ApplicationID{7, 3, 1}, cardIDs(cols[1]))
	assert.False(t, m.Board().InFlight(1))

	// the cursor follows the moved card
	assert.Equal(t, 1, m.UiState.SelectedStage())
	assert.Equal(t, 2, m.UiState.SelectedCard())
	assert.Equal(t, "Moved #1 to Screening", latestMessage(m))
}

func TestRepeatedMoveWhileInFlightIsIgnored(t *testing.T) {
	m, remote := setupModel(t)

	m, first := press(t, m, key("L"))
	require.NotNil(t, first)

	m, second := press(t, m, key("L"))
	assert.Nil(t, second)
	assert.Equal(t, "That application is still moving", latestMessage(m))

	m = run(t, m, first)
	assert.Len(t, remote.updates, 1)
}

func TestMoveBeforeFirstStageIsNoop(t *testing.T) {
	m, remote := setupModel(t)

	m, cmd := press(t, m, key("H"))
	assert.Nil(t, cmd)
	assert.Equal(t, "Already in the first stage", latestMessage(m))
	assert.Empty(t, remote.updates)
}

func TestMovePastLastStageIsNoop(t *testing.T) {
	remote := &fakeRemote{pipeline: &models.Pipeline{Columns: []*models.Column{
		testColumn(models.StageNew, "New"),
		testColumn(models.StageHired, "Hired", testCard(9, "Hal")),
	}}}
	m := InitialModel(context.Background(), board.NewController(remote), config.Default(), "vac-1")
	m = update(t, m, tea.WindowSizeMsg{Width: 180, Height: 40})
	m = run(t, m, m.Init())

	m, _ = press(t, m, key("l"))
	m, cmd := press(t, m, key("L"))
	assert.Nil(t, cmd)
	assert.Equal(t, "Already in the last stage", latestMessage(m))
	assert.Empty(t, remote.updates)
}

func TestRejectedMoveLeavesBoardUnchanged(t *testing.T) {
	m, remote := setupModel(t)
	remote.updateErr = errRemote
	before := m.Board().Columns()

	m, cmd := press(t, m, key("L"))
	m = run(t, m, cmd)

	assert.Equal(t, before, m.Board().Columns())
	assert.Contains(t, latestMessage(m), "Could not move #1 to Screening")
	assert.Contains(t, latestMessage(m), errRemote.Error())
	assert.False(t, m.Board().InFlight(1))
	assert.Equal(t, 0, m.UiState.SelectedStage())
}

func TestGrabAndDrop(t *testing.T) {
	m, remote := setupModel(t)

	m, cmd := press(t, m, key("m"))
	assert.Nil(t, cmd)
	assert.True(t, m.GrabState.Active())
	assert.Contains(t, m.viewBoard(), "grabbed")

	m, _ = press(t, m, key("l"))
	m, _ = press(t, m, key("l"))
	m, cmd = press(t, m, key("m"))
	require.NotNil(t, cmd)
	assert.False(t, m.GrabState.Active())

	m = run(t, m, cmd)

	cols := m.Board().Columns()
	assert.Equal(t, []string{"1->interview"}, remote.updates)
	assert.Equal(t, []types.ApplicationID{4, 1}, cardIDs(cols[2]))
	assert.Equal(t, 2, m.UiState.SelectedStage())
	assert.Equal(t, 1, m.UiState.SelectedCard())
}

func TestDropOnSourceStageReleases(t *testing.T) {
	m, remote := setupModel(t)

	m, _ = press(t, m, key("m"))
	m, cmd := press(t, m, key("m"))

	assert.Nil(t, cmd)
	assert.False(t, m.GrabState.Active())
	assert.Empty(t, remote.updates)
}

func TestEscCancelsGrab(t *testing.T) {
	m, remote := setupModel(t)

	m, _ = press(t, m, key("m"))
	m, _ = press(t, m, key("l"))
	m, cmd := press(t, m, special(tea.KeyEscape))

	assert.Nil(t, cmd)
	assert.False(t, m.GrabState.Active())
	assert.Empty(t, remote.updates)
}

func TestNavigation(t *testing.T) {
	m, _ := setupModel(t)

	m, _ = press(t, m, special(tea.KeyDown))
	assert.Equal(t, 1, m.UiState.SelectedCard())

	m, _ = press(t, m, key("j"))
	assert.Equal(t, 1, m.UiState.SelectedCard())
	assert.Equal(t, "Already at the last application", latestMessage(m))

	m, _ = press(t, m, key("h"))
	assert.Equal(t, "Already at the first stage", latestMessage(m))

	m, _ = press(t, m, special(tea.KeyRight))
	assert.Equal(t, 1, m.UiState.SelectedStage())
	assert.Equal(t, 0, m.UiState.SelectedCard())

	// any key clears the previous notification
	assert.False(t, m.NotificationState.HasAny())
}

func TestOpenAndCloseDetail(t *testing.T) {
	m, remote := setupModel(t)
	m, _ = press(t, m, key("l"))

	m, cmd := press(t, m, special(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, state.DetailMode, m.UiState.Mode())
	assert.True(t, m.Detail().Loading())
	assert.Contains(t, m.viewDetail(), "Loading application details...")

	m = run(t, m, cmd)
	assert.Equal(t, []types.ApplicationID{7}, remote.details)
	assert.Contains(t, m.viewDetail(), "sam@example.com")
	assert.Contains(t, m.View().Content, "Sam Doe")

	m, _ = press(t, m, special(tea.KeyEscape))
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.False(t, m.Detail().IsOpen())
	assert.Empty(t, m.DetailState.Content())
}

func TestDetailRefetchesOnEveryOpen(t *testing.T) {
	m, remote := setupModel(t)

	for range 2 {
		var cmd tea.Cmd
		m, cmd = press(t, m, special(tea.KeyEnter))
		m = run(t, m, cmd)
		m, _ = press(t, m, special(tea.KeyEscape))
	}

	assert.Equal(t, []types.ApplicationID{1, 1}, remote.details)
}

func TestDetailFailure(t *testing.T) {
	m, remote := setupModel(t)
	remote.detailErr = errRemote

	m, cmd := press(t, m, special(tea.KeyEnter))
	m = run(t, m, cmd)

	assert.Equal(t, state.DetailMode, m.UiState.Mode())
	assert.True(t, m.Detail().Failed())
	view := m.viewDetail()
	assert.Contains(t, view, "Unable to load application details")
	assert.Contains(t, view, errRemote.Error())
}

func TestDetailResultAfterCloseIsDiscarded(t *testing.T) {
	m, _ := setupModel(t)

	m, cmd := press(t, m, special(tea.KeyEnter))
	m, _ = press(t, m, special(tea.KeyEscape))
	m = run(t, m, cmd)

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.False(t, m.Detail().IsOpen())
	assert.Nil(t, m.Detail().Detail())
}

func TestOpenDetailOnEmptyStage(t *testing.T) {
	m, remote := setupModel(t)
	for range 3 {
		m, _ = press(t, m, key("l"))
	}

	m, cmd := press(t, m, special(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, "No application selected", latestMessage(m))
	assert.Empty(t, remote.details)
}

func TestHelpToggle(t *testing.T) {
	m, _ := setupModel(t)

	m, _ = press(t, m, key("?"))
	assert.Equal(t, state.HelpMode, m.UiState.Mode())
	assert.Contains(t, m.View().Content, "Keyboard shortcuts")

	m, _ = press(t, m, key("?"))
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

func TestReloadFetchesAgain(t *testing.T) {
	m, remote := setupModel(t)

	m, cmd := press(t, m, key("r"))
	assert.True(t, m.Board().Loading())
	m = run(t, m, cmd)

	assert.Equal(t, 2, remote.fetches)
	assert.False(t, m.Board().Loading())
}

func TestQuitDiscardsLateResults(t *testing.T) {
	m, _ := setupModel(t)

	m, reload := press(t, m, key("r"))
	m, move := press(t, m, key("L"))
	require.NotNil(t, move)

	m, quit := press(t, m, key("q"))
	require.NotNil(t, quit)
	assert.IsType(t, tea.QuitMsg{}, quit())
	assert.True(t, m.Board().Closed())

	m = run(t, m, reload)
	m = run(t, m, move)

	assert.Empty(t, m.Board().Columns())
	assert.False(t, m.NotificationState.HasAny())
}

func TestLoadGivingUpOnStaleSnapshotsNotifies(t *testing.T) {
	m, _ := setupModel(t)

	m = update(t, m, loadResultMsg{vacancyID: "vac-1", err: board.ErrStaleSnapshot})

	assert.Equal(t, "Pipeline is still changing, press r to refresh", latestMessage(m))
	assert.Len(t, m.Board().Columns(), 4)
}
