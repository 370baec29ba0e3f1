package board

import (
	"context"
	"errors"
	"sync"

	"github.com/thenoetrevino/hirepaso/internal/models"
	"github.com/thenoetrevino/hirepaso/internal/types"
)

var errRemote = errors.New("remote said no")

type stageUpdate struct {
	ID   types.ApplicationID
	Slug string
}

// fakeRemote records calls and serves canned pipelines per vacancy
type fakeRemote struct {
	mu          sync.Mutex
	pipelines   map[types.VacancyID]*models.Pipeline
	fetchErr    error
	updateErr   error
	detailErr   error
	updates     []stageUpdate
	fetches     []types.VacancyID
	detailCalls []types.ApplicationID

	// gates lets a test hold a pipeline fetch until it decides to release it
	gates map[types.VacancyID]chan struct{}
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		pipelines: map[types.VacancyID]*models.Pipeline{},
		gates:     map[types.VacancyID]chan struct{}{},
	}
}

func (f *fakeRemote) FetchPipeline(ctx context.Context, vacancyID types.VacancyID) (*models.Pipeline, error) {
	f.mu.Lock()
	f.fetches = append(f.fetches, vacancyID)
	gate := f.gates[vacancyID]
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.pipelines[vacancyID], nil
}

func (f *fakeRemote) UpdateApplicationStage(ctx context.Context, id types.ApplicationID, stageSlug string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, stageUpdate{ID: id, Slug: stageSlug})
	return f.updateErr
}

func (f *fakeRemote) FetchApplicationDetail(ctx context.Context, id types.ApplicationID) (*models.ApplicationDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.detailCalls = append(f.detailCalls, id)
	if f.detailErr != nil {
		return nil, f.detailErr
	}
	return &models.ApplicationDetail{ID: id, Status: models.StageScreening}, nil
}

type countingObserver struct {
	loads, moves, details []string
}

func (o *countingObserver) ObserveLoad(r string)   { o.loads = append(o.loads, r) }
func (o *countingObserver) ObserveMove(r string)   { o.moves = append(o.moves, r) }
func (o *countingObserver) ObserveDetail(r string) { o.details = append(o.details, r) }

func card(id int, first string) *models.ApplicationCard {
	return &models.ApplicationCard{
		ID:        types.ApplicationID(id),
		Applicant: models.Applicant{FirstName: first, LastName: "Doe", Email: first + "@example.com"},
	}
}

func column(slug string, cards ...*models.ApplicationCard) *models.Column {
	return &models.Column{Stage: models.Stage{Slug: slug, Label: slug}, Cards: cards}
}

// samplePipeline: new[1,2] screening[7,3] interview[4] hired[]
func samplePipeline() *models.Pipeline {
	return &models.Pipeline{
		Columns: []*models.Column{
			column(models.StageNew, card(1, "Ann"), card(2, "Bob")),
			column(models.StageScreening, card(7, "Sam"), card(3, "Cy")),
			column(models.StageInterview, card(4, "Dee")),
			column(models.StageHired),
		},
	}
}

func cardIDs(col *models.Column) []types.ApplicationID {
	ids := make([]types.ApplicationID, len(col.Cards))
	for i, c := range col.Cards {
		ids[i] = c.ID
	}
	return ids
}

func loadedBoard(t interface{ Fatalf(string, ...any) }, p *models.Pipeline) *Board {
	b := New(nil)
	ticket, err := b.BeginLoad("vac-1")
	if err != nil {
		t.Fatalf("BeginLoad: %v", err)
	}
	if err := b.FinishLoad(ticket, p, nil); err != nil {
		t.Fatalf("FinishLoad: %v", err)
	}
	return b
}
