package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/thenoetrevino/hirepaso/internal/api"
)

// StatusCall is one PATCH received by FakeAPI
type StatusCall struct {
	ApplicationID int
	Status        string
}

// FakeAPI is an in-process recruiting API. Moves are applied to its own
// pipelines so later fetches see them, like the real service.
type FakeAPI struct {
	*httptest.Server

	mu           sync.Mutex
	pipelines    map[string]*api.KanbanResponse
	applications map[int]*api.ApplicationResponse
	rejectStatus map[int]int
	statusCalls  []StatusCall
	detailCalls  []int
	vacancies    []api.VacancyDTO
	listQueries  []url.Values
}

// NewFakeAPI starts a fake API that is closed with the test
func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()
	f := &FakeAPI{
		pipelines:    make(map[string]*api.KanbanResponse),
		applications: make(map[int]*api.ApplicationResponse),
		rejectStatus: make(map[int]int),
	}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Close)
	return f
}

// SamplePipeline is new[1,2] screening[7,3] interview[4] offer[] hired[]
func SamplePipeline() *api.KanbanResponse {
	app := func(id int, first, last string) api.KanbanApplication {
		return api.KanbanApplication{ID: id, Applicant: api.ApplicantDTO{
			FirstName: first, LastName: last, Email: strings.ToLower(first) + "@example.com",
		}}
	}
	return &api.KanbanResponse{Columns: []api.KanbanColumn{
		{Slug: "new", Label: "New", Applications: []api.KanbanApplication{app(1, "Ann", "Lee"), app(2, "Bob", "Ray")}},
		{Slug: "screening", Label: "Screening", Applications: []api.KanbanApplication{app(7, "Sam", "Ito"), app(3, "Cy", "Park")}},
		{Slug: "interview", Label: "Interview", Applications: []api.KanbanApplication{app(4, "Dee", "Moss")}},
		{Slug: "offer", Label: "Offer"},
		{Slug: "hired", Label: "Hired"},
	}}
}

// SetPipeline serves resp for vacancyID
func (f *FakeAPI) SetPipeline(vacancyID string, resp *api.KanbanResponse) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pipelines[vacancyID] = resp
}

// SetApplication serves resp for its id
func (f *FakeAPI) SetApplication(resp *api.ApplicationResponse) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.applications[resp.ID] = resp
}

// SetVacancies serves vacancies from the listing endpoint, paged by skip and limit
func (f *FakeAPI) SetVacancies(vacancies ...api.VacancyDTO) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.vacancies = vacancies
}

// ListQueries returns the query strings of vacancy listings received so far
func (f *FakeAPI) ListQueries() []url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]url.Values(nil), f.listQueries...)
}

// RejectStatus makes status updates for applicationID fail with code
func (f *FakeAPI) RejectStatus(applicationID, code int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rejectStatus[applicationID] = code
}

// StatusCalls returns the PATCH calls received so far
func (f *FakeAPI) StatusCalls() []StatusCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]StatusCall(nil), f.statusCalls...)
}

// DetailCalls returns the application ids fetched so far
func (f *FakeAPI) DetailCalls() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.detailCalls...)
}

func (f *FakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	switch {
	case r.Method == http.MethodGet && len(parts) == 2 && parts[1] == "vacancies":
		q := r.URL.Query()
		f.listQueries = append(f.listQueries, q)
		skip, _ := strconv.Atoi(q.Get("skip"))
		limit, err := strconv.Atoi(q.Get("limit"))
		if err != nil || limit <= 0 {
			limit = len(f.vacancies)
		}
		start := min(max(skip, 0), len(f.vacancies))
		end := min(start+limit, len(f.vacancies))
		page := append([]api.VacancyDTO{}, f.vacancies[start:end]...)
		writeJSON(w, http.StatusOK, page)

	case r.Method == http.MethodGet && len(parts) == 4 && parts[1] == "vacancies" && parts[3] == "kanban":
		resp, ok := f.pipelines[parts[2]]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Vacancy not found"})
			return
		}
		writeJSON(w, http.StatusOK, resp)

	case r.Method == http.MethodPatch && len(parts) == 4 && parts[1] == "applications" && parts[3] == "status":
		id, _ := strconv.Atoi(parts[2])
		status := r.URL.Query().Get("status")
		f.statusCalls = append(f.statusCalls, StatusCall{ApplicationID: id, Status: status})
		if code, ok := f.rejectStatus[id]; ok {
			writeJSON(w, code, map[string]string{"detail": "status change rejected"})
			return
		}
		if !f.move(id, status) {
			writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Application not found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"id": id, "status": status})

	case r.Method == http.MethodGet && len(parts) == 3 && parts[1] == "applications":
		id, _ := strconv.Atoi(parts[2])
		f.detailCalls = append(f.detailCalls, id)
		resp, ok := f.applications[id]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Application not found"})
			return
		}
		writeJSON(w, http.StatusOK, resp)

	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": fmt.Sprintf("no route for %s %s", r.Method, r.URL.Path)})
	}
}

// move relocates an application within whichever pipeline holds it. Caller holds the lock.
func (f *FakeAPI) move(id int, status string) bool {
	for _, p := range f.pipelines {
		target := -1
		for i, col := range p.Columns {
			if col.Slug == status {
				target = i
			}
		}
		if target < 0 {
			continue
		}
		for ci, col := range p.Columns {
			for ai, app := range col.Applications {
				if app.ID != id {
					continue
				}
				p.Columns[ci].Applications = append(col.Applications[:ai:ai], col.Applications[ai+1:]...)
				p.Columns[target].Applications = append(p.Columns[target].Applications, app)
				return true
			}
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
