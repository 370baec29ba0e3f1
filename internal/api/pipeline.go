package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// GetKanban fetches the pipeline snapshot for a vacancy
func (c *Client) GetKanban(ctx context.Context, vacancyID string) (*KanbanResponse, error) {
	var resp KanbanResponse
	err := c.do(ctx, request{
		op:     "fetch pipeline",
		method: http.MethodGet,
		path:   fmt.Sprintf("/jobs/vacancies/%s/kanban", url.PathEscape(strings.TrimSpace(vacancyID))),
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateApplicationStatus moves an application to the stage named by status
func (c *Client) UpdateApplicationStatus(ctx context.Context, applicationID int, status string) error {
	return c.do(ctx, request{
		op:     "update application status",
		method: http.MethodPatch,
		path:   fmt.Sprintf("/jobs/applications/%d/status", applicationID),
		query:  url.Values{"status": []string{status}},
	}, nil)
}

// GetApplication fetches one application's full record
func (c *Client) GetApplication(ctx context.Context, applicationID int) (*ApplicationResponse, error) {
	var resp ApplicationResponse
	err := c.do(ctx, request{
		op:     "fetch application",
		method: http.MethodGet,
		path:   fmt.Sprintf("/jobs/applications/%d", applicationID),
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// VacancyQuery filters the vacancy listing
type VacancyQuery struct {
	OrganisationID  string
	IncludeArchived bool
	Skip            int
	Limit           int
}

// DefaultVacancyLimit is the page size when VacancyQuery.Limit is unset
const DefaultVacancyLimit = 100

// ListVacancies fetches one page of an organisation's vacancies
func (c *Client) ListVacancies(ctx context.Context, q VacancyQuery) ([]VacancyDTO, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultVacancyLimit
	}
	query := url.Values{
		"include_archived": []string{strconv.FormatBool(q.IncludeArchived)},
		"skip":             []string{strconv.Itoa(max(q.Skip, 0))},
		"limit":            []string{strconv.Itoa(limit)},
	}
	if org := strings.TrimSpace(q.OrganisationID); org != "" {
		query.Set("organisation_id", org)
	}

	var resp []VacancyDTO
	err := c.do(ctx, request{
		op:     "list vacancies",
		method: http.MethodGet,
		path:   "/jobs/vacancies",
		query:  query,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp, nil
}
