package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/hirepaso/internal/api"
	"github.com/thenoetrevino/hirepaso/internal/converters"
	"github.com/thenoetrevino/hirepaso/internal/models"
	"github.com/thenoetrevino/hirepaso/internal/types"
)

// Service defines all pipeline-related business operations. It satisfies board.Remote.
type Service interface {
	// Read operations
	FetchPipeline(ctx context.Context, vacancyID types.VacancyID) (*models.Pipeline, error)
	FetchApplicationDetail(ctx context.Context, id types.ApplicationID) (*models.ApplicationDetail, error)
	ListVacancies(ctx context.Context, q api.VacancyQuery) ([]*models.Vacancy, error)

	// Write operations
	UpdateApplicationStage(ctx context.Context, id types.ApplicationID, stageSlug string) error
}

// Client is the subset of the API client the service needs
type Client interface {
	GetKanban(ctx context.Context, vacancyID string) (*api.KanbanResponse, error)
	UpdateApplicationStatus(ctx context.Context, applicationID int, status string) error
	GetApplication(ctx context.Context, applicationID int) (*api.ApplicationResponse, error)
	ListVacancies(ctx context.Context, q api.VacancyQuery) ([]api.VacancyDTO, error)
}

// service implements Service on top of the recruiting API
type service struct {
	client Client
	logger *slog.Logger
}

// NewService creates a new pipeline service
func NewService(client Client, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		client: client,
		logger: logger,
	}
}

// FetchPipeline retrieves the ordered stages and cards for a vacancy
func (s *service) FetchPipeline(ctx context.Context, vacancyID types.VacancyID) (*models.Pipeline, error) {
	if vacancyID.IsZero() {
		return nil, ErrInvalidVacancyID
	}

	resp, err := s.client.GetKanban(ctx, vacancyID.String())
	if err != nil {
		if api.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrVacancyNotFound, vacancyID)
		}
		return nil, err
	}

	pipeline := converters.PipelineToModel(vacancyID, resp)
	s.logger.Debug("fetched pipeline",
		"vacancy_id", vacancyID.String(),
		"stages", len(pipeline.Columns),
		"applications", pipeline.CardCount())
	return pipeline, nil
}

// UpdateApplicationStage persists a stage change for one application
func (s *service) UpdateApplicationStage(ctx context.Context, id types.ApplicationID, stageSlug string) error {
	if !id.Valid() {
		return ErrInvalidApplicationID
	}
	stageSlug = strings.TrimSpace(stageSlug)
	if stageSlug == "" {
		return ErrEmptyStageSlug
	}

	if err := s.client.UpdateApplicationStatus(ctx, id.ToInt(), stageSlug); err != nil {
		if api.IsNotFound(err) {
			return fmt.Errorf("%w: %d", ErrApplicationNotFound, id)
		}
		return err
	}

	s.logger.Debug("updated application stage", "application_id", id.ToInt(), "stage", stageSlug)
	return nil
}

// FetchApplicationDetail retrieves an application's full record
func (s *service) FetchApplicationDetail(ctx context.Context, id types.ApplicationID) (*models.ApplicationDetail, error) {
	if !id.Valid() {
		return nil, ErrInvalidApplicationID
	}

	resp, err := s.client.GetApplication(ctx, id.ToInt())
	if err != nil {
		if api.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %d", ErrApplicationNotFound, id)
		}
		return nil, err
	}

	detail, err := converters.ApplicationToModel(resp)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, errors.New("empty application response")
	}
	return detail, nil
}

// ListVacancies returns one page of vacancies in the order the service sends them
func (s *service) ListVacancies(ctx context.Context, q api.VacancyQuery) ([]*models.Vacancy, error) {
	if q.Skip < 0 {
		return nil, ErrInvalidPage
	}

	resp, err := s.client.ListVacancies(ctx, q)
	if err != nil {
		return nil, err
	}

	vacancies := converters.VacanciesToModel(resp)
	s.logger.Debug("listed vacancies",
		"organisation_id", q.OrganisationID,
		"include_archived", q.IncludeArchived,
		"count", len(vacancies))
	return vacancies, nil
}
