package app

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/hirepaso/internal/api"
	"github.com/thenoetrevino/hirepaso/internal/board"
	"github.com/thenoetrevino/hirepaso/internal/config"
	"github.com/thenoetrevino/hirepaso/internal/database"
	"github.com/thenoetrevino/hirepaso/internal/metrics"
	"github.com/thenoetrevino/hirepaso/internal/models"
	pipelineservice "github.com/thenoetrevino/hirepaso/internal/services/pipeline"
	"github.com/thenoetrevino/hirepaso/internal/session"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics

	// Session state and its store (store is nil when running without a database)
	Session  *session.Session
	Sessions *database.SessionRepository
	db       *sql.DB

	// Remote access
	Client          *api.Client
	PipelineService pipelineservice.Service
}

// New creates a new App with all services initialized.
// db may be nil, in which case tokens live in memory only.
func New(cfg *config.Config, db *sql.DB, opts ...Option) *App {
	options := &appConfig{
		logger:  slog.Default(),
		profile: session.DefaultProfile,
	}
	for _, opt := range opts {
		opt(options)
	}
	if cfg == nil {
		cfg = config.Default()
	}
	if options.metrics == nil {
		options.metrics = metrics.New()
	}

	a := &App{
		Config:  cfg,
		Logger:  options.logger,
		Metrics: options.metrics,
		db:      db,
	}

	var store session.Store = session.NewMemoryStore()
	if db != nil {
		a.Sessions = database.NewSessionRepository(db)
		store = a.Sessions
	}
	a.Session = session.New(options.profile, store)

	clientOpts := []api.Option{
		api.WithLogger(a.Logger),
		api.WithObserver(a.Metrics),
	}
	if options.httpClient != nil {
		clientOpts = append(clientOpts, api.WithHTTPClient(options.httpClient))
	}
	a.Client = api.New(cfg.API, a.Session, clientOpts...)
	a.PipelineService = pipelineservice.NewService(a.Client, a.Logger)

	return a
}

// Restore loads stored credentials into the session
func (a *App) Restore(ctx context.Context) error {
	return a.Session.Restore(ctx)
}

// NewController returns a board controller wired to the pipeline service
func (a *App) NewController() *board.Controller {
	return board.NewController(a.PipelineService,
		board.WithLogger(a.Logger),
		board.WithObserver(a.Metrics))
}

// ListVacancies lists vacancies, scoped to the configured organisation when
// q names none
func (a *App) ListVacancies(ctx context.Context, q api.VacancyQuery) ([]*models.Vacancy, error) {
	if q.OrganisationID == "" {
		q.OrganisationID = a.Config.API.OrganisationID
	}
	return a.PipelineService.ListVacancies(ctx, q)
}

// RememberVacancy records the vacancy last opened, ignoring failures
func (a *App) RememberVacancy(ctx context.Context, vacancyID string) {
	if a.Sessions == nil {
		return
	}
	if err := a.Sessions.RememberVacancy(ctx, a.Session.Profile(), vacancyID); err != nil {
		a.Logger.Warn("failed to remember vacancy", "vacancy_id", vacancyID, "error", err)
	}
}

// LastVacancy returns the last vacancy opened with this profile, "" if unknown
func (a *App) LastVacancy(ctx context.Context) string {
	if a.Sessions == nil {
		return ""
	}
	id, err := a.Sessions.LastVacancy(ctx, a.Session.Profile())
	if err != nil {
		a.Logger.Warn("failed to read last vacancy", "error", err)
		return ""
	}
	return id
}

// Close performs cleanup of application resources.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
