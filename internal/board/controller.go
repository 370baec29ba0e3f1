package board

import (
	"context"
	"errors"
	"log/slog"

	"github.com/thenoetrevino/hirepaso/internal/models"
	"github.com/thenoetrevino/hirepaso/internal/types"
)

// Remote is the job/application service the board reconciles against
type Remote interface {
	FetchPipeline(ctx context.Context, vacancyID types.VacancyID) (*models.Pipeline, error)
	UpdateApplicationStage(ctx context.Context, id types.ApplicationID, stageSlug string) error
	FetchApplicationDetail(ctx context.Context, id types.ApplicationID) (*models.ApplicationDetail, error)
}

// Outcome labels passed to an Observer
const (
	ResultOK         = "ok"
	ResultError      = "error"
	ResultNoop       = "noop"
	ResultSuperseded = "superseded"
)

// Observer receives the outcome of every board operation
type Observer interface {
	ObserveLoad(result string)
	ObserveMove(result string)
	ObserveDetail(result string)
}

type nopObserver struct{}

func (nopObserver) ObserveLoad(string)   {}
func (nopObserver) ObserveMove(string)   {}
func (nopObserver) ObserveDetail(string) {}

// Controller runs board operations against a Remote. Each operation is split
// into a synchronous Begin step and a blocking Complete step so an event loop
// can run the remote call off its own goroutine.
type Controller struct {
	board    *Board
	detail   *DetailView
	remote   Remote
	logger   *slog.Logger
	observer Observer
}

// ControllerOption configures a Controller
type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func WithObserver(observer Observer) ControllerOption {
	return func(c *Controller) {
		if observer != nil {
			c.observer = observer
		}
	}
}

// NewController creates a controller with a fresh board and detail view
func NewController(remote Remote, opts ...ControllerOption) *Controller {
	c := &Controller{
		remote:   remote,
		logger:   slog.Default(),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.board = New(c.logger)
	c.detail = NewDetailView()
	return c
}

func (c *Controller) Board() *Board {
	return c.board
}

func (c *Controller) Detail() *DetailView {
	return c.detail
}

// Load fetches the pipeline for vacancyID and replaces the board with it
func (c *Controller) Load(ctx context.Context, vacancyID types.VacancyID) error {
	ticket, err := c.BeginLoad(vacancyID)
	if err != nil {
		return err
	}
	return c.CompleteLoad(ctx, ticket)
}

// BeginLoad marks the board loading and invalidates older loads
func (c *Controller) BeginLoad(vacancyID types.VacancyID) (LoadTicket, error) {
	return c.board.BeginLoad(vacancyID)
}

// staleLoadAttempts bounds the fetches one load makes while local moves keep
// settling underneath it
const staleLoadAttempts = 3

// CompleteLoad runs the fetch for ticket and settles it. A snapshot made
// stale by a local move is fetched again, up to staleLoadAttempts fetches in
// total; after that ErrStaleSnapshot is returned and the board keeps its
// locally settled state.
func (c *Controller) CompleteLoad(ctx context.Context, ticket LoadTicket) error {
	for attempt := 1; ; attempt++ {
		err := c.fetchAndFinish(ctx, ticket)
		if !errors.Is(err, ErrStaleSnapshot) {
			return err
		}
		if attempt == staleLoadAttempts {
			c.logger.Warn("pipeline kept changing during load, giving up",
				"vacancy_id", ticket.VacancyID.String(), "attempts", attempt)
			return err
		}

		c.logger.Debug("reloading stale pipeline", "vacancy_id", ticket.VacancyID.String(), "attempt", attempt)
		if ticket, err = c.BeginLoad(ticket.VacancyID); err != nil {
			return err
		}
	}
}

func (c *Controller) fetchAndFinish(ctx context.Context, ticket LoadTicket) error {
	pipeline, fetchErr := c.remote.FetchPipeline(ctx, ticket.VacancyID)
	err := c.board.FinishLoad(ticket, pipeline, fetchErr)

	switch {
	case errors.Is(err, ErrSuperseded):
		c.observer.ObserveLoad(ResultSuperseded)
	case err != nil:
		c.logger.Error("failed to load pipeline", "vacancy_id", ticket.VacancyID.String(), "error", fetchErr)
		c.observer.ObserveLoad(ResultError)
	default:
		c.logger.Info("pipeline loaded", "vacancy_id", ticket.VacancyID.String(), "applications", pipeline.CardCount())
		c.observer.ObserveLoad(ResultOK)
	}

	return err
}

// Move changes an application's stage. No-op intents never reach the remote
// service. A successful write whose result arrives after the board moved on
// triggers a reload so the board reflects the remote state.
func (c *Controller) Move(ctx context.Context, intent MoveIntent) (MoveTicket, error) {
	ticket, err := c.BeginMove(intent)
	if err != nil {
		return ticket, err
	}
	return ticket, c.CompleteMove(ctx, ticket)
}

// BeginMove validates intent and marks the application in flight
func (c *Controller) BeginMove(intent MoveIntent) (MoveTicket, error) {
	ticket, err := c.board.BeginMove(intent)
	if err != nil && IsNoop(err) {
		c.logger.Debug("ignoring move", "application_id", intent.ApplicationID.ToInt(), "reason", err)
		c.observer.ObserveMove(ResultNoop)
	}
	return ticket, err
}

// CompleteMove sends the stage change for ticket and applies it on success
func (c *Controller) CompleteMove(ctx context.Context, ticket MoveTicket) error {
	updateErr := c.remote.UpdateApplicationStage(ctx, ticket.ApplicationID, ticket.To)
	err := c.board.FinishMove(ticket, updateErr)

	switch {
	case errors.Is(err, ErrSuperseded):
		c.observer.ObserveMove(ResultSuperseded)
		if updateErr == nil && !c.board.Closed() {
			c.logger.Info("move settled after board changed, reloading",
				"application_id", ticket.ApplicationID.ToInt(), "to", ticket.To)
			return c.Load(ctx, c.board.VacancyID())
		}
	case err != nil:
		c.logger.Error("failed to move application",
			"application_id", ticket.ApplicationID.ToInt(), "from", ticket.From, "to", ticket.To, "error", updateErr)
		c.observer.ObserveMove(ResultError)
	default:
		c.logger.Info("application moved",
			"application_id", ticket.ApplicationID.ToInt(), "from", ticket.From, "to", ticket.To)
		c.observer.ObserveMove(ResultOK)
	}

	return err
}

// OpenDetail opens the overlay for id and fetches its record
func (c *Controller) OpenDetail(ctx context.Context, id types.ApplicationID) (*models.ApplicationDetail, error) {
	return c.CompleteDetail(ctx, c.BeginDetail(id))
}

// BeginDetail shows the overlay for id in its loading state
func (c *Controller) BeginDetail(id types.ApplicationID) DetailTicket {
	return c.detail.Open(id)
}

// CompleteDetail fetches the record for ticket and settles the overlay
func (c *Controller) CompleteDetail(ctx context.Context, ticket DetailTicket) (*models.ApplicationDetail, error) {
	id := ticket.ApplicationID
	detail, fetchErr := c.remote.FetchApplicationDetail(ctx, id)
	if err := c.detail.Finish(ticket, detail, fetchErr); err != nil {
		if errors.Is(err, ErrSuperseded) {
			c.observer.ObserveDetail(ResultSuperseded)
		} else {
			c.logger.Error("failed to load application detail", "application_id", id.ToInt(), "error", fetchErr)
			c.observer.ObserveDetail(ResultError)
		}
		return nil, err
	}

	c.observer.ObserveDetail(ResultOK)
	return c.detail.Detail(), nil
}

func (c *Controller) CloseDetail() {
	c.detail.Close()
}

// Close tears down the board and overlay; late results are discarded
func (c *Controller) Close() {
	c.detail.Close()
	c.board.Close()
}
