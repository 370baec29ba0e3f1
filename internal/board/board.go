// Package board holds the kanban state for one vacancy and reconciles
// stage moves against the remote status update.
//
// Moves are confirm-then-apply: BeginMove validates the intent and marks the
// application in flight, the caller performs the remote write, and FinishMove
// applies the move only once the write succeeded. Every load and move carries
// a ticket; results whose ticket no longer matches the board are discarded.
package board

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/thenoetrevino/hirepaso/internal/models"
	"github.com/thenoetrevino/hirepaso/internal/types"
)

// LoadTicket identifies one pipeline fetch
type LoadTicket struct {
	VacancyID types.VacancyID
	epoch     uint64
	revision  uint64
}

// MoveIntent is a request to change an application's stage, independent of
// whether it came from a drop (TargetSlug) or a next/previous command (Direction).
type MoveIntent struct {
	ApplicationID types.ApplicationID
	TargetSlug    string
	Direction     models.Direction
}

// MoveTicket is a validated move waiting for the remote write
type MoveTicket struct {
	ApplicationID types.ApplicationID
	From          string
	To            string
	epoch         uint64
}

// Board is the state of one vacancy's pipeline. Safe for concurrent use.
type Board struct {
	mu        sync.RWMutex
	vacancyID types.VacancyID
	columns   []*models.Column
	epoch     uint64
	revision  uint64
	inFlight  map[types.ApplicationID]struct{}
	loading   bool
	loadErr   error
	closed    bool
	logger    *slog.Logger
}

// New creates an empty board. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Board {
	if logger == nil {
		logger = slog.Default()
	}
	return &Board{
		inFlight: make(map[types.ApplicationID]struct{}),
		logger:   logger,
	}
}

// ============================================================================
// LOAD
// ============================================================================

// BeginLoad starts a fetch for vacancyID. Every earlier load and move becomes stale.
func (b *Board) BeginLoad(vacancyID types.VacancyID) (LoadTicket, error) {
	if vacancyID.IsZero() {
		return LoadTicket{}, ErrInvalidVacancyID
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return LoadTicket{}, ErrClosed
	}

	if b.vacancyID.String() != vacancyID.String() {
		// A different vacancy never shows the previous one's cards
		b.columns = nil
	}

	b.epoch++
	b.vacancyID = types.VacancyID(vacancyID.String())
	b.inFlight = make(map[types.ApplicationID]struct{})
	b.loading = true

	return LoadTicket{VacancyID: b.vacancyID, epoch: b.epoch, revision: b.revision}, nil
}

// FinishLoad settles a fetch. On failure the board becomes empty and the error is
// kept in LoadErr. A snapshot that predates a move applied while it was in flight
// is discarded with ErrStaleSnapshot; the caller should load again.
func (b *Board) FinishLoad(ticket LoadTicket, pipeline *models.Pipeline, fetchErr error) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed || ticket.epoch != b.epoch {
		b.logger.Debug("discarding stale pipeline", "vacancy_id", ticket.VacancyID.String())
		return ErrSuperseded
	}

	b.loading = false

	if ticket.revision != b.revision {
		b.logger.Debug("discarding pipeline older than local moves", "vacancy_id", ticket.VacancyID.String())
		return ErrStaleSnapshot
	}

	if fetchErr != nil {
		b.columns = nil
		b.loadErr = fetchErr
		b.revision++
		return fmt.Errorf("load pipeline for vacancy %s: %w", ticket.VacancyID, fetchErr)
	}

	b.columns = b.normalize(pipeline)
	b.loadErr = nil
	b.revision++

	return nil
}

// normalize deep-copies a snapshot so that every application id is stored under
// exactly one stage and every card's StageSlug names that stage. Stages
// without a slug cannot be moved to and are dropped.
func (b *Board) normalize(pipeline *models.Pipeline) []*models.Column {
	if pipeline == nil {
		return nil
	}

	columns := make([]*models.Column, 0, len(pipeline.Columns))
	bySlug := make(map[string]*models.Column, len(pipeline.Columns))
	seen := make(map[types.ApplicationID]string)

	for _, src := range pipeline.Columns {
		if src == nil {
			continue
		}
		slug := strings.TrimSpace(src.Slug)
		if slug == "" {
			b.logger.Warn("pipeline has a stage without a slug, dropping it",
				"label", src.Label, "applications", len(src.Cards))
			continue
		}

		col, ok := bySlug[slug]
		if !ok {
			col = &models.Column{
				Stage: models.Stage{Slug: slug, Label: src.Label, Order: len(columns)},
				Cards: make([]*models.ApplicationCard, 0, len(src.Cards)),
			}
			if col.Label == "" {
				col.Label = slug
			}
			bySlug[slug] = col
			columns = append(columns, col)
		} else {
			b.logger.Warn("pipeline repeats a stage, merging its cards", "stage", slug)
		}

		for _, card := range src.Cards {
			if card == nil {
				continue
			}
			if first, dup := seen[card.ID]; dup {
				b.logger.Warn("pipeline lists an application twice, keeping first",
					"application_id", card.ID.ToInt(), "kept_stage", first, "dropped_stage", slug)
				continue
			}
			seen[card.ID] = slug

			cp := *card
			cp.StageSlug = slug
			col.Cards = append(col.Cards, &cp)
		}
	}

	return columns
}

// ============================================================================
// MOVE
// ============================================================================

// BeginMove validates a move intent. No-op cases return an error for which
// IsNoop is true and leave the board untouched. On success the application is
// marked in flight until FinishMove is called with the returned ticket.
func (b *Board) BeginMove(intent MoveIntent) (MoveTicket, error) {
	switch intent.Direction {
	case models.NoDirection, models.Forward, models.Backward:
	default:
		return MoveTicket{}, ErrInvalidMoveIntent
	}

	hasTarget := strings.TrimSpace(intent.TargetSlug) != ""
	hasDirection := intent.Direction != models.NoDirection
	if hasTarget == hasDirection {
		return MoveTicket{}, ErrInvalidMoveIntent
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return MoveTicket{}, ErrClosed
	}

	colIdx, _, ok := b.locate(intent.ApplicationID)
	if !ok {
		return MoveTicket{}, ErrApplicationNotFound
	}
	if _, busy := b.inFlight[intent.ApplicationID]; busy {
		return MoveTicket{}, ErrMoveInFlight
	}

	from := b.columns[colIdx].Slug
	var to string

	switch intent.Direction {
	case models.Forward:
		if colIdx == len(b.columns)-1 {
			return MoveTicket{}, models.ErrNoNextStage
		}
		to = b.columns[colIdx+1].Slug
	case models.Backward:
		if colIdx == 0 {
			return MoveTicket{}, models.ErrNoPrevStage
		}
		to = b.columns[colIdx-1].Slug
	default:
		to = strings.TrimSpace(intent.TargetSlug)
		if to == from {
			return MoveTicket{}, ErrAlreadyInStage
		}
		if b.columnIndex(to) < 0 {
			return MoveTicket{}, ErrUnknownStage
		}
	}

	b.inFlight[intent.ApplicationID] = struct{}{}

	return MoveTicket{
		ApplicationID: intent.ApplicationID,
		From:          from,
		To:            to,
		epoch:         b.epoch,
	}, nil
}

// FinishMove settles a move after the remote write. A failed write leaves the
// board as it was and comes back as a *MoveError. A successful write moves the
// card to the end of the target stage.
func (b *Board) FinishMove(ticket MoveTicket, updateErr error) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed || ticket.epoch != b.epoch {
		return ErrSuperseded
	}

	delete(b.inFlight, ticket.ApplicationID)

	if updateErr != nil {
		return &MoveError{
			ApplicationID: ticket.ApplicationID,
			From:          ticket.From,
			To:            ticket.To,
			Err:           updateErr,
		}
	}

	colIdx, cardIdx, ok := b.locate(ticket.ApplicationID)
	targetIdx := b.columnIndex(ticket.To)
	if !ok || targetIdx < 0 || b.columns[colIdx].Slug != ticket.From {
		return ErrSuperseded
	}

	src := b.columns[colIdx]
	card := src.Cards[cardIdx]
	src.Cards = append(src.Cards[:cardIdx:cardIdx], src.Cards[cardIdx+1:]...)

	card.StageSlug = ticket.To
	dst := b.columns[targetIdx]
	dst.Cards = append(dst.Cards, card)

	b.revision++

	return nil
}

// ============================================================================
// TEARDOWN
// ============================================================================

// Close tears the board down. Any result that arrives afterwards is discarded.
func (b *Board) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	b.epoch++
	b.columns = nil
	b.loading = false
	b.inFlight = make(map[types.ApplicationID]struct{})
}

// ============================================================================
// ACCESSORS
// ============================================================================

// Columns returns a deep copy of the current columns in stage order
func (b *Board) Columns() []*models.Column {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]*models.Column, len(b.columns))
	for i, col := range b.columns {
		out[i] = col.Clone()
	}
	return out
}

// Stages returns the stage sequence without cards
func (b *Board) Stages() []models.Stage {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]models.Stage, len(b.columns))
	for i, col := range b.columns {
		out[i] = col.Stage
	}
	return out
}

// Membership maps every application id to the stage it is stored under
func (b *Board) Membership() map[types.ApplicationID]string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make(map[types.ApplicationID]string)
	for _, col := range b.columns {
		for _, card := range col.Cards {
			out[card.ID] = col.Slug
		}
	}
	return out
}

// StageOf returns the stage slug holding the application
func (b *Board) StageOf(id types.ApplicationID) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	colIdx, _, ok := b.locate(id)
	if !ok {
		return "", false
	}
	return b.columns[colIdx].Slug, true
}

func (b *Board) VacancyID() types.VacancyID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.vacancyID
}

func (b *Board) Loading() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.loading
}

// LoadErr returns the error of the last settled load, nil after a successful one
func (b *Board) LoadErr() error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.loadErr
}

// InFlight reports whether a move for id is waiting on the remote service
func (b *Board) InFlight(id types.ApplicationID) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.inFlight[id]
	return ok
}

// PendingMoves returns how many moves are waiting on the remote service
func (b *Board) PendingMoves() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.inFlight)
}

func (b *Board) Closed() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.closed
}

// locate finds the column and card index of an application. Caller holds the lock.
func (b *Board) locate(id types.ApplicationID) (int, int, bool) {
	for ci, col := range b.columns {
		for ti, card := range col.Cards {
			if card.ID == id {
				return ci, ti, true
			}
		}
	}
	return -1, -1, false
}

// columnIndex returns the position of the stage with slug, or -1. Caller holds the lock.
func (b *Board) columnIndex(slug string) int {
	for i, col := range b.columns {
		if col.Slug == slug {
			return i
		}
	}
	return -1
}
