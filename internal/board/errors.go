package board

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/hirepaso/internal/models"
	"github.com/thenoetrevino/hirepaso/internal/types"
)

// Board lifecycle errors
var (
	ErrInvalidVacancyID  = errors.New("vacancy id cannot be empty")
	ErrInvalidMoveIntent = errors.New("move intent must name either a target stage or a direction")
	ErrClosed            = errors.New("board is closed")

	// ErrSuperseded is returned when a network result arrives for a board
	// state that has since been replaced (newer load, vacancy change, teardown).
	ErrSuperseded = errors.New("result superseded by a newer board state")

	// ErrStaleSnapshot is a superseded load whose snapshot predates a move
	// applied while it was in flight. Nothing newer is pending, so load again.
	ErrStaleSnapshot = fmt.Errorf("%w: snapshot predates a local move", ErrSuperseded)
)

// No-op move errors. None of these mutate the board or reach the remote service.
var (
	ErrApplicationNotFound = errors.New("application not found on the board")
	ErrAlreadyInStage      = errors.New("application is already in the target stage")
	ErrUnknownStage        = errors.New("target stage does not exist on the board")
	ErrMoveInFlight        = errors.New("a move for this application is already in progress")
)

// IsNoop reports whether err means a move was rejected before anything happened
func IsNoop(err error) bool {
	return errors.Is(err, ErrApplicationNotFound) ||
		errors.Is(err, ErrAlreadyInStage) ||
		errors.Is(err, ErrUnknownStage) ||
		errors.Is(err, ErrMoveInFlight) ||
		errors.Is(err, models.ErrNoNextStage) ||
		errors.Is(err, models.ErrNoPrevStage)
}

// MoveError is a move the remote service rejected. The board is left as it was.
type MoveError struct {
	ApplicationID types.ApplicationID
	From          string
	To            string
	Err           error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move application %d from %q to %q: %v", e.ApplicationID, e.From, e.To, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}
