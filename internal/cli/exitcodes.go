package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/hirepaso/internal/api"
	"github.com/thenoetrevino/hirepaso/internal/board"
	"github.com/thenoetrevino/hirepaso/internal/models"
	"github.com/thenoetrevino/hirepaso/internal/services/pipeline"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: network errors, expired sessions, an unavailable service,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Vacancy not found, application not found, unknown stage.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Responses that cannot be decoded.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Moving past the first or last stage, a stage change
	// the service rejects, or ids that fail validation.
	ExitValidation = 5
)

// ExitStatusError carries the exit code a command wants the process to end with.
// The error has already been reported to the user.
type ExitStatusError struct {
	Code int
	Err  error
}

func (e *ExitStatusError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitStatusError) Unwrap() error {
	return e.Err
}

// Exit wraps err with an exit code
func Exit(code int, err error) error {
	return &ExitStatusError{Code: code, Err: err}
}

// ExitCode returns the process exit code for an error returned by a command
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitStatusError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	_, code := Classify(err)
	return code
}

// Classify maps a domain error to a machine-readable error code and an exit code
func Classify(err error) (string, int) {
	var apiErr *api.Error

	switch {
	case err == nil:
		return "", ExitSuccess
	case errors.Is(err, board.ErrApplicationNotFound), errors.Is(err, pipeline.ErrApplicationNotFound):
		return "APPLICATION_NOT_FOUND", ExitNotFound
	case errors.Is(err, pipeline.ErrVacancyNotFound):
		return "VACANCY_NOT_FOUND", ExitNotFound
	case errors.Is(err, board.ErrUnknownStage):
		return "STAGE_NOT_FOUND", ExitNotFound
	case errors.Is(err, models.ErrNoNextStage):
		return "NO_NEXT_STAGE", ExitValidation
	case errors.Is(err, models.ErrNoPrevStage):
		return "NO_PREV_STAGE", ExitValidation
	case errors.Is(err, board.ErrInvalidVacancyID), errors.Is(err, pipeline.ErrInvalidVacancyID):
		return "INVALID_VACANCY_ID", ExitValidation
	case errors.Is(err, pipeline.ErrInvalidApplicationID):
		return "INVALID_APPLICATION_ID", ExitValidation
	case errors.Is(err, pipeline.ErrEmptyStageSlug), errors.Is(err, board.ErrInvalidMoveIntent):
		return "INVALID_TARGET", ExitUsage
	case errors.Is(err, pipeline.ErrInvalidPage):
		return "INVALID_PAGE", ExitUsage
	case errors.Is(err, api.ErrSessionExpired):
		return "SESSION_EXPIRED", ExitError
	case errors.Is(err, api.ErrServiceUnavailable):
		return "SERVICE_UNAVAILABLE", ExitError
	case errors.As(err, &apiErr) && apiErr.StatusCode == 404:
		return "NOT_FOUND", ExitNotFound
	case errors.As(err, &apiErr) && apiErr.ClientError():
		return "REJECTED", ExitValidation
	default:
		return "REQUEST_FAILED", ExitError
	}
}

// Fail reports err through the formatter and returns the matching *ExitStatusError
func Fail(f *OutputFormatter, err error) error {
	code, exit := Classify(err)
	return FailWith(f, code, exit, err, "")
}

// FailWith reports err with an explicit code and suggestion
func FailWith(f *OutputFormatter, code string, exit int, err error, suggestion string) error {
	_ = f.ErrorWithSuggestion(code, err.Error(), suggestion)
	return Exit(exit, err)
}
