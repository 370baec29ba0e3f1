package pipeline

import "errors"

// Pipeline-related errors
var (
	// Validation errors
	ErrInvalidVacancyID     = errors.New("invalid vacancy ID")
	ErrInvalidApplicationID = errors.New("invalid application ID")
	ErrEmptyStageSlug       = errors.New("stage slug cannot be empty")
	ErrInvalidPage          = errors.New("skip cannot be negative")

	// Business logic errors
	ErrApplicationNotFound = errors.New("application not found")
	ErrVacancyNotFound     = errors.New("vacancy not found")
)
