package models

import "errors"

// Domain-specific errors for stage transitions
var (
	// ErrNoNextStage indicates that the application is already in the last stage
	ErrNoNextStage = errors.New("application is already in the last stage")

	// ErrNoPrevStage indicates that the application is already in the first stage
	ErrNoPrevStage = errors.New("application is already in the first stage")
)
