package tui

import (
	"github.com/thenoetrevino/hirepaso/internal/board"
	"github.com/thenoetrevino/hirepaso/internal/models"
	"github.com/thenoetrevino/hirepaso/internal/types"
)

// loadResultMsg is delivered when a pipeline fetch settles
type loadResultMsg struct {
	vacancyID types.VacancyID
	err       error
}

// moveResultMsg is delivered when a stage change settles
type moveResultMsg struct {
	ticket board.MoveTicket
	err    error
}

// detailResultMsg is delivered when an application detail fetch settles
type detailResultMsg struct {
	applicationID types.ApplicationID
	detail        *models.ApplicationDetail
	err           error
}
