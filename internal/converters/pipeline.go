// Package converters turns recruiting API wire shapes into domain models.
//
// All conversions handle:
// - optional nested records (nil pointers stay nil)
// - timestamps with or without a zone
// - identifiers sent as numbers or strings
//
// Example usage:
//
//	pipeline := converters.PipelineToModel(vacancyID, resp)
//	detail, err := converters.ApplicationToModel(appResp)
package converters

import (
	"strings"

	"github.com/thenoetrevino/hirepaso/internal/api"
	"github.com/thenoetrevino/hirepaso/internal/models"
	"github.com/thenoetrevino/hirepaso/internal/types"
)

// PipelineToModel converts a kanban response to a models.Pipeline.
// Column order is preserved and becomes Stage.Order.
func PipelineToModel(vacancyID types.VacancyID, resp *api.KanbanResponse) *models.Pipeline {
	pipeline := &models.Pipeline{VacancyID: vacancyID.String()}
	if resp == nil {
		return pipeline
	}

	pipeline.Columns = make([]*models.Column, 0, len(resp.Columns))
	for i, col := range resp.Columns {
		pipeline.Columns = append(pipeline.Columns, ColumnToModel(i, col))
	}
	return pipeline
}

// ColumnToModel converts one kanban column; every card takes the column's slug
func ColumnToModel(order int, col api.KanbanColumn) *models.Column {
	slug := strings.TrimSpace(col.Slug)
	column := &models.Column{
		Stage: models.Stage{
			Slug:  slug,
			Label: col.Label,
			Order: order,
		},
		Cards: make([]*models.ApplicationCard, 0, len(col.Applications)),
	}

	for _, app := range col.Applications {
		column.Cards = append(column.Cards, &models.ApplicationCard{
			ID:        types.ApplicationID(app.ID),
			Applicant: ApplicantToModel(app.Applicant),
			StageSlug: slug,
		})
	}
	return column
}

// ApplicantToModel converts applicant fields, trimming stray whitespace
func ApplicantToModel(a api.ApplicantDTO) models.Applicant {
	return models.Applicant{
		ID:        a.ID,
		FirstName: strings.TrimSpace(a.FirstName),
		LastName:  strings.TrimSpace(a.LastName),
		Email:     strings.TrimSpace(a.Email),
		Phone:     strings.TrimSpace(a.Phone),
		Role:      a.Role,
	}
}
