package converters

import (
	"strings"

	"github.com/thenoetrevino/hirepaso/internal/api"
	"github.com/thenoetrevino/hirepaso/internal/models"
)

// VacanciesToModel converts a vacancy listing, dropping entries without an id
func VacanciesToModel(dtos []api.VacancyDTO) []*models.Vacancy {
	vacancies := make([]*models.Vacancy, 0, len(dtos))
	for _, dto := range dtos {
		id := strings.TrimSpace(string(dto.ID))
		if id == "" {
			continue
		}
		vacancies = append(vacancies, &models.Vacancy{
			ID:             id,
			Title:          strings.TrimSpace(dto.Title),
			Description:    dto.Description,
			Location:       strings.TrimSpace(dto.Location),
			SalaryFrom:     dto.SalaryFrom,
			SalaryTo:       dto.SalaryTo,
			Currency:       dto.Currency,
			EmploymentType: dto.EmploymentType,
		})
	}
	return vacancies
}
