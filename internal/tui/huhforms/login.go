package huhforms

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/hirepaso/internal/models"
)

// CreateLoginForm asks for the token pair issued by the recruiting portal
func CreateLoginForm(accessToken, refreshToken *string) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("access_token").
			Title("Access token").
			Description("Copy it from the portal's developer settings").
			EchoMode(huh.EchoModePassword).
			Validate(requireValue("access token")).
			Value(accessToken),

		huh.NewInput().
			Key("refresh_token").
			Title("Refresh token (optional)").
			Description("Lets hirepaso renew an expired access token").
			EchoMode(huh.EchoModePassword).
			Value(refreshToken),
	))
}

// CreateVacancyForm asks which vacancy's pipeline to open
func CreateVacancyForm(vacancyID *string) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("vacancy_id").
			Title("Vacancy").
			Placeholder("Enter vacancy id...").
			Validate(requireValue("vacancy id")).
			Value(vacancyID),
	))
}

// CreateVacancySelect offers the listed vacancies to pick from
func CreateVacancySelect(vacancyID *string, vacancies []*models.Vacancy) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Key("vacancy_id").
			Title("Vacancy").
			Description("Pick the pipeline to open").
			Options(VacancyOptions(vacancies)...).
			Height(min(len(vacancies)+2, maxSelectHeight)).
			Value(vacancyID),
	))
}

// maxSelectHeight caps the vacancy picker so long listings scroll
const maxSelectHeight = 12

// VacancyOptions labels each vacancy "#id title (location)"
func VacancyOptions(vacancies []*models.Vacancy) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(vacancies))
	for _, v := range vacancies {
		label := fmt.Sprintf("#%s %s", v.ID, v.DisplayTitle())
		if v.Location != "" {
			label += " (" + v.Location + ")"
		}
		options = append(options, huh.NewOption(label, v.ID))
	}
	return options
}

func requireValue(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(name + " is required")
		}
		return nil
	}
}
