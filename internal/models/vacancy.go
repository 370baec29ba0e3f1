package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Vacancy is one job opening a recruiter can open a board for
type Vacancy struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	Location       string   `json:"location,omitempty"`
	SalaryFrom     *float64 `json:"salary_from,omitempty"`
	SalaryTo       *float64 `json:"salary_to,omitempty"`
	Currency       string   `json:"currency,omitempty"`
	EmploymentType string   `json:"employment_type,omitempty"`
}

// DisplayTitle falls back to the id when the vacancy has no title
func (v *Vacancy) DisplayTitle() string {
	if title := strings.TrimSpace(v.Title); title != "" {
		return title
	}
	return "Vacancy " + v.ID
}

// SalaryRange renders "90000-120000 USD", "from 90000", "up to 120000" or ""
func (v *Vacancy) SalaryRange() string {
	var out string
	switch {
	case v.SalaryFrom != nil && v.SalaryTo != nil:
		out = fmt.Sprintf("%s-%s", formatAmount(*v.SalaryFrom), formatAmount(*v.SalaryTo))
	case v.SalaryFrom != nil:
		out = "from " + formatAmount(*v.SalaryFrom)
	case v.SalaryTo != nil:
		out = "up to " + formatAmount(*v.SalaryTo)
	default:
		return ""
	}
	if v.Currency != "" {
		out += " " + v.Currency
	}
	return out
}

func formatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
