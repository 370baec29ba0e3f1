package converters

import (
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/hirepaso/internal/api"
	"github.com/thenoetrevino/hirepaso/internal/models"
	"github.com/thenoetrevino/hirepaso/internal/types"
)

// timeLayouts are the timestamp shapes seen from the API, most specific first
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses an API timestamp. Values without a zone are taken as UTC.
// An empty string yields the zero time.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", s)
}

// ApplicationToModel converts a full application record.
// Timestamp parse failures are explicit, never silently zeroed.
func ApplicationToModel(resp *api.ApplicationResponse) (*models.ApplicationDetail, error) {
	if resp == nil {
		return nil, nil
	}

	createdAt, err := ParseTimestamp(resp.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("application %d created_at: %w", resp.ID, err)
	}

	detail := &models.ApplicationDetail{
		ID:          types.ApplicationID(resp.ID),
		VacancyID:   string(resp.VacancyID),
		Status:      resp.Status,
		StatusLabel: resp.StatusLabel,
		CreatedAt:   createdAt,
		Applicant:   ApplicantToModel(resp.Applicant),
	}

	if resp.CVFile != nil {
		detail.CVFile = &models.CVFile{
			OriginalFilename: resp.CVFile.OriginalFilename,
			Size:             resp.CVFile.Size,
			MimeType:         resp.CVFile.MimeType,
			StorageURL:       resp.CVFile.StorageURL,
		}
	}

	if detail.ResumeEvaluation, err = EvaluationToModel(resp.ResumeEvaluation); err != nil {
		return nil, fmt.Errorf("application %d resume evaluation: %w", resp.ID, err)
	}
	if detail.InterviewEvaluation, err = EvaluationToModel(resp.InterviewEvaluation); err != nil {
		return nil, fmt.Errorf("application %d interview evaluation: %w", resp.ID, err)
	}

	return detail, nil
}

// EvaluationToModel converts an optional evaluation; nil stays nil
func EvaluationToModel(e *api.EvaluationDTO) (*models.Evaluation, error) {
	if e == nil {
		return nil, nil
	}

	evaluatedAt, err := ParseTimestamp(e.EvaluatedAt)
	if err != nil {
		return nil, err
	}

	scores := make(map[string]float64, len(e.CategoryScores))
	for k, v := range e.CategoryScores {
		scores[k] = v
	}

	return &models.Evaluation{
		FinalScore:     e.FinalScore,
		CategoryScores: scores,
		Justification:  e.Justification,
		EvaluatedAt:    evaluatedAt,
		LLMModelUsed:   e.LLMModelUsed,
	}, nil
}
