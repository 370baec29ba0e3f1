package models

import (
	"strings"
	"time"

	"github.com/thenoetrevino/hirepaso/internal/types"
)

// Applicant is the candidate behind an application
type Applicant struct {
	ID        int    `json:"id,omitempty"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role,omitempty"`
}

// FullName joins first and last name, skipping empty parts
func (a Applicant) FullName() string {
	return strings.TrimSpace(strings.Join([]string{a.FirstName, a.LastName}, " "))
}

// ApplicationCard is the board's view of one application.
// StageSlug always equals the slug of the column the card is stored under.
type ApplicationCard struct {
	ID        types.ApplicationID `json:"id"`
	Applicant Applicant           `json:"applicant"`
	StageSlug string              `json:"stage"`
}

// CVFile describes the resume uploaded with an application
type CVFile struct {
	OriginalFilename string `json:"original_filename"`
	Size             int64  `json:"size"`
	MimeType         string `json:"mime_type"`
	StorageURL       string `json:"storage_url"`
}

// SizeKB returns the file size in kilobytes
func (f CVFile) SizeKB() float64 {
	return float64(f.Size) / 1024
}

// Evaluation is a scored review of a resume or an interview.
// FinalScore is a fraction in [0,1]; category scores are on a 0-10 scale.
type Evaluation struct {
	FinalScore     float64            `json:"final_score"`
	CategoryScores map[string]float64 `json:"category_scores"`
	Justification  string             `json:"justification"`
	EvaluatedAt    time.Time          `json:"evaluated_at"`
	LLMModelUsed   string             `json:"llm_model_used,omitempty"`
}

// FinalPercent returns the final score as a percentage
func (e *Evaluation) FinalPercent() float64 {
	if e == nil {
		return 0
	}
	return e.FinalScore * 100
}

// CategoryPercent converts a 0-10 category score to a percentage
func CategoryPercent(score float64) float64 {
	return score * 10
}

// ApplicationDetail is the full application record shown in the detail overlay.
// It is fetched fresh on every open and never stored on the board.
type ApplicationDetail struct {
	ID                  types.ApplicationID `json:"id"`
	VacancyID           string              `json:"vacancy_id"`
	Status              string              `json:"status"`
	StatusLabel         string              `json:"status_label,omitempty"`
	CreatedAt           time.Time           `json:"created_at"`
	Applicant           Applicant           `json:"applicant"`
	CVFile              *CVFile             `json:"cv_file,omitempty"`
	ResumeEvaluation    *Evaluation         `json:"resume_evaluation,omitempty"`
	InterviewEvaluation *Evaluation         `json:"interview_evaluation,omitempty"`
}

// DisplayStatus prefers the human label over the raw stage slug
func (d *ApplicationDetail) DisplayStatus() string {
	if d.StatusLabel != "" {
		return d.StatusLabel
	}
	return d.Status
}
