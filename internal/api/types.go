package api

import "encoding/json"

// Wire shapes of the recruiting API. Conversion to domain models lives in
// internal/converters.

// KanbanResponse is the pipeline snapshot for one vacancy
type KanbanResponse struct {
	Columns []KanbanColumn `json:"columns"`
}

type KanbanColumn struct {
	Slug         string              `json:"slug"`
	Label        string              `json:"label"`
	Applications []KanbanApplication `json:"applications"`
}

type KanbanApplication struct {
	ID        int          `json:"id"`
	Status    string       `json:"status,omitempty"`
	Applicant ApplicantDTO `json:"applicant"`
}

type ApplicantDTO struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
}

type CVFileDTO struct {
	OriginalFilename string `json:"original_filename"`
	Size             int64  `json:"size"`
	MimeType         string `json:"mime_type"`
	StorageURL       string `json:"storage_url"`
}

// EvaluationDTO keeps evaluated_at as text; the API omits the zone on some records
type EvaluationDTO struct {
	FinalScore     float64            `json:"final_score"`
	CategoryScores map[string]float64 `json:"category_scores"`
	Justification  string             `json:"justification"`
	EvaluatedAt    string             `json:"evaluated_at"`
	LLMModelUsed   string             `json:"llm_model_used"`
}

// VacancyDTO is one entry of the vacancy listing
type VacancyDTO struct {
	ID             FlexibleID `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Location       string     `json:"location"`
	SalaryFrom     *float64   `json:"salary_from"`
	SalaryTo       *float64   `json:"salary_to"`
	Currency       string     `json:"currency"`
	EmploymentType string     `json:"employment_type"`
}

// ApplicationResponse is the full application record
type ApplicationResponse struct {
	ID                  int            `json:"id"`
	VacancyID           FlexibleID     `json:"vacancy_id"`
	Status              string         `json:"status"`
	StatusLabel         string         `json:"status_label"`
	CreatedAt           string         `json:"created_at"`
	Applicant           ApplicantDTO   `json:"applicant"`
	CVFile              *CVFileDTO     `json:"cv_file"`
	ResumeEvaluation    *EvaluationDTO `json:"resume_evaluation"`
	InterviewEvaluation *EvaluationDTO `json:"interview_evaluation"`
}

// FlexibleID accepts an identifier encoded either as a JSON number or a string
type FlexibleID string

func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexibleID(n.String())
	return nil
}

func decodeJSON(body []byte, out any) error {
	return json.Unmarshal(body, out)
}
