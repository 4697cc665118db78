package api

import "time"

type JobExternalStatus string

const (
	JobStatusError JobExternalStatus = "Error"
)

type JobResponse struct {
	Id        string            `json:"id" example:"job_cz109"`
	Result    Result            `json:"result"`
	Error     *JobOutgoingError `json:"error,omitempty"`
	StartTime time.Time         `json:"start_time"`
	EndTime   time.Time         `json:"end_time,omitempty"`
}

type JobOutgoingError struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"Job not found"`
	Retry   bool   `json:"can_retry" example:"false"`
}

type BriefResponse struct {
	DocumentName     string   `json:"document_name"`
	ExecutiveSummary string   `json:"executive_summary"`
	KeyPoints        []string `json:"key_points"`
	Deadlines        []string `json:"deadlines"`
	Requirements     []string `json:"requirements"`
	NextSteps        []string `json:"next_steps"`
	Skills           []string `json:"suggested_skills"`
	Markdown         string   `json:"markdown"`
	Warning          string   `json:"warning,omitempty"`
}

type Result struct {
	Status string         `json:"status"`
	Brief  *BriefResponse `json:"brief,omitempty"`
}

type InitJobResponse struct {
	Id        string `json:"id"`
	StatusURL string `json:"status_url"`
}

// requests---------------------

type ReceiptRequest struct {
	DocumentName string   `json:"document_name" validate:"required"`
	UserName     string   `json:"user_name" validate:"required"`
	UserRole     string   `json:"user_role"`
	UserEmail    string   `json:"user_email"`
	Skills       []string `json:"skills"`
	CustomSkills []string `json:"custom_skills"`
	ProofNote    string   `json:"proof_note"`
}

type ReceiptResponse struct {
	JobId     string `json:"job_id"`
	StatusURL string `json:"status_url"`
	CSV       string `json:"csv"`
	Markdown  string `json:"markdown"`
}

type JobStatusRequest struct {
	JobId string `json:"job_id" validate:"required"`
}
