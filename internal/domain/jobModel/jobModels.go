package jobModel

import (
	"context"
	"time"

	"github.com/skillsfirst/briefapi/internal/domain/briefModel"
)

type JobStatus string
type InternalStatus string

type JobType string

const (
	JobStatusQueued   JobStatus = "QUEUED"
	JobStatusRunning  JobStatus = "RUNNING"
	JobStatusComplete JobStatus = "COMPLETE"
	JobStatusError    JobStatus = "Error"

	BriefInit      InternalStatus = "BriefInit"
	TextExtraction InternalStatus = "TextExtraction"
	Summarization  InternalStatus = "Summarization"
	Extraction     InternalStatus = "HeuristicExtraction"
	Assembly       InternalStatus = "BriefAssembly"

	ReceiptInit   InternalStatus = "ReceiptInit"
	ReceiptAppend InternalStatus = "ReceiptAppend"
	Error         InternalStatus = "Error"

	Complete InternalStatus = "Complete"

	JobTypeBrief   JobType = "Brief"
	JobTypeReceipt JobType = "Receipt"
)

type Job struct {
	Id          string         `json:"id"`
	TraceId     string         `json:"trace_id"`
	JobType     JobType        `json:"job_type"`
	JobPayload  JobPayload     `json:"job_payload"`
	Error       JobError       `json:"error,omitempty"`
	CreatedTime time.Time      `json:"created_time"`
	EndTime     time.Time      `json:"end_time,omitempty"`
	Status      JobStatus      `json:"status"`
	CurrentStep InternalStatus `json:"current_step"`
}

type JobError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Retry   bool   `json:"retry"`
}

type JobPayload struct {
	DocumentName string `json:"document_name,omitempty"`
	DocumentURL  string `json:"document_url,omitempty"`

	Brief    *briefModel.Brief `json:"brief,omitempty"`
	Skills   []string          `json:"skills,omitempty"`
	Markdown string            `json:"markdown,omitempty"`

	Receipt *briefModel.ReceiptRow `json:"receipt,omitempty"`

	// Warning carries non-fatal advisories (short document, sink failure).
	Warning string `json:"warning,omitempty"`
}

type JobStore interface {
	GetJob(ctx context.Context, jobId string) (Job, bool)
	SaveJob(ctx context.Context, job Job) error
	DeleteJob(ctx context.Context, jobID string)
}

type ReceiptStore interface {
	AppendReceipt(ctx context.Context, row briefModel.ReceiptRow) error
	GetReceipts(ctx context.Context, documentName string) ([]string, error)
}
