package briefModel

import "time"

// Brief is the one-page action brief produced for a single document.
// It is created once per generation and never mutated afterwards.
type Brief struct {
	ExecutiveSummary string   `json:"executive_summary"`
	KeyPoints        []string `json:"key_points"`
	Deadlines        []string `json:"deadlines"`
	Requirements     []string `json:"requirements"`
	NextSteps        []string `json:"next_steps"`
}

// SectionOrder is the fixed rendering order of the five brief sections.
var SectionOrder = []string{
	"Executive Summary",
	"Key Points",
	"Deadlines",
	"Requirements",
	"Next Steps",
}

// ReceiptRow is a flat skills-receipt record. Appended to the external
// sink and/or bundled for download; never mutated after creation.
type ReceiptRow struct {
	Timestamp    time.Time `json:"timestamp"`
	DocumentName string    `json:"document_name"`
	UserName     string    `json:"user_name"`
	UserRole     string    `json:"user_role"`
	UserEmail    string    `json:"user_email"`
	Skills       string    `json:"skills"`
	ProofNote    string    `json:"proof_note"`
}

// FieldNames is the CSV header, matching the ReceiptRow fields in order.
var FieldNames = []string{
	"Timestamp",
	"DocumentName",
	"UserName",
	"UserRole",
	"UserEmail",
	"Skills",
	"ProofNote",
}
