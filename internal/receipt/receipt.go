package receipt

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/skillsfirst/briefapi/internal/domain/briefModel"
)

// BuildRow creates a skills-receipt record for a processed document.
// Rows are immutable once created.
func BuildRow(docName, userName, userRole, userEmail string, skills []string, proofNote string) briefModel.ReceiptRow {
	return briefModel.ReceiptRow{
		Timestamp:    time.Now(),
		DocumentName: docName,
		UserName:     userName,
		UserRole:     userRole,
		UserEmail:    userEmail,
		Skills:       strings.Join(skills, "; "),
		ProofNote:    proofNote,
	}
}

// MergeSkills unions the inferred labels with user-added custom labels,
// keeping stable first-seen order.
func MergeSkills(inferred []string, custom []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, label := range append(append([]string(nil), inferred...), custom...) {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		key := strings.ToLower(label)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, label)
	}
	return out
}

// RenderCSV renders the row as comma-separated data with a header row
// matching the ReceiptRow field names.
func RenderCSV(row briefModel.ReceiptRow) string {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(briefModel.FieldNames)
	_ = w.Write(Values(row))
	w.Flush()
	return buf.String()
}

// Values flattens the row in FieldNames order.
func Values(row briefModel.ReceiptRow) []string {
	return []string{
		row.Timestamp.Format(time.RFC3339),
		row.DocumentName,
		row.UserName,
		row.UserRole,
		row.UserEmail,
		row.Skills,
		row.ProofNote,
	}
}

// RenderMarkdown renders the row as a portable receipt document.
func RenderMarkdown(row briefModel.ReceiptRow) string {
	var b strings.Builder
	b.WriteString("# Skills Receipt\n\n")
	fmt.Fprintf(&b, "*Document:* **%s**  \n", row.DocumentName)
	fmt.Fprintf(&b, "*Logged:* %s\n\n", row.Timestamp.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "- **Name:** %s\n", row.UserName)
	fmt.Fprintf(&b, "- **Role:** %s\n", row.UserRole)
	fmt.Fprintf(&b, "- **Email:** %s\n", row.UserEmail)
	fmt.Fprintf(&b, "- **Skills:** %s\n", row.Skills)
	if row.ProofNote != "" {
		fmt.Fprintf(&b, "- **Proof:** %s\n", row.ProofNote)
	}
	return b.String()
}
