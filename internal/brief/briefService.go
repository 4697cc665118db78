package brief

import (
	"context"
	"errors"
	"os"

	"github.com/skillsfirst/briefapi/internal/brief/heuristic"
	"github.com/skillsfirst/briefapi/internal/brief/summarize"
	"github.com/skillsfirst/briefapi/internal/brief/textutil"
	"github.com/skillsfirst/briefapi/internal/config"
	"github.com/skillsfirst/briefapi/internal/domain/jobModel"
	"github.com/skillsfirst/briefapi/internal/receipt"
	"github.com/skillsfirst/briefapi/pkg/logger_i"
)

// Service is the only surface the worker calls - it doesn't need to know
// the summarizer strategy or where receipts end up.
type Service interface {
	GenerateBrief(ctx context.Context, job jobModel.Job) jobModel.Job
	LogReceipt(ctx context.Context, job jobModel.Job) jobModel.Job
}

type service struct {
	summarizer summarize.Summarizer
	ledger     jobModel.ReceiptStore
	sink       receipt.Sink //optional external spreadsheet sink
	logger     *logger_i.Logger
}

// NewService constructor. sink may be nil when no external log is
// configured; the local ledger always records the row.
func NewService(s summarize.Summarizer, ledger jobModel.ReceiptStore, sink receipt.Sink) Service {
	return &service{
		summarizer: s,
		ledger:     ledger,
		sink:       sink,
		logger:     logger_i.NewLogger("Brief Service"),
	}
}

func (s *service) GenerateBrief(ctx context.Context, job jobModel.Job) jobModel.Job {
	inMethodLogger := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY).(string), "JobId", job.Id)

	raw, err := s.executeExtractionStep(ctx, inMethodLogger, &job)
	if err != nil {
		return s.jobError(job, err, "TEXT_EXTRACTION_FAILURE", false)
	}

	text := textutil.Normalize(raw)
	if len(text) < config.ShortDocumentMinimum {
		// informational, never blocking - likely a scanned PDF
		job.JobPayload.Warning = "Document text is very short or has no selectable text; results may be thin."
		inMethodLogger.Warn("Short document", "chars", len(text))
	}

	summary := s.executeSummarizeStep(ctx, inMethodLogger, &job, text)
	keyPoints, hitLines, dates, requirements := s.executeExtractorsStep(ctx, inMethodLogger, &job, text)

	job.CurrentStep = jobModel.Assembly
	record := Assemble(summary, keyPoints, hitLines, dates, requirements)
	job.JobPayload.Brief = &record
	job.JobPayload.Skills = heuristic.Skills(text, requirements)
	job.JobPayload.Markdown = RenderMarkdown(record, job.JobPayload.DocumentName)

	if err := os.Remove(job.JobPayload.DocumentURL); err != nil {
		inMethodLogger.Error("Error removing uploaded file", "error", err)
	}
	job.CurrentStep = jobModel.Complete
	job.Status = jobModel.JobStatusComplete
	return job
}

func (s *service) LogReceipt(ctx context.Context, job jobModel.Job) jobModel.Job {
	inMethodLogger := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY).(string), "JobId", job.Id)

	row := job.JobPayload.Receipt
	if row == nil {
		return s.jobError(job, errors.New("receipt job without a receipt row"), "RECEIPT_PAYLOAD_MISSING", false)
	}

	job.CurrentStep = jobModel.ReceiptAppend
	if err := s.ledger.AppendReceipt(ctx, *row); err != nil {
		inMethodLogger.Error("Failed to record receipt in local ledger", "err", err)
		job.JobPayload.Warning = "Receipt could not be recorded locally."
	}

	if s.sink != nil {
		if err := s.executeSinkStep(ctx, inMethodLogger, *row); err != nil {
			// best-effort: the user already has the local artifacts
			inMethodLogger.Warn("External receipt sink append failed", "err", err)
			job.JobPayload.Warning = "External receipt log unavailable; the row was kept locally only."
		}
	}

	job.CurrentStep = jobModel.Complete
	job.Status = jobModel.JobStatusComplete
	return job
}
