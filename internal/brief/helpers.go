package brief

import (
	"context"
	"net/http"
	"time"

	"github.com/skillsfirst/briefapi/internal/brief/extract"
	"github.com/skillsfirst/briefapi/internal/brief/heuristic"
	"github.com/skillsfirst/briefapi/internal/config"
	"github.com/skillsfirst/briefapi/internal/domain/briefModel"
	"github.com/skillsfirst/briefapi/internal/domain/jobModel"
	"github.com/skillsfirst/briefapi/internal/metrics"
	"github.com/skillsfirst/briefapi/pkg/logger_i"
)

func (s *service) jobError(job jobModel.Job, err error, message string, canRetry bool) jobModel.Job {
	s.logger.Error(message, "error", err)

	job.Error = jobModel.JobError{
		Code:    http.StatusInternalServerError,
		Message: "Internal Server Error",
		Retry:   canRetry,
	}
	job.Status = jobModel.JobStatusError
	return job
}

func logStep(job *jobModel.Job, status jobModel.InternalStatus, log *logger_i.Logger) {
	job.CurrentStep = status
	log.Debug("GenerateBrief", "Current Status", job.CurrentStep)
}

func (s *service) executeExtractionStep(ctx context.Context, log *logger_i.Logger, job *jobModel.Job) (string, error) {
	logStep(job, jobModel.TextExtraction, log)

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("text_extraction", time.Since(start)) }()

	return extract.Text(job.JobPayload.DocumentURL)
}

func (s *service) executeSummarizeStep(ctx context.Context, log *logger_i.Logger, job *jobModel.Job, text string) string {
	logStep(job, jobModel.Summarization, log)

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("summarization", time.Since(start)) }()

	return s.summarizer.Summarize(text, config.MaxSummarySentences)
}

func (s *service) executeExtractorsStep(ctx context.Context, log *logger_i.Logger, job *jobModel.Job, text string) (keyPoints, hitLines, dates, requirements []string) {
	logStep(job, jobModel.Extraction, log)

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("heuristic_extraction", time.Since(start)) }()

	keyPoints = heuristic.KeyPoints(text, config.KeyPointsTop)
	hitLines, dates = heuristic.Deadlines(text)
	requirements = heuristic.Requirements(text)
	return keyPoints, hitLines, dates, requirements
}

func (s *service) executeSinkStep(ctx context.Context, log *logger_i.Logger, row briefModel.ReceiptRow) error {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("receipt_sink", time.Since(start)) }()

	return s.sink.Append(ctx, row)
}
