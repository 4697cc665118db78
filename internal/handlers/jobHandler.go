package handlers

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/skillsfirst/briefapi/internal/config"
	"github.com/skillsfirst/briefapi/internal/domain/briefModel"
	"github.com/skillsfirst/briefapi/internal/domain/jobModel"
	"github.com/skillsfirst/briefapi/internal/job"
	"github.com/skillsfirst/briefapi/internal/metrics"
	"github.com/skillsfirst/briefapi/pkg/logger_i"
)

var (
	handlerInstance *JobHandler //private singleton
	once            sync.Once
	logJH           *logger_i.Logger
)

type JobHandler struct {
	service *job.Service
}

type newJobData struct {
	id             string
	traceId        string
	jobType        jobModel.JobType
	documentName   string
	documentSource string
	receipt        *briefModel.ReceiptRow
}

func InitJobHandler(jobService *job.Service) {
	once.Do(func() {
		handlerInstance = &JobHandler{service: jobService}

		logJH = logger_i.NewLogger("JobHandler")
		logRH = logger_i.NewLogger("RequestHandler")
		logJH.Info("Starting job handler")
	})
}

func CreateNewJob(newJob newJobData) {
	logJH.With("traceId", newJob.traceId, "job id", newJob.id)
	logJH.Info("To create new job", "type", newJob.jobType)
	handlerInstance.pushToJobChannel(newJob)
}

func GetJobStatus(id string, traceId string) (result jobModel.Job, isFound bool) {
	ctxC := context.WithValue(context.Background(), config.TRACE_ID_KEY, traceId)
	if handlerInstance != nil {
		return handlerInstance.service.JobStore.GetJob(ctxC, id)
	}
	return result, false
}

// private methods
func (h *JobHandler) pushToJobChannel(newJob newJobData) {

	_job := jobModel.Job{}
	_job.Id = newJob.id
	_job.CreatedTime = time.Now()
	_job.TraceId = newJob.traceId
	_job.Status = jobModel.JobStatusQueued
	_job.JobType = newJob.jobType

	if newJob.jobType == jobModel.JobTypeReceipt {
		_job.CurrentStep = jobModel.ReceiptInit
		_job.JobPayload.Receipt = newJob.receipt
		_job.JobPayload.DocumentName = newJob.documentName
	} else {
		_job.CurrentStep = jobModel.BriefInit
		_job.JobPayload.DocumentName = newJob.documentName
		_job.JobPayload.DocumentURL = newJob.documentSource
	}

	//metrics
	metrics.IncrementJobsInQueue()

	h.service.JobChannel <- _job //blocking send keeps the system from being overwhelmed
	logJH.Info("Created new job")

	//a new worker is added every N requests, or immediately for a brief job -
	//brief generation does file extraction and two summarization passes, so it
	//is the heavy job type. Idle workers retire on their own.
	accurateCount := atomic.AddInt64(&h.service.RequestCount, 1)
	if accurateCount%config.RequestsPerNewWorkerCount == 0 || _job.JobType == jobModel.JobTypeBrief {
		metrics.StartDispatcherSignalCount() //metrics
		logJH.Debug("Worker count ", accurateCount)
		h.service.DispatcherChannel <- true
	}
}
