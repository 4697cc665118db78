package adapter

import (
	"fmt"
	"time"

	"github.com/skillsfirst/briefapi/internal/api"
	"github.com/skillsfirst/briefapi/internal/domain/jobModel"
)

func ToInitJobResponse(id string) api.InitJobResponse {
	return api.InitJobResponse{
		Id:        id,
		StatusURL: fmt.Sprintf("status/%s", id),
	}
}

func ToAPIResponse(job jobModel.Job) api.JobResponse {

	var errorPtr *api.JobOutgoingError
	if job.Error.Message != "" || job.Error.Code != 0 {
		errorPtr = &api.JobOutgoingError{
			Code:    job.Error.Code,
			Message: job.Error.Message,
			Retry:   job.Error.Retry,
		}
	}

	result := api.Result{
		Status: string(job.Status),
		Brief:  ToBriefResponse(job.JobPayload),
	}

	return api.JobResponse{
		Id:        job.Id,
		StartTime: job.CreatedTime,
		EndTime:   job.EndTime,
		Error:     errorPtr,
		Result:    result,
	}
}

func ToBriefResponse(payload jobModel.JobPayload) *api.BriefResponse {
	if payload.Brief == nil {
		return nil
	}

	return &api.BriefResponse{
		DocumentName:     payload.DocumentName,
		ExecutiveSummary: payload.Brief.ExecutiveSummary,
		KeyPoints:        payload.Brief.KeyPoints,
		Deadlines:        payload.Brief.Deadlines,
		Requirements:     payload.Brief.Requirements,
		NextSteps:        payload.Brief.NextSteps,
		Skills:           payload.Skills,
		Markdown:         payload.Markdown,
		Warning:          payload.Warning,
	}
}

func ToReceiptResponse(jobId string, csv string, markdown string) api.ReceiptResponse {
	return api.ReceiptResponse{
		JobId:     jobId,
		StatusURL: fmt.Sprintf("status/%s", jobId),
		CSV:       csv,
		Markdown:  markdown,
	}
}

func BadRequest(id string, error string, code int) api.JobResponse {
	return api.JobResponse{
		Id:        id,
		StartTime: time.Time{},
		EndTime:   time.Time{},
		Result: api.Result{
			Status: string(api.JobStatusError),
		},
		Error: &api.JobOutgoingError{
			Code:    code,
			Message: error,
			Retry:   false,
		},
	}
}
