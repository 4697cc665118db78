package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/skillsfirst/briefapi/internal/adapter"
	"github.com/skillsfirst/briefapi/internal/adapter/utils"
	"github.com/skillsfirst/briefapi/internal/api"
	"github.com/skillsfirst/briefapi/internal/brief/heuristic"
	"github.com/skillsfirst/briefapi/internal/config"
	"github.com/skillsfirst/briefapi/internal/domain/briefModel"
	"github.com/skillsfirst/briefapi/internal/domain/jobModel"
	"github.com/skillsfirst/briefapi/internal/receipt"
	"github.com/skillsfirst/briefapi/pkg/logger_i"
)

var logRH *logger_i.Logger

func GetHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// PostBriefHandler handles the uploading of PDF, DOCX or TXT documents for
// brief generation.
// @Summary      Upload a document for brief generation
// @Description  Receives a file via multipart/form-data, saves it to a temporary directory, and queues a brief-generation job.
// @Tags         Brief
// @Accept       multipart/form-data
// @Produce      json
// @Param        document_name  formData  string  true  "The display name of the document"
// @Param        document       formData  file    true  "The PDF, DOCX or TXT file to upload"
// @Success      202  {object}  api.InitJobResponse "Accepted - returns job id"
// @Failure      400  {object}  api.JobResponse "Bad Request - Missing fields or file too large"
// @Failure      500  {object}  api.JobResponse "Internal Server Error - Storage or Write Error"
// @Router       /brief [post]
func PostBriefHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	targetDir, errString := getTargetDirectory()
	if errString != "" {
		logRH.Error("Couldn't get target directory :", "err", errString)
		WriteErrorResponse(w, http.StatusInternalServerError, "", errString)
		return
	}

	err := r.ParseMultipartForm(config.MaxUploadSize)
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "", "File too large or bad request")
		return
	}

	docName := r.FormValue("document_name")
	if docName == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "", "document_name is required")
		return
	}

	fileReader, fileMetadata, err := r.FormFile("document")
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, docName, "Could not retrieve file")
		return
	}
	defer fileReader.Close()

	filename := fmt.Sprintf("%d-%s", time.Now().UnixNano(), fileMetadata.Filename)
	tempFilePath := filepath.Join(targetDir, filename)
	destinationFileWriter, err := os.Create(tempFilePath)
	if err != nil {
		WriteErrorResponse(w, http.StatusInternalServerError, docName, "Storage error")
		return
	}
	defer destinationFileWriter.Close()

	if _, err := io.Copy(destinationFileWriter, fileReader); err != nil {
		WriteErrorResponse(w, http.StatusInternalServerError, docName, "Write error")
		return
	}

	newJob := newJobData{
		id:             utils.GetNewUUID(),
		traceId:        r.Context().Value(config.TRACE_ID_KEY).(string),
		jobType:        jobModel.JobTypeBrief,
		documentName:   docName,
		documentSource: tempFilePath,
	}
	CreateNewJob(newJob)
	writeJsonResponse(w, http.StatusAccepted, adapter.ToInitJobResponse(newJob.id))
}

// GetStatusHandler godoc
// @Summary      Get job status
// @Description  Retrieves the current status of a specific job using its ID. Completed brief jobs carry the brief record and its Markdown rendering.
// @Tags         Job Status
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  api.JobResponse   "The current status of the job"
// @Failure      404  {object}  api.JobResponse   "Job not found"
// @Router       /status/{id} [get]
func GetStatusHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	idString := utils.GetChiURLParam(r, "id")
	result, isFound := validateId(idString, r.Context().Value(config.TRACE_ID_KEY).(string))

	logRH.Debug("Get Status Request:", "URL path", r.URL.Path)
	if !isFound {
		WriteErrorResponse(w, http.StatusNotFound, idString, "Job not found")
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToAPIResponse(result))
}

// PostReceiptHandler godoc
// @Summary      Log a skills receipt
// @Description  Builds a receipt row from the claimed skills, queues a best-effort append to the external log, and returns the CSV and Markdown renderings immediately.
// @Tags         Receipt
// @Accept       json
// @Produce      json
// @Param        request  body      api.ReceiptRequest  true  "Receipt fields"
// @Success      202      {object}  api.ReceiptResponse "Receipt accepted"
// @Failure      400      {object}  api.JobResponse     "Invalid request data"
// @Router       /receipt [post]
func PostReceiptHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	var requestData api.ReceiptRequest
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			logRH.Error("Couldn't close the receipt handler reader :", err)
		}
	}(r.Body)
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil || !validateReceiptRequest(requestData) {
		logRH.Warn("Bad Receipt Request: ", "error:", err, "request data:", requestData)
		WriteErrorResponse(w, http.StatusBadRequest, requestData.DocumentName, "Bad Request")
		return
	}

	row := buildReceiptRow(requestData)
	jobId := queueReceiptJob(r, row)
	writeJsonResponse(w, http.StatusAccepted,
		adapter.ToReceiptResponse(jobId, receipt.RenderCSV(row), receipt.RenderMarkdown(row)))
}

// PostReceiptBundleHandler godoc
// @Summary      Download a receipt bundle
// @Description  Builds a receipt from multipart fields plus an optional proof attachment and streams back a zip with the CSV, the Markdown, and the proof entry. Also queues the best-effort external append.
// @Tags         Receipt
// @Accept       multipart/form-data
// @Produce      application/zip
// @Param        document_name  formData  string  true   "The document the skills were exercised against"
// @Param        user_name      formData  string  true   "Name of the person claiming the skills"
// @Param        user_role      formData  string  false  "Role (parent, teacher, org)"
// @Param        user_email     formData  string  false  "Contact email"
// @Param        skills         formData  string  false  "Semicolon-separated skill labels"
// @Param        custom_skills  formData  string  false  "Semicolon-separated user-added labels"
// @Param        proof_note     formData  string  false  "Proof note or link"
// @Param        proof          formData  file    false  "Optional proof attachment"
// @Success      200  {file}    file               "The zip bundle"
// @Failure      400  {object}  api.JobResponse    "Invalid request data"
// @Router       /receipt/bundle [post]
func PostReceiptBundleHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	if err := r.ParseMultipartForm(config.MaxUploadSize); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "", "File too large or bad request")
		return
	}

	requestData := api.ReceiptRequest{
		DocumentName: r.FormValue("document_name"),
		UserName:     r.FormValue("user_name"),
		UserRole:     r.FormValue("user_role"),
		UserEmail:    r.FormValue("user_email"),
		Skills:       splitLabels(r.FormValue("skills")),
		CustomSkills: splitLabels(r.FormValue("custom_skills")),
		ProofNote:    r.FormValue("proof_note"),
	}
	if !validateReceiptRequest(requestData) {
		WriteErrorResponse(w, http.StatusBadRequest, requestData.DocumentName, "document_name and user_name are required")
		return
	}

	proofName, proof := readProofAttachment(r)
	row := buildReceiptRow(requestData)

	bundle, err := receipt.Bundle(row, proofName, proof)
	if err != nil {
		logRH.Error("Couldn't build receipt bundle", "err", err)
		WriteErrorResponse(w, http.StatusInternalServerError, requestData.DocumentName, "Bundle error")
		return
	}

	queueReceiptJob(r, row)

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="skills_receipt.zip"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(bundle); err != nil {
		logRH.Error("Error writing bundle response: %v", err)
	}
}

func validateReceiptRequest(req api.ReceiptRequest) bool {
	return req.DocumentName != "" && req.UserName != ""
}

func buildReceiptRow(req api.ReceiptRequest) briefModel.ReceiptRow {
	skills := receipt.MergeSkills(req.Skills, req.CustomSkills)
	if len(skills) == 0 {
		skills = heuristic.DefaultSkills
	}
	return receipt.BuildRow(req.DocumentName, req.UserName, req.UserRole, req.UserEmail, skills, req.ProofNote)
}

func queueReceiptJob(r *http.Request, row briefModel.ReceiptRow) string {
	newJob := newJobData{
		id:           utils.GetNewUUID(),
		traceId:      r.Context().Value(config.TRACE_ID_KEY).(string),
		jobType:      jobModel.JobTypeReceipt,
		documentName: row.DocumentName,
		receipt:      &row,
	}
	CreateNewJob(newJob)
	return newJob.id
}

func splitLabels(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func readProofAttachment(r *http.Request) (string, []byte) {
	fileReader, fileMetadata, err := r.FormFile("proof")
	if err != nil {
		return "", nil //proof is optional
	}
	defer fileReader.Close()

	proof, err := io.ReadAll(fileReader)
	if err != nil {
		logRH.Error("Error reading proof attachment", "err", err)
		return "", nil
	}
	return fileMetadata.Filename, proof
}
