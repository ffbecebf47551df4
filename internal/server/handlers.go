package server

import (
	"encoding/json"
	"log"
	"net/http"
	"path"
	"path/filepath"
	"time"

	"reqdoc/internal/pipeline"
	"reqdoc/internal/types"
)

// handleGenerate runs the workflow for an initial submission.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	s.generate(w, r, "Initial submission")
}

// handleUpdate runs the workflow for a revision. Identical to generate
// except for the default summary text.
func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	s.generate(w, r, "Update "+time.Now().UTC().Format(time.RFC3339))
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request, defaultSummary string) {
	var req types.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	req.ApplyDefaults()

	summary := req.Summary
	if summary == "" {
		summary = defaultSummary
	}

	result, err := s.runner.Run(r.Context(), pipeline.Options{
		RequirementsText: req.RequirementsText,
		ProjectID:        req.ProjectID,
		Summary:          summary,
		TemplateName:     req.TemplateName,
		Language:         req.Language,
	})
	if err != nil {
		log.Printf("Workflow failed for project %s: %v", req.ProjectID, err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, types.GenerateResponse{
		Success:        true,
		FilePath:       result.DocxPath,
		PDFPath:        result.PDFPath,
		Version:        result.Version,
		DownloadURL:    s.downloadURL(req.ProjectID, result.DocxPath),
		PDFDownloadURL: s.downloadURL(req.ProjectID, result.PDFPath),
	})
}

// handleVersions returns the persisted version history for a project.
func (s *Server) handleVersions(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("projectId")
	if projectID == "" {
		s.errorResponse(w, http.StatusBadRequest, "projectId is required")
		return
	}

	meta, err := s.store.Load(projectID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, types.VersionsResponse{
		Success:   true,
		ProjectID: projectID,
		Versions:  meta.Versions,
	})
}

// downloadURL maps a written file path to its public download URL.
func (s *Server) downloadURL(projectID, filePath string) string {
	return s.baseURL + path.Join(downloadPrefix, projectID, filepath.Base(filePath))
}

// errorResponse writes the shared error envelope
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, types.ErrorResponse{Success: false, Error: message})
}
