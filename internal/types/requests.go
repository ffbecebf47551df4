package types

import (
	"github.com/go-playground/validator/v10"
)

// DefaultProjectID is used when a request does not name a project.
const DefaultProjectID = "demo_project"

// DefaultLanguage is the target language applied when a request omits one.
const DefaultLanguage = "en"

// GenerateRequest represents the request body for POST /generate and POST /update.
type GenerateRequest struct {
	RequirementsText string `json:"requirementsText" validate:"required,min=1"`
	Summary          string `json:"summary,omitempty"`
	TemplateName     string `json:"templateName,omitempty"`
	Language         string `json:"language,omitempty"`
	ProjectID        string `json:"projectId,omitempty"`
}

// Validate validates the GenerateRequest using the validator.
func (r *GenerateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ApplyDefaults fills optional fields that have service-level defaults.
func (r *GenerateRequest) ApplyDefaults() {
	if r.Language == "" {
		r.Language = DefaultLanguage
	}
	if r.ProjectID == "" {
		r.ProjectID = DefaultProjectID
	}
}

// GenerateResponse is the success envelope for POST /generate and POST /update.
type GenerateResponse struct {
	Success        bool   `json:"success"`
	FilePath       string `json:"filePath"`
	PDFPath        string `json:"pdfPath"`
	Version        int    `json:"version"`
	DownloadURL    string `json:"downloadUrl"`
	PDFDownloadURL string `json:"pdfDownloadUrl"`
}

// VersionsResponse is the success envelope for GET /versions/{projectId}.
type VersionsResponse struct {
	Success   bool          `json:"success"`
	ProjectID string        `json:"projectId"`
	Versions  []VersionInfo `json:"versions"`
}

// ErrorResponse is the error envelope shared by all endpoints.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
