// Package render turns a StructuredRequirements document into downloadable
// DOCX and PDF artifacts. Both renderers emit the same fixed section order:
// title, table of contents (DOCX only), table of figures when figures exist,
// each section with its bullets and subheadings, then Assumptions and Out of
// Scope (always emitted, even when empty).
package render

import "fmt"

// DefaultTitle is applied when the model returns no title.
const DefaultTitle = "Requirements Document"

// Fixed headings shared by both renderers.
const (
	headingFigures     = "Table of Figures"
	headingAssumptions = "Assumptions"
	headingOutOfScope  = "Out of Scope"
)

// FileName returns the canonical artifact name for a version and extension.
func FileName(version int, ext string) string {
	return fmt.Sprintf("Requirements_v%d.%s", version, ext)
}

// RenderError represents a filesystem or rendering failure while producing
// an artifact.
type RenderError struct {
	Format  string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s render error: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s render error: %s", e.Format, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// titleOrDefault returns the document title with the default applied.
func titleOrDefault(title string) string {
	if title == "" {
		return DefaultTitle
	}
	return title
}
