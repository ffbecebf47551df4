// Package pipeline provides the high-level orchestration that turns raw
// requirement notes into versioned DOCX and PDF documents.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"reqdoc/internal/llm"
	"reqdoc/internal/preprocess"
	"reqdoc/internal/prompts"
	"reqdoc/internal/render"
	"reqdoc/internal/structuring"
	"reqdoc/internal/templates"
	"reqdoc/internal/types"
	"reqdoc/internal/versioning"
)

// Mode selects between the full versioned workflow and the legacy minimal
// one-shot workflow.
type Mode string

const (
	// ModeVersioned renders DOCX and PDF under a new version number and
	// records the generation in the project's metadata.
	ModeVersioned Mode = "versioned"
	// ModeMinimal renders a single fixed-name DOCX with no version
	// bookkeeping.
	ModeMinimal Mode = "minimal"
)

// minimalFileName is the fixed artifact name used by ModeMinimal.
const minimalFileName = "Requirements.docx"

// Options holds the per-request inputs for one workflow run.
type Options struct {
	RequirementsText string
	ProjectID        string
	Summary          string
	TemplateName     string
	Language         string
}

// Result holds the artifacts of a completed workflow run.
type Result struct {
	DocxPath string
	PDFPath  string
	Version  int
	Points   []string
	Document *types.StructuredRequirements
}

// Runner wires the workflow's collaborators together. One Runner serves all
// requests; it owns no per-request state.
type Runner struct {
	Client    llm.Client
	Templates *templates.Store
	Store     *versioning.Store
	OutputDir string
	FontPath  string
	Mode      Mode
}

// Run executes the workflow: preprocess the text, load the optional
// template, build prompts, structure via the model, render the documents and
// record the version. Any step failing aborts the run; files already written
// are not cleaned up.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	points := preprocess.Preprocess(opts.RequirementsText)

	template := ""
	if opts.TemplateName != "" {
		loaded, err := r.Templates.Load(opts.TemplateName)
		if err != nil {
			return nil, err
		}
		template = loaded
	}

	language := opts.Language
	if language == "" {
		language = types.DefaultLanguage
	}

	systemPrompt := prompts.System()
	userPrompt := prompts.User(points, template, language)

	doc, err := structuring.Structure(ctx, r.Client, systemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	if r.Mode == ModeMinimal {
		return r.renderMinimal(doc, points, opts)
	}
	return r.renderVersioned(doc, points, opts)
}

// renderVersioned assigns the next version number, renders both formats
// concurrently and appends the version entry. The project guard is held
// across the whole read-render-append sequence so concurrent requests for
// the same project cannot assign duplicate version numbers.
func (r *Runner) renderVersioned(doc *types.StructuredRequirements, points []string, opts Options) (*Result, error) {
	guard := r.Store.Guard(opts.ProjectID)
	guard.Lock()
	defer guard.Unlock()

	version, err := r.Store.NextVersion(opts.ProjectID)
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(r.OutputDir, opts.ProjectID)

	var docxPath, pdfPath string
	var g errgroup.Group
	g.Go(func() error {
		path, err := render.WriteDOCX(doc, dir, version)
		if err != nil {
			return err
		}
		docxPath = path
		return nil
	})
	g.Go(func() error {
		path, err := render.WritePDF(doc, dir, version, r.FontPath)
		if err != nil {
			return err
		}
		pdfPath = path
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := opts.Summary
	if summary == "" {
		summary = "Initial submission"
	}

	// The DOCX file is the canonical recorded artifact.
	info, err := r.Store.AddVersion(opts.ProjectID, filepath.Base(docxPath), summary)
	if err != nil {
		return nil, err
	}
	if info.Version != version {
		return nil, fmt.Errorf("version changed during generation: assigned %d, recorded %d", version, info.Version)
	}

	return &Result{
		DocxPath: docxPath,
		PDFPath:  pdfPath,
		Version:  info.Version,
		Points:   points,
		Document: doc,
	}, nil
}

func (r *Runner) renderMinimal(doc *types.StructuredRequirements, points []string, opts Options) (*Result, error) {
	dir := filepath.Join(r.OutputDir, opts.ProjectID)
	path, err := render.WriteDOCXNamed(doc, dir, minimalFileName)
	if err != nil {
		return nil, err
	}
	return &Result{
		DocxPath: path,
		Points:   points,
		Document: doc,
	}, nil
}
