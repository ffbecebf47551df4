package server

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reqdoc/internal/pipeline"
	"reqdoc/internal/templates"
	"reqdoc/internal/types"
	"reqdoc/internal/versioning"
)

// fakeLLM stands in for the model capability; everything else is real.
type fakeLLM struct {
	response string
}

func (f *fakeLLM) GenerateJSON(_ context.Context, _, _ string) (string, error) {
	return f.response, nil
}

func (f *fakeLLM) Model() string { return "fake" }
func (f *fakeLLM) Close() error  { return nil }

func newIntegrationServer(t *testing.T) (*Server, string) {
	t.Helper()

	outputDir := t.TempDir()
	store := versioning.NewStore(outputDir)
	runner := &pipeline.Runner{
		Client: &fakeLLM{response: `{
			"title": "Login and Payments",
			"assumptions": ["Web only"],
			"outOfScope": ["Refunds"],
			"sections": [{"heading": "Authentication", "bullets": ["Need login"]}]
		}`},
		Templates: templates.NewStore(t.TempDir()),
		Store:     store,
		OutputDir: outputDir,
		Mode:      pipeline.ModeVersioned,
	}
	return New(Config{Port: 0, OutputDir: outputDir}, runner, store), outputDir
}

func TestGenerateEndToEnd(t *testing.T) {
	s, outputDir := newIntegrationServer(t)

	w := doJSON(t, s, http.MethodPost, "/generate", map[string]string{
		"requirementsText": "Need login\nNeed payment",
		"projectId":        "p1",
		"language":         "en",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Version)

	// Both artifacts were written.
	for _, name := range []string{"Requirements_v1.docx", "Requirements_v1.pdf"} {
		info, err := os.Stat(filepath.Join(outputDir, "p1", name))
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}

	// metadata.json holds exactly one version entry.
	data, err := os.ReadFile(filepath.Join(outputDir, "p1", "metadata.json"))
	require.NoError(t, err)

	var meta types.ProjectMetadata
	require.NoError(t, json.Unmarshal(data, &meta))
	require.Len(t, meta.Versions, 1)
	assert.Equal(t, 1, meta.Versions[0].Version)

	// The versions endpoint serves the same history.
	w = doJSON(t, s, http.MethodGet, "/versions/p1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var versions types.VersionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &versions))
	require.Len(t, versions.Versions, 1)
	assert.Equal(t, "Requirements_v1.docx", versions.Versions[0].FileName)

	// The artifact downloads through the static route.
	w = doJSON(t, s, http.MethodGet, resp.DownloadURL, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotZero(t, w.Body.Len())
}

func TestUpdateIncrementsVersion(t *testing.T) {
	s, _ := newIntegrationServer(t)

	body := map[string]string{"requirementsText": "Need login", "projectId": "p1"}

	w := doJSON(t, s, http.MethodPost, "/generate", body)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodPost, "/update", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Version)
}

// A missing template fails the request and leaves no version behind.
func TestMissingTemplateLeavesNoVersion(t *testing.T) {
	s, outputDir := newIntegrationServer(t)

	w := doJSON(t, s, http.MethodPost, "/generate", map[string]string{
		"requirementsText": "Need login",
		"projectId":        "p1",
		"templateName":     "ghost",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	_, err := os.Stat(filepath.Join(outputDir, "p1", "metadata.json"))
	assert.True(t, os.IsNotExist(err))
}
