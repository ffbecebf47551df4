package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reqdoc/internal/structuring"
	"reqdoc/internal/templates"
	"reqdoc/internal/versioning"
)

const fixedResponse = `{
	"title": "Login and Payments",
	"assumptions": ["Web only"],
	"outOfScope": ["Refunds"],
	"sections": [{"heading": "Authentication", "bullets": ["Need login"]}]
}`

// fakeClient records the prompts it receives and returns a canned response.
// Safe for concurrent use so tests can drive the runner from many goroutines.
type fakeClient struct {
	response string
	err      error

	mu         sync.Mutex
	lastSystem string
	lastUser   string
	calls      int
}

func (f *fakeClient) GenerateJSON(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.lastSystem = systemPrompt
	f.lastUser = userPrompt
	f.mu.Unlock()
	return f.response, f.err
}

func (f *fakeClient) Model() string { return "fake" }
func (f *fakeClient) Close() error  { return nil }

func newTestRunner(t *testing.T, client *fakeClient) (*Runner, string, string) {
	t.Helper()

	outputDir := t.TempDir()
	templateDir := t.TempDir()
	runner := &Runner{
		Client:    client,
		Templates: templates.NewStore(templateDir),
		Store:     versioning.NewStore(outputDir),
		OutputDir: outputDir,
		Mode:      ModeVersioned,
	}
	return runner, outputDir, templateDir
}

func TestRunVersioned(t *testing.T) {
	client := &fakeClient{response: fixedResponse}
	runner, outputDir, _ := newTestRunner(t, client)

	result, err := runner.Run(t.Context(), Options{
		RequirementsText: "Need login\nNeed payment",
		ProjectID:        "p1",
		Language:         "en",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Version)
	assert.Equal(t, []string{"Need login", "Need payment"}, result.Points)
	assert.Equal(t, filepath.Join(outputDir, "p1", "Requirements_v1.docx"), result.DocxPath)
	assert.Equal(t, filepath.Join(outputDir, "p1", "Requirements_v1.pdf"), result.PDFPath)

	for _, path := range []string{result.DocxPath, result.PDFPath} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}

	meta, err := runner.Store.Load("p1")
	require.NoError(t, err)
	require.Len(t, meta.Versions, 1)
	assert.Equal(t, 1, meta.Versions[0].Version)
	assert.Equal(t, "Requirements_v1.docx", meta.Versions[0].FileName)
	assert.Equal(t, "Initial submission", meta.Versions[0].Summary)

	// Prompts carried the points and the language instruction.
	assert.Contains(t, client.lastUser, "1. Need login")
	assert.Contains(t, client.lastUser, "2. Need payment")
	assert.Contains(t, client.lastUser, "entirely in en")
	assert.Contains(t, client.lastSystem, "solution architect")
}

func TestRunSuccessiveVersions(t *testing.T) {
	client := &fakeClient{response: fixedResponse}
	runner, _, _ := newTestRunner(t, client)

	for want := 1; want <= 3; want++ {
		result, err := runner.Run(t.Context(), Options{
			RequirementsText: "Need login",
			ProjectID:        "p1",
			Summary:          "rev",
		})
		require.NoError(t, err)
		assert.Equal(t, want, result.Version)
	}
}

// Concurrent submissions for the same project must still produce gapless,
// strictly increasing versions; the per-project guard serializes the
// read-render-append sequence.
func TestRunConcurrentVersionsAreGapless(t *testing.T) {
	const n = 8

	client := &fakeClient{response: fixedResponse}
	runner, _, _ := newTestRunner(t, client)

	var (
		mu       sync.Mutex
		versions []int
	)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := runner.Run(context.Background(), Options{
				RequirementsText: "Need login",
				ProjectID:        "p1",
				Summary:          "rev",
			})
			if err != nil {
				t.Error(err)
				return
			}
			mu.Lock()
			versions = append(versions, result.Version)
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, versions, n)
	sort.Ints(versions)
	for i, v := range versions {
		assert.Equal(t, i+1, v)
	}

	meta, err := runner.Store.Load("p1")
	require.NoError(t, err)
	require.Len(t, meta.Versions, n)
	for i, v := range meta.Versions {
		assert.Equal(t, i+1, v.Version)
	}
}

func TestRunWithTemplate(t *testing.T) {
	client := &fakeClient{response: fixedResponse}
	runner, _, templateDir := newTestRunner(t, client)
	require.NoError(t, os.WriteFile(filepath.Join(templateDir, "srs.txt"), []byte("1. Overview"), 0o644))

	_, err := runner.Run(t.Context(), Options{
		RequirementsText: "Need login",
		ProjectID:        "p1",
		TemplateName:     "srs",
	})
	require.NoError(t, err)

	assert.Contains(t, client.lastUser, "Follow this template:")
	assert.Contains(t, client.lastUser, "1. Overview")
}

// A missing template aborts the run before the model is called and records
// no version.
func TestRunMissingTemplate(t *testing.T) {
	client := &fakeClient{response: fixedResponse}
	runner, _, _ := newTestRunner(t, client)

	_, err := runner.Run(t.Context(), Options{
		RequirementsText: "Need login",
		ProjectID:        "p1",
		TemplateName:     "ghost",
	})

	var notFound *templates.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Zero(t, client.calls)

	meta, err := runner.Store.Load("p1")
	require.NoError(t, err)
	assert.Empty(t, meta.Versions)
}

func TestRunModelFailureRecordsNoVersion(t *testing.T) {
	client := &fakeClient{err: errors.New("upstream down")}
	runner, _, _ := newTestRunner(t, client)

	_, err := runner.Run(t.Context(), Options{
		RequirementsText: "Need login",
		ProjectID:        "p1",
	})

	var apiErr *structuring.APICallError
	require.True(t, errors.As(err, &apiErr))

	meta, err := runner.Store.Load("p1")
	require.NoError(t, err)
	assert.Empty(t, meta.Versions)
}

func TestRunUnparsableModelOutputIsHardError(t *testing.T) {
	client := &fakeClient{response: "this is not json"}
	runner, _, _ := newTestRunner(t, client)

	_, err := runner.Run(t.Context(), Options{
		RequirementsText: "Need login",
		ProjectID:        "p1",
	})

	var parseErr *structuring.ParseError
	require.True(t, errors.As(err, &parseErr))
}

func TestRunMinimalMode(t *testing.T) {
	client := &fakeClient{response: fixedResponse}
	runner, outputDir, _ := newTestRunner(t, client)
	runner.Mode = ModeMinimal

	result, err := runner.Run(t.Context(), Options{
		RequirementsText: "Need login",
		ProjectID:        "p1",
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(outputDir, "p1", "Requirements.docx"), result.DocxPath)
	assert.Empty(t, result.PDFPath)
	assert.Zero(t, result.Version)

	// Minimal mode keeps no history.
	meta, err := runner.Store.Load("p1")
	require.NoError(t, err)
	assert.Empty(t, meta.Versions)
}

func TestRunEmptyInputStillGenerates(t *testing.T) {
	client := &fakeClient{response: `{"title": "Empty"}`}
	runner, _, _ := newTestRunner(t, client)

	result, err := runner.Run(t.Context(), Options{
		RequirementsText: "   \n  ",
		ProjectID:        "p1",
	})
	require.NoError(t, err)
	assert.Empty(t, result.Points)
	assert.Equal(t, 1, result.Version)
}
