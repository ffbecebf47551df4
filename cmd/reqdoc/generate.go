package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"reqdoc/internal/config"
	"reqdoc/internal/llm"
	"reqdoc/internal/observability"
	"reqdoc/internal/pipeline"
	"reqdoc/internal/templates"
	"reqdoc/internal/types"
	"reqdoc/internal/versioning"
)

var (
	generateIn       string
	generateProject  string
	generateSummary  string
	generateTemplate string
	generateLanguage string
	generateConfig   string
	generateMinimal  bool
	generateVerbose  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a requirements document once",
	Long:  `Run the generation workflow once: read requirement notes from a file or stdin, structure them with the model, and write the document artifacts.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateIn, "in", "", "Requirement notes file (default: stdin)")
	generateCmd.Flags().StringVar(&generateProject, "project", types.DefaultProjectID, "Project identifier")
	generateCmd.Flags().StringVar(&generateSummary, "summary", "", "Version summary")
	generateCmd.Flags().StringVar(&generateTemplate, "template", "", "Template name to bias document structure")
	generateCmd.Flags().StringVar(&generateLanguage, "language", types.DefaultLanguage, "Target document language")
	generateCmd.Flags().StringVar(&generateConfig, "config", "", "Path to JSON config file")
	generateCmd.Flags().BoolVar(&generateMinimal, "minimal", false, "Render a single unversioned DOCX only")
	generateCmd.Flags().BoolVar(&generateVerbose, "verbose", false, "Print detailed progress information")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(generateConfig)
	if err != nil {
		return err
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	text, err := readInput(generateIn)
	if err != nil {
		return err
	}

	ctx := context.Background()
	client, err := llm.NewClient(ctx, &llm.Config{
		Provider: llm.ProviderGemini,
		Model:    cfg.Model,
	}, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	mode := pipeline.ModeVersioned
	if generateMinimal {
		mode = pipeline.ModeMinimal
	}

	store := versioning.NewStore(cfg.OutputDir)
	runner := &pipeline.Runner{
		Client:    client,
		Templates: templates.NewStore(cfg.TemplateDir),
		Store:     store,
		OutputDir: cfg.OutputDir,
		FontPath:  cfg.FontPath,
		Mode:      mode,
	}

	result, err := runner.Run(ctx, pipeline.Options{
		RequirementsText: text,
		ProjectID:        generateProject,
		Summary:          generateSummary,
		TemplateName:     generateTemplate,
		Language:         generateLanguage,
	})
	if err != nil {
		return err
	}

	if generateVerbose {
		printer := observability.NewPrinter(cmd.OutOrStdout())
		printer.PrintPoints(result.Points)
		printer.PrintDocument(result.Document)
		if result.Version > 0 {
			if meta, err := store.Load(generateProject); err == nil && len(meta.Versions) > 0 {
				printer.PrintVersion(&meta.Versions[len(meta.Versions)-1])
			}
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "DOCX: %s\n", result.DocxPath)
	if result.PDFPath != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "PDF:  %s\n", result.PDFPath)
	}
	if result.Version > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Version: %d\n", result.Version)
	}
	return nil
}

// readInput reads the requirement notes from a file, or stdin when no file
// is given.
func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file %s: %w", path, err)
	}
	return string(data), nil
}
