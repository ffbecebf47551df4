package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"reqdoc/internal/config"
	"reqdoc/internal/llm"
	"reqdoc/internal/pipeline"
	"reqdoc/internal/server"
	"reqdoc/internal/templates"
	"reqdoc/internal/versioning"
)

var (
	servePort   int
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the document generation workflow and serves the generated files.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config and env)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfig)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	client, err := llm.NewClient(context.Background(), &llm.Config{
		Provider: llm.ProviderGemini,
		Model:    cfg.Model,
	}, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	store := versioning.NewStore(cfg.OutputDir)
	runner := &pipeline.Runner{
		Client:    client,
		Templates: templates.NewStore(cfg.TemplateDir),
		Store:     store,
		OutputDir: cfg.OutputDir,
		FontPath:  cfg.FontPath,
		Mode:      pipeline.ModeVersioned,
	}

	srv := server.New(server.Config{
		Port:      cfg.Port,
		BaseURL:   cfg.BaseURL,
		OutputDir: cfg.OutputDir,
	}, runner, store)

	return srv.Start()
}
