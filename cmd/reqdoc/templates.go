package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reqdoc/internal/config"
	"reqdoc/internal/templates"
)

var templatesConfig string

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available document templates",
	RunE:  runTemplates,
}

func init() {
	templatesCmd.Flags().StringVar(&templatesConfig, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(templatesConfig)
	if err != nil {
		return err
	}

	names, err := templates.NewStore(cfg.TemplateDir).List()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No templates found.")
		return nil
	}
	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
