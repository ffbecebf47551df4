// Package main provides the entry point for the requirements document service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "reqdoc",
	Short: "Requirements document generation service",
	Long:  "reqdoc turns free-text requirement notes into structured, versioned requirement documents (DOCX and PDF) using a language model, exposed over a REST API or as a one-shot CLI.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
