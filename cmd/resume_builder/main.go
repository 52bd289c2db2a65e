// Package main implements the resume_builder CLI for validating, enhancing,
// and rendering resumes from structured YAML data.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/building"
)

var rootCmd = &cobra.Command{
	Use:     "resume_builder",
	Short:   "Generate resumes in multiple formats from structured YAML",
	Long:    "Resume Builder validates a structured resume file against a JSON schema and renders it to HTML, PDF, Markdown, and JSON outputs, with optional AI text enhancement.",
	Version: building.GeneratorVersion,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
