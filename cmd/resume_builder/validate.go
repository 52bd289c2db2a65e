package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a resume file without building anything",
	Long:  "Validates a resume file against the JSON schema and business rules. Schema errors exit non-zero; business-rule findings print as warnings.",
	RunE:  runValidate,
}

var (
	validateResume string
	validateSchema string
)

func init() {
	validateCmd.Flags().StringVarP(&validateResume, "resume", "r", "", "Path to the resume YAML/JSON file (required)")
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Path overriding the embedded JSON schema")

	if err := validateCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	result, err := validation.ValidateFile(validateResume, validateSchema)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintValidationReport(result)

	return result.Err()
}
