package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/enhance"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/validation"
)

var enhanceCmd = &cobra.Command{
	Use:   "enhance",
	Short: "Rewrite resume text with AI assistance",
	Long:  "Sends selected resume text through an LLM for rewriting. Every call is bounded by a timeout and any failure keeps the original text. The enhanced resume is written back to the source file unless --dry-run is set.",
	RunE:  runEnhance,
}

var (
	enhanceResume     string
	enhanceSections   []string
	enhanceTimeout    time.Duration
	enhanceAPIKey     string
	enhanceConfigPath string
	enhanceDryRun     bool
)

func init() {
	enhanceCmd.Flags().StringVarP(&enhanceResume, "resume", "r", "", "Path to the resume YAML/JSON file (required)")
	enhanceCmd.Flags().StringSliceVar(&enhanceSections, "sections", nil, "Sections to enhance: summary, achievements, projects (default: all)")
	enhanceCmd.Flags().DurationVar(&enhanceTimeout, "timeout", enhance.DefaultTimeout, "Per-call LLM timeout")
	enhanceCmd.Flags().StringVar(&enhanceAPIKey, "api-key", "", "Gemini API key (default: GEMINI_API_KEY)")
	enhanceCmd.Flags().StringVarP(&enhanceConfigPath, "config", "c", "", "Path to a JSON config file")
	enhanceCmd.Flags().BoolVar(&enhanceDryRun, "dry-run", false, "Report what would change without writing the file")

	if err := enhanceCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(enhanceCmd)
}

func runEnhance(cmd *cobra.Command, _ []string) error {
	apiKey, timeout, err := resolveEnhanceConfig(cmd.Flags().Changed("timeout"))
	if err != nil {
		return err
	}

	// Enhancement only runs on valid resumes; garbage in would become
	// confident garbage out
	result, err := validation.ValidateFile(enhanceResume, "")
	if err != nil {
		return err
	}
	if !result.Valid {
		observability.NewPrinter(cmd.OutOrStdout()).PrintValidationReport(result)
		return result.Err()
	}

	client, err := llm.NewGeminiClient(cmd.Context(), llm.DefaultConfig(), apiKey)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	enhanced, err := enhance.New(client, timeout).Enhance(cmd.Context(), result.Data, enhanceSections)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintEnhancementReport(enhanced)

	if enhanceDryRun {
		fmt.Fprintln(cmd.OutOrStdout(), "Dry run: no files written")
		return nil
	}
	if enhanced.Enhanced == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing enhanced: file left unchanged")
		return nil
	}

	if err := writeResume(enhanceResume, enhanced.Data); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote enhanced resume to %s\n", enhanceResume)
	return nil
}

// resolveEnhanceConfig merges CLI flags over the config file for the two
// settings enhance consumes: the API key (flag, then config, then env) and
// the per-call timeout (flag when set, then config seconds, then default)
func resolveEnhanceConfig(timeoutSet bool) (string, time.Duration, error) {
	fileCfg, err := config.LoadOptional(enhanceConfigPath)
	if err != nil {
		return "", 0, err
	}
	if err := fileCfg.Validate(); err != nil {
		return "", 0, err
	}

	apiKey := enhanceAPIKey
	if apiKey == "" {
		apiKey = fileCfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv(llm.APIKeyEnvVar)
	}

	timeout := enhanceTimeout
	if !timeoutSet && fileCfg.EnhanceTimeout > 0 {
		timeout = time.Duration(fileCfg.EnhanceTimeout) * time.Second
	}
	return apiKey, timeout, nil
}

// writeResume writes the resume back in the format its extension names
func writeResume(path string, data interface{}) error {
	var raw []byte
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		raw, err = json.MarshalIndent(data, "", "  ")
	default:
		raw, err = yaml.Marshal(data)
	}
	if err != nil {
		return fmt.Errorf("failed to encode resume: %w", err)
	}

	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
