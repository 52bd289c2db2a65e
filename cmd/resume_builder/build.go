package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder/internal/building"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/pdfbackend"
	"github.com/jonathan/resume-builder/internal/validation"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Validate the resume and render the requested formats",
	Long:  "Validates the resume file against the JSON schema, then renders every requested format. Formats build independently: one failure does not stop the others, but any failure makes the command exit non-zero.",
	RunE:  runBuild,
}

var (
	buildResume     string
	buildFormats    []string
	buildOutputDir  string
	buildTheme      string
	buildSchema     string
	buildTemplates  string
	buildConfigPath string
	buildClean      bool
	buildSequential bool
	buildVerbose    bool
)

func init() {
	buildCmd.Flags().StringVarP(&buildResume, "resume", "r", "", "Path to the resume YAML/JSON file")
	buildCmd.Flags().StringSliceVarP(&buildFormats, "format", "f", nil, "Formats to build (repeatable; default: all)")
	buildCmd.Flags().StringVarP(&buildOutputDir, "output", "o", "", "Output directory (default: dist)")
	buildCmd.Flags().StringVarP(&buildTheme, "theme", "t", "", "Theme applied to every format")
	buildCmd.Flags().StringVar(&buildSchema, "schema", "", "Path overriding the embedded JSON schema")
	buildCmd.Flags().StringVar(&buildTemplates, "templates", "", "Directory overriding the embedded themes")
	buildCmd.Flags().StringVarP(&buildConfigPath, "config", "c", "", "Path to a JSON config file")
	buildCmd.Flags().BoolVar(&buildClean, "clean", false, "Remove the output directory before building")
	buildCmd.Flags().BoolVar(&buildSequential, "sequential", false, "Build formats one at a time instead of in parallel")
	buildCmd.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "Print detailed build information")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveBuildConfig()
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())

	result, err := validation.ValidateFile(cfg.Resume, cfg.Schema)
	if err != nil {
		return err
	}
	if !result.Valid {
		printer.PrintValidationReport(result)
		return result.Err()
	}
	if cfg.Verbose {
		printer.PrintValidationReport(result)
	}

	formats := cfg.Formats
	registry := building.NewDefaultRegistry()
	if len(formats) == 0 {
		formats = registry.Formats()
	}

	// Resolve every builder before touching the filesystem so an unknown
	// format fails the run without partial output
	builders := make([]building.Builder, 0, len(formats))
	for _, format := range formats {
		builder, err := registry.Create(format)
		if err != nil {
			return err
		}
		builders = append(builders, builder)
	}

	if buildClean {
		if err := os.RemoveAll(cfg.OutputDir); err != nil {
			return fmt.Errorf("failed to clean output directory: %w", err)
		}
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	opts := building.Options{
		OutputDir:      cfg.OutputDir,
		Theme:          cfg.Theme,
		TemplatesDir:   cfg.Templates,
		Now:            time.Now(),
		Backend:        pdfbackend.ResolveName(cfg.PDFBackend),
		BackendRequest: cfg.PDFBackend,
	}

	started := time.Now()
	outcomes := make([]observability.BuildOutcome, len(builders))

	if buildSequential {
		for i, builder := range builders {
			outcomes[i] = buildOne(cmd, builder, result, opts)
		}
	} else {
		var g errgroup.Group
		for i, builder := range builders {
			i, builder := i, builder
			g.Go(func() error {
				outcomes[i] = buildOne(cmd, builder, result, opts)
				return nil
			})
		}
		_ = g.Wait()
	}

	printer.PrintBuildReport(outcomes, time.Since(started))

	failed := 0
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d formats failed", failed, len(outcomes))
	}
	return nil
}

func buildOne(cmd *cobra.Command, builder building.Builder, result *validation.Result, opts building.Options) observability.BuildOutcome {
	started := time.Now()
	path, err := builder.Build(cmd.Context(), result.Data, opts)

	var size int64
	if err == nil {
		if info, statErr := os.Stat(path); statErr == nil {
			size = info.Size()
		}
	}
	return observability.BuildOutcome{
		Format:   builder.FormatName(),
		Path:     path,
		Size:     size,
		Err:      err,
		Duration: time.Since(started),
	}
}

// resolveBuildConfig merges CLI flags over the config file over built-in
// defaults
func resolveBuildConfig() (config.Config, error) {
	fileCfg, err := config.LoadOptional(buildConfigPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := config.Config{
		Resume:    buildResume,
		OutputDir: buildOutputDir,
		Schema:    buildSchema,
		Templates: buildTemplates,
		Theme:     buildTheme,
		Formats:   buildFormats,
		Verbose:   buildVerbose,
	}
	merged := flags.MergeWithDefaults(*fileCfg)
	merged = merged.MergeWithDefaults(config.Config{
		OutputDir:  "dist",
		PDFBackend: os.Getenv(pdfbackend.BackendEnvVar),
	})
	merged.Verbose = merged.Verbose || fileCfg.Verbose

	if merged.Resume == "" {
		return config.Config{}, fmt.Errorf("no resume file: pass --resume or set \"resume\" in the config file")
	}
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}
