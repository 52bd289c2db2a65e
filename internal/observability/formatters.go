// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/enhance"
	"github.com/jonathan/resume-builder/internal/validation"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// BuildOutcome is the result of one format build, success or failure
type BuildOutcome struct {
	Format   string
	Path     string
	Size     int64
	Err      error
	Duration time.Duration
}

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintValidationReport outputs a human-readable validation summary
func (p *Printer) PrintValidationReport(result *validation.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder

	if result.Valid {
		sb.WriteString("Status:   valid\n")
	} else {
		sb.WriteString(fmt.Sprintf("Status:   INVALID (%d error(s))\n", len(result.Errors)))
	}
	sb.WriteString(fmt.Sprintf("File:     %s\n", result.Path))

	if len(result.Errors) > 0 {
		sb.WriteString("\nErrors:\n")
		count := min(len(result.Errors), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s: %s\n", result.Errors[i].Field, result.Errors[i].Message))
		}
		if len(result.Errors) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Errors)-maxItemsToShow))
		}
	}

	if len(result.Warnings) > 0 {
		sb.WriteString("\nWarnings:\n")
		for _, warning := range result.Warnings {
			sb.WriteString(fmt.Sprintf("  • %s\n", warning.Message))
		}
	}

	p.printBox("Validation Report", strings.TrimRight(sb.String(), "\n"))
}

// PrintBuildReport outputs a summary of every format built in one run
func (p *Printer) PrintBuildReport(outcomes []BuildOutcome, elapsed time.Duration) {
	if len(outcomes) == 0 {
		return
	}

	succeeded := 0
	for _, outcome := range outcomes {
		if outcome.Err == nil {
			succeeded++
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d of %d formats succeeded in %s\n\n", succeeded, len(outcomes), elapsed.Round(time.Millisecond)))

	for _, outcome := range outcomes {
		if outcome.Err == nil {
			sb.WriteString(fmt.Sprintf("  ✓ %-8s %s (%s, %s)\n", outcome.Format, outcome.Path, formatSize(outcome.Size), outcome.Duration.Round(time.Millisecond)))
		} else {
			sb.WriteString(fmt.Sprintf("  ✗ %-8s %v\n", outcome.Format, outcome.Err))
		}
	}

	p.printBox("Build Report", strings.TrimRight(sb.String(), "\n"))
}

// formatSize renders a byte count as a short human-readable string
func formatSize(size int64) string {
	switch {
	case size >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(size)/(1<<20))
	case size >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(size)/(1<<10))
	default:
		return fmt.Sprintf("%d B", size)
	}
}

// PrintEnhancementReport outputs a summary of an AI enhancement run
func (p *Printer) PrintEnhancementReport(result *enhance.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Enhanced: %d field(s)\n", result.Enhanced))
	sb.WriteString(fmt.Sprintf("Skipped:  %d field(s)\n", result.Skipped))

	if len(result.Failures) > 0 {
		sb.WriteString("\nFallbacks:\n")
		count := min(len(result.Failures), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.Failures[i]))
		}
		if len(result.Failures) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Failures)-maxItemsToShow))
		}
	}

	p.printBox("Enhancement Report", strings.TrimRight(sb.String(), "\n"))
}
