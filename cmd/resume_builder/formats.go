package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/building"
	"github.com/jonathan/resume-builder/internal/templates"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the available output formats and themes",
	RunE:  runFormats,
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

func runFormats(cmd *cobra.Command, _ []string) error {
	registry := building.NewDefaultRegistry()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Formats:")
	for _, format := range registry.Formats() {
		builder, err := registry.Create(format)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %-8s -> resume.%s\n", format, builder.FileExtension())
	}

	htmlThemes, err := templates.List("html", "html")
	if err != nil {
		return err
	}
	mdThemes, err := templates.List("markdown", "md")
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "\nThemes:")
	for _, theme := range htmlThemes {
		fmt.Fprintf(out, "  html:     %s\n", theme)
	}
	for _, theme := range mdThemes {
		fmt.Fprintf(out, "  markdown: %s\n", theme)
	}
	return nil
}
