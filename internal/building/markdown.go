package building

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	texttemplate "text/template"

	"github.com/jonathan/resume-builder/internal/templates"
	"github.com/jonathan/resume-builder/internal/types"
)

// MarkdownBuilder renders the resume as GitHub-flavored Markdown, suitable
// for a profile README
type MarkdownBuilder struct{}

// NewMarkdownBuilder returns the Markdown format builder
func NewMarkdownBuilder() *MarkdownBuilder {
	return &MarkdownBuilder{}
}

func (b *MarkdownBuilder) FormatName() string { return "markdown" }

func (b *MarkdownBuilder) FileExtension() string { return "md" }

// Build renders the themed Markdown document and writes it to the output
// directory
func (b *MarkdownBuilder) Build(ctx context.Context, data *types.ResumeData, opts Options) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	theme := opts.Theme
	if theme == "" {
		theme = "github"
	}

	source, err := templates.Load(opts.TemplatesDir, "markdown", theme, "md")
	if err != nil {
		return "", err
	}

	// Markdown is plain text; HTML escaping would mangle the output
	tmpl, err := texttemplate.New(theme).Funcs(templateFuncs()).Parse(source)
	if err != nil {
		return "", &RenderError{Format: "markdown", Theme: theme, Stage: "parse", Cause: err}
	}

	renderCtx := PrepareContext(data, "markdown", theme, opts.buildTime())

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, renderCtx); err != nil {
		return "", &RenderError{Format: "markdown", Theme: theme, Stage: "execute", Cause: err}
	}

	outPath := filepath.Join(opts.OutputDir, "resume."+b.FileExtension())
	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return outPath, nil
}
