package building

import (
	"bytes"
	"context"
	"fmt"
	htmltemplate "html/template"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-builder/internal/templates"
	"github.com/jonathan/resume-builder/internal/types"
)

// HTMLBuilder renders the resume as a self-contained HTML document with
// inline styling
type HTMLBuilder struct{}

// NewHTMLBuilder returns the HTML format builder
func NewHTMLBuilder() *HTMLBuilder {
	return &HTMLBuilder{}
}

func (b *HTMLBuilder) FormatName() string { return "html" }

func (b *HTMLBuilder) FileExtension() string { return "html" }

// Build renders the themed HTML document and writes it to the output
// directory
func (b *HTMLBuilder) Build(ctx context.Context, data *types.ResumeData, opts Options) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	rendered, err := renderHTML(data, opts)
	if err != nil {
		return "", err
	}

	outPath := filepath.Join(opts.OutputDir, "resume."+b.FileExtension())
	if err := os.WriteFile(outPath, []byte(rendered), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return outPath, nil
}

// renderHTML produces the HTML document as a string. Shared with the PDF
// builder, which prints this exact document through Chrome.
func renderHTML(data *types.ResumeData, opts Options) (string, error) {
	theme := opts.Theme
	if theme == "" {
		theme = "modern"
	}

	source, err := templates.Load(opts.TemplatesDir, "html", theme, "html")
	if err != nil {
		return "", err
	}

	tmpl, err := htmltemplate.New(theme).Funcs(templateFuncs()).Parse(source)
	if err != nil {
		return "", &RenderError{Format: "html", Theme: theme, Stage: "parse", Cause: err}
	}

	renderCtx := PrepareContext(data, "html", theme, opts.buildTime())

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, renderCtx); err != nil {
		return "", &RenderError{Format: "html", Theme: theme, Stage: "execute", Cause: err}
	}
	return buf.String(), nil
}
