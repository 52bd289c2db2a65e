package building

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-builder/internal/pdfbackend"
	"github.com/jonathan/resume-builder/internal/types"
)

// PDFBuilder renders the resume as a PDF through the engine resolved at
// startup. The direct engine lays the document out itself; the chrome
// engine prints the HTML rendition.
type PDFBuilder struct {
	direct *pdfbackend.DirectRenderer
	chrome *pdfbackend.ChromeRenderer
}

// NewPDFBuilder returns the PDF format builder
func NewPDFBuilder() *PDFBuilder {
	return &PDFBuilder{
		direct: pdfbackend.NewDirectRenderer(),
		chrome: pdfbackend.NewChromeRenderer(),
	}
}

func (b *PDFBuilder) FormatName() string { return "pdf" }

func (b *PDFBuilder) FileExtension() string { return "pdf" }

// Build renders the PDF with the engine named in the options
func (b *PDFBuilder) Build(ctx context.Context, data *types.ResumeData, opts Options) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var pdf []byte
	var err error

	switch opts.Backend {
	case pdfbackend.KindDirect:
		pdf, err = b.direct.Render(data, opts.buildTime())
	case pdfbackend.KindChrome:
		var html string
		html, err = renderHTML(data, opts)
		if err == nil {
			pdf, err = b.chrome.Render(ctx, html)
		}
	default:
		requested := opts.BackendRequest
		if requested == "" {
			requested = string(opts.Backend)
		}
		return "", &pdfbackend.NoBackendError{Requested: requested}
	}
	if err != nil {
		return "", &RenderError{Format: "pdf", Theme: opts.Theme, Stage: "render", Cause: err}
	}

	outPath := filepath.Join(opts.OutputDir, "resume."+b.FileExtension())
	if err := os.WriteFile(outPath, pdf, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return outPath, nil
}
