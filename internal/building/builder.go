package building

import (
	"context"
	"time"

	"github.com/jonathan/resume-builder/internal/pdfbackend"
	"github.com/jonathan/resume-builder/internal/types"
)

// Options carries the shared settings for one build run. The same Options
// value is handed to every builder so all formats agree on theme, output
// location, and clock.
type Options struct {
	// OutputDir receives the rendered files; created if missing
	OutputDir string
	// Theme selects the template within each format; defaults per builder
	Theme string
	// TemplatesDir overrides the embedded themes when non-empty
	TemplatesDir string
	// Now is the build timestamp; the zero value means time.Now()
	Now time.Time
	// Backend is the resolved PDF engine
	Backend pdfbackend.Kind
	// BackendRequest is the engine name originally asked for, kept so a
	// failed resolution reports what the user requested rather than what
	// it fell back to
	BackendRequest string
}

// buildTime returns the effective build timestamp
func (o Options) buildTime() time.Time {
	if o.Now.IsZero() {
		return time.Now()
	}
	return o.Now
}

// Builder renders a validated resume into one output format
type Builder interface {
	// FormatName returns the registry name of this format
	FormatName() string
	// FileExtension returns the output file extension without the dot
	FileExtension() string
	// Build renders the resume and returns the path of the written file
	Build(ctx context.Context, data *types.ResumeData, opts Options) (string, error)
}
