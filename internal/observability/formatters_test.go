package observability

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-builder/internal/enhance"
	"github.com/jonathan/resume-builder/internal/validation"
)

func TestPrintValidationReport_Valid(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintValidationReport(&validation.Result{
		Path:  "resume.yaml",
		Valid: true,
		Warnings: []validation.Warning{
			{Code: validation.WarnFewSkills, Message: "only 5 skills listed"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Validation Report")
	assert.Contains(t, out, "valid")
	assert.Contains(t, out, "only 5 skills listed")
}

func TestPrintValidationReport_Invalid(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	errs := make([]validation.FieldError, 8)
	for i := range errs {
		errs[i] = validation.FieldError{Field: "personal_info.email", Message: "is required"}
	}

	p.PrintValidationReport(&validation.Result{Path: "resume.yaml", Errors: errs})

	out := buf.String()
	assert.Contains(t, out, "INVALID (8 error(s))")
	assert.Contains(t, out, "personal_info.email")
	assert.Contains(t, out, "and 3 more")
}

func TestPrintValidationReport_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintValidationReport(nil)
	assert.Empty(t, buf.String())
}

func TestPrintBuildReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBuildReport([]BuildOutcome{
		{Format: "html", Path: "dist/resume.html", Size: 2048, Duration: 12 * time.Millisecond},
		{Format: "pdf", Err: errors.New("no PDF backend available")},
	}, 50*time.Millisecond)

	out := buf.String()
	assert.Contains(t, out, "Build Report")
	assert.Contains(t, out, "1 of 2 formats succeeded")
	assert.Contains(t, out, "dist/resume.html")
	assert.Contains(t, out, "2.0 KB")
	assert.Contains(t, out, "no PDF backend available")
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "512 B", formatSize(512))
	assert.Equal(t, "1.5 KB", formatSize(1536))
	assert.Equal(t, "2.0 MB", formatSize(2<<20))
}

func TestPrintEnhancementReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintEnhancementReport(&enhance.Result{
		Enhanced: 2,
		Skipped:  1,
		Failures: []string{"summary: model unavailable"},
	})

	out := buf.String()
	assert.Contains(t, out, "Enhancement Report")
	assert.Contains(t, out, "Enhanced: 2")
	assert.Contains(t, out, "model unavailable")
}
