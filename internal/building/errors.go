package building

import (
	"fmt"
	"strings"
)

// RenderError indicates a builder failed while producing its output
type RenderError struct {
	Format string
	Theme  string
	Stage  string
	Cause  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("failed to render %s output (theme %q, stage %s): %v", e.Format, e.Theme, e.Stage, e.Cause)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// UnknownFormatError indicates a format name with no registered builder
type UnknownFormatError struct {
	Format    string
	Available []string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown format %q (available: %s)", e.Format, strings.Join(e.Available, ", "))
}
