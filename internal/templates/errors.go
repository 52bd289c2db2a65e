package templates

import "fmt"

// NotFoundError indicates that no template exists for a requested theme
type NotFoundError struct {
	Path   string
	Format string
	Theme  string
	Cause  error
}

func (e *NotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template not found for theme %q (format %s): %s: %v", e.Theme, e.Format, e.Path, e.Cause)
	}
	return fmt.Sprintf("template not found for theme %q (format %s): %s", e.Theme, e.Format, e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return e.Cause
}
