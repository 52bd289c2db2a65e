// Package validation checks resume documents against the JSON schema,
// struct-level rules, and business rules before any build starts.
package validation

import (
	"fmt"
	"strings"
)

// FieldError is a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaValidationError carries every field-level error found in the input
// document. Builds must not start while one of these is outstanding.
type SchemaValidationError struct {
	Path   string
	Errors []FieldError
}

func (e *SchemaValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("resume validation failed for %s:\n", e.Path))
	for i, fieldErr := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, fieldErr.Field, fieldErr.Message))
	}
	return sb.String()
}

// SchemaLoadError indicates the schema itself could not be loaded or parsed
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}
