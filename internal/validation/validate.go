package validation

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-builder/internal/types"
)

//go:embed resume.schema.json
var embeddedSchema string

var dateMonthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Warning is a non-fatal business-rule finding. Warnings never block a build.
type Warning struct {
	Code    string
	Message string
}

// Result is the outcome of validating a resume document
type Result struct {
	Path     string
	Valid    bool
	Errors   []FieldError
	Warnings []Warning
	Data     *types.ResumeData
}

// Err returns the result as an error, or nil when the document is valid
func (r *Result) Err() error {
	if r.Valid {
		return nil
	}
	return &SchemaValidationError{Path: r.Path, Errors: r.Errors}
}

// newValidator builds a struct validator with the custom date tags registered
func newValidator() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.RegisterValidation("datemonth", func(fl validator.FieldLevel) bool {
		return dateMonthPattern.MatchString(fl.Field().String())
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register datemonth validator: %w", err)
	}
	return v, nil
}

// ValidateFile loads a resume document (YAML or JSON, by extension), validates
// it against the JSON schema and the struct-level rules, and collects business
// warnings. Schema violations make the result invalid; a nil error with an
// invalid result means the document was readable but failed validation.
// schemaPath overrides the embedded schema when non-empty.
func ValidateFile(path, schemaPath string) (*Result, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file %s: %w", path, err)
	}

	var doc interface{}
	var data types.ResumeData

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("failed to decode resume %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON %s: %w", path, err)
		}
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("failed to decode resume %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported resume file extension %q (want .yaml, .yml, or .json)", ext)
	}

	schemaErrs, err := validateSchema(doc, schemaPath)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Path:   path,
		Errors: schemaErrs,
		Data:   &data,
	}

	// Struct-level rules catch what the schema cannot express (semver,
	// cross-field constraints). Only run them on schema-clean documents so
	// the same problem is not reported twice.
	if len(result.Errors) == 0 {
		structErrs, err := ValidateData(&data)
		if err != nil {
			return nil, err
		}
		result.Errors = append(result.Errors, structErrs...)
	}

	result.Valid = len(result.Errors) == 0
	if result.Valid {
		result.Warnings = BusinessWarnings(&data, time.Now())
	}
	return result, nil
}

// validateSchema checks the decoded document against the JSON schema
func validateSchema(doc interface{}, schemaPath string) ([]FieldError, error) {
	var schemaLoader gojsonschema.JSONLoader
	if schemaPath != "" {
		absPath, err := filepath.Abs(schemaPath)
		if err != nil {
			return nil, &SchemaLoadError{Path: schemaPath, Message: "failed to resolve path", Cause: err}
		}
		if _, err := os.Stat(absPath); err != nil {
			return nil, &SchemaLoadError{Path: absPath, Message: "schema file not found", Cause: err}
		}
		schemaLoader = gojsonschema.NewReferenceLoader("file://" + absPath)
	} else {
		schemaLoader = gojsonschema.NewStringLoader(embeddedSchema)
	}

	documentLoader := gojsonschema.NewGoLoader(doc)

	schemaResult, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, &SchemaLoadError{
			Path:    schemaPath,
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if schemaResult.Valid() {
		return nil, nil
	}

	fieldErrs := make([]FieldError, 0, len(schemaResult.Errors()))
	for _, desc := range schemaResult.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		fieldErrs = append(fieldErrs, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return fieldErrs, nil
}

// ValidateData runs the struct-level validation rules against an in-memory
// resume. Used directly by the enhancement flow to re-check modified data
// without a round-trip through the filesystem.
func ValidateData(data *types.ResumeData) ([]FieldError, error) {
	v, err := newValidator()
	if err != nil {
		return nil, err
	}

	err = v.Struct(data)
	if err == nil {
		return nil, nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return nil, fmt.Errorf("struct validation could not run: %w", err)
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil, fmt.Errorf("unexpected validation error: %w", err)
	}

	fieldErrs := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fieldErrs = append(fieldErrs, FieldError{
			Field:   strings.TrimPrefix(fe.Namespace(), "ResumeData."),
			Message: tagMessage(fe),
		})
	}
	return fieldErrs, nil
}

// tagMessage renders a human-readable message for a failed validator tag
func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must have at least %s characters or items", fe.Param())
	case "max":
		return fmt.Sprintf("must have at most %s characters or items", fe.Param())
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "semver":
		return "must be a semantic version (e.g. 2.1.0)"
	case "datemonth":
		return "must be a YYYY-MM date"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
