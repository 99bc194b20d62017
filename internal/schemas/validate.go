// Package schemas provides JSON Schema validation for generated resume data.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed tailored_resume.schema.json
var tailoredResumeSchema string

// ValidationError reports fields of a generated document that do not
// satisfy the tailored-resume schema.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single validation failure at a specific field path.
type FieldError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "schema validation failed"
	}
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "schema validation failed: " + strings.Join(msgs, "; ")
}

// ValidateTailoredResume checks a generated resume JSON document against
// the embedded tailored-resume schema. It returns a *ValidationError
// listing every violated field, or nil when the document conforms.
func ValidateTailoredResume(jsonText string) error {
	schemaLoader := gojsonschema.NewStringLoader(tailoredResumeSchema)
	documentLoader := gojsonschema.NewStringLoader(jsonText)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to run schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	vErr := &ValidationError{}
	for _, desc := range result.Errors() {
		vErr.Errors = append(vErr.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return vErr
}
