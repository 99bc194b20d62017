package tailoring

import "fmt"

// GenerationExhaustedError indicates the retry budget was consumed without
// obtaining a parseable response. It carries the last underlying error and,
// when available, the last raw response text for diagnostics.
type GenerationExhaustedError struct {
	Attempts int
	LastErr  error
	LastRaw  string
}

func (e *GenerationExhaustedError) Error() string {
	return fmt.Sprintf("generation failed after %d attempts: %v", e.Attempts, e.LastErr)
}

func (e *GenerationExhaustedError) Unwrap() error {
	return e.LastErr
}

// ValidationFailedError indicates the generated JSON was well-formed but
// missing a required field (e.g. contact.email). Terminal; never retried.
type ValidationFailedError struct {
	Cause error
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("generated resume failed validation: %v", e.Cause)
}

func (e *ValidationFailedError) Unwrap() error {
	return e.Cause
}
