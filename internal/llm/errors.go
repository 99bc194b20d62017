package llm

import "fmt"

// ServiceUnavailableError indicates the generation service could not be
// reached or rejected the call (transport or auth failure). It is never
// retried by the client itself; the orchestrator decides whether to retry
// the whole pipeline.
type ServiceUnavailableError struct {
	Model string
	Cause error
}

func (e *ServiceUnavailableError) Error() string {
	return fmt.Sprintf("generation service unavailable (model %s): %v", e.Model, e.Cause)
}

func (e *ServiceUnavailableError) Unwrap() error {
	return e.Cause
}

// EmptyResponseError indicates the service answered but returned no usable
// text. Distinguished from JSON-parse failures, which are retryable.
type EmptyResponseError struct {
	Model  string
	Reason string
}

func (e *EmptyResponseError) Error() string {
	return fmt.Sprintf("empty response from generation service (model %s): %s", e.Model, e.Reason)
}
