package tailoring

import (
	"encoding/json"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/types"
)

// RequestFactory produces one raw generation response. Each invocation
// re-runs the full generation call; a malformed response cannot be salvaged
// by re-parsing alone.
type RequestFactory func() (string, error)

// ParseWithRetry obtains a raw response from factory, strips any fenced
// code-block wrapper, and parses it into the resume data model. On any
// failure (obtaining the response, parse error, shape mismatch) it retries
// immediately, up to maxAttempts consecutive attempts. The first successful
// parse is returned and no further calls are made. Retries are deliberately
// unconditional with no backoff: tailoring is a low-volume, user-initiated,
// synchronous operation.
func ParseWithRetry(factory RequestFactory, maxAttempts int) (*types.ResumeDocument, error) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	var lastRaw string
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		raw, err := factory()
		if err != nil {
			lastErr = err
			lastRaw = ""
			continue
		}

		cleaned := llm.CleanJSONBlock(raw)
		var doc types.ResumeDocument
		if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
			lastErr = err
			lastRaw = raw
			continue
		}
		return &doc, nil
	}

	return nil, &GenerationExhaustedError{
		Attempts: maxAttempts,
		LastErr:  lastErr,
		LastRaw:  lastRaw,
	}
}
