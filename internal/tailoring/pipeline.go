package tailoring

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/schema"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// Options configures the tailoring pipeline. Zero values fall back to the
// defaults below at construction time.
type Options struct {
	// MaxAttempts bounds consecutive generation+parse attempts.
	MaxAttempts int
	// ModelTier selects the generation model capability level.
	ModelTier llm.ModelTier
	// Timeout bounds each full tailoring run, including retries.
	Timeout time.Duration
}

// Default pipeline settings.
const (
	DefaultMaxAttempts = 2
	DefaultTimeout     = 2 * time.Minute
)

// Result is the outcome of a tailoring run. CoverLetter is reserved for a
// sibling pipeline and is currently always empty.
type Result struct {
	Resume      *types.ResumeDocument `json:"resume"`
	CoverLetter string                `json:"cover_letter"`
}

// Tailorer orchestrates the tailoring pipeline against a generation client.
// It holds no per-request state; concurrent TailorResume calls are fully
// independent.
type Tailorer struct {
	client llm.Client
	opts   Options
}

// NewTailorer creates a Tailorer with explicit options.
func NewTailorer(client llm.Client, opts Options) *Tailorer {
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.ModelTier == "" {
		opts.ModelTier = llm.TierAdvanced
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Tailorer{client: client, opts: opts}
}

// TailorResume produces a new resume tailored to the given job. The master
// resume is never mutated; on any failure no document is returned and the
// caller persists nothing.
//
// Failure modes: *GenerationExhaustedError when the retry budget is
// consumed, *ValidationFailedError when the generated JSON is well-formed
// but missing required fields, and llm errors propagated from the final
// attempt.
func (t *Tailorer) TailorResume(ctx context.Context, master *types.ResumeDocument, jobTitle, jobDescription string) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, t.opts.Timeout)
	defer cancel()

	schemaText := schema.TailoringSchema()

	prompt, err := BuildPrompt(jobTitle, jobDescription, master, schemaText)
	if err != nil {
		return nil, err
	}

	log.Printf("[tailor] generating tailored resume for %q (max attempts %d)", jobTitle, t.opts.MaxAttempts)

	factory := func() (string, error) {
		return t.client.GenerateJSON(ctx, prompt, responseSchema(), t.opts.ModelTier)
	}

	doc, err := ParseWithRetry(factory, t.opts.MaxAttempts)
	if err != nil {
		return nil, err
	}

	// Shape is parseable; now enforce required fields before the document
	// enters the data model.
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	if err := schemas.ValidateTailoredResume(string(raw)); err != nil {
		return nil, &ValidationFailedError{Cause: err}
	}

	coerceEnums(doc)
	doc.ID = "" // tailored output is a new document, never the master's
	doc.AssignMissingIDs()

	if doc.Title == "" {
		doc.Title = jobTitle
	}

	return &Result{Resume: doc, CoverLetter: ""}, nil
}
