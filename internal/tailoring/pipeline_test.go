package tailoring

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/types"
)

// stubClient plays back scripted generation responses.
type stubClient struct {
	responses []string
	errs      []error
	calls     int
}

func (c *stubClient) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return c.next()
}

func (c *stubClient) GenerateJSON(_ context.Context, _ string, _ *genai.Schema, _ llm.ModelTier) (string, error) {
	return c.next()
}

func (c *stubClient) next() (string, error) {
	idx := c.calls
	c.calls++
	var err error
	if idx < len(c.errs) {
		err = c.errs[idx]
	}
	if err != nil {
		return "", err
	}
	if idx < len(c.responses) {
		return c.responses[idx], nil
	}
	return "", &llm.EmptyResponseError{Model: "stub", Reason: "script exhausted"}
}

func (c *stubClient) GetModel(tier llm.ModelTier) string { return "stub-model" }

func (c *stubClient) Close() error { return nil }

const tailoredJSON = `{
	"title": "",
	"contact": {"full_name": "Jane Doe", "email": "jane@example.com"},
	"experiences": [
		{
			"title": "Engineer",
			"employment_type": "full-time",
			"location_type": "telecommute",
			"company": "Acme Widgets Inc",
			"start_date": "2021-03",
			"end_date": null,
			"description": "<ul><li>Shipped widgets</li></ul>"
		}
	],
	"educations": [],
	"skills": [
		{"name": "Go", "category": "technical", "proficiency": "wizard"}
	],
	"certifications": [],
	"awards": [],
	"projects": []
}`

func TestTailorResume_Success(t *testing.T) {
	client := &stubClient{responses: []string{tailoredJSON}}
	tailorer := NewTailorer(client, Options{MaxAttempts: 2})

	master := testMaster()
	master.AssignMissingIDs()
	before := master.Clone()

	result, err := tailorer.TailorResume(context.Background(), master, "Senior Engineer", "job description")
	require.NoError(t, err)
	require.NotNil(t, result.Resume)
	assert.Empty(t, result.CoverLetter)

	// The master resume is untouched input.
	assert.Equal(t, before, master.Clone())

	doc := result.Resume

	// Out-of-range enum values are coerced to their defaults; recognized
	// variants are normalized.
	assert.Equal(t, types.EmploymentFullTime, doc.Experiences[0].EmploymentType)
	assert.Equal(t, types.LocationOnSite, doc.Experiences[0].LocationType)
	assert.Equal(t, types.SkillTechnical, doc.Skills[0].Category)
	assert.Equal(t, types.ProficiencyIntermediate, doc.Skills[0].Proficiency)

	// The tailored output is a new document with its own identifiers.
	assert.NotEmpty(t, doc.ID)
	assert.NotEqual(t, master.ID, doc.ID)
	assert.NotEmpty(t, doc.Experiences[0].ID)

	// A blank generated title defaults to the job title.
	assert.Equal(t, "Senior Engineer", doc.Title)

	assert.Equal(t, 1, client.calls)
}

func TestTailorResume_RetriesThenSucceeds(t *testing.T) {
	client := &stubClient{responses: []string{"not json at all", tailoredJSON}}
	tailorer := NewTailorer(client, Options{MaxAttempts: 2})

	result, err := tailorer.TailorResume(context.Background(), testMaster(), "Engineer", "desc")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", result.Resume.Contact.FullName)
	assert.Equal(t, 2, client.calls)
}

func TestTailorResume_ExhaustsRetries(t *testing.T) {
	client := &stubClient{responses: []string{"garbage", "more garbage", "never reached"}}
	tailorer := NewTailorer(client, Options{MaxAttempts: 2})

	result, err := tailorer.TailorResume(context.Background(), testMaster(), "Engineer", "desc")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, 2, client.calls)

	var exhausted *GenerationExhaustedError
	assert.ErrorAs(t, err, &exhausted)
}

func TestTailorResume_ValidationFailure(t *testing.T) {
	// Well-formed JSON missing the required contact email: parseable, so
	// the retry loop accepts it, but schema validation must reject it
	// without consuming further attempts.
	missingEmail := `{
		"contact": {"full_name": "Jane Doe"},
		"experiences": [], "educations": [], "skills": [],
		"certifications": [], "awards": [], "projects": []
	}`
	client := &stubClient{responses: []string{missingEmail, tailoredJSON}}
	tailorer := NewTailorer(client, Options{MaxAttempts: 2})

	result, err := tailorer.TailorResume(context.Background(), testMaster(), "Engineer", "desc")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, 1, client.calls, "shape-valid but incomplete output is terminal, not retried")

	var validationErr *ValidationFailedError
	assert.ErrorAs(t, err, &validationErr)
}

func TestNewTailorer_Defaults(t *testing.T) {
	tailorer := NewTailorer(&stubClient{}, Options{})
	assert.Equal(t, DefaultMaxAttempts, tailorer.opts.MaxAttempts)
	assert.Equal(t, llm.TierAdvanced, tailorer.opts.ModelTier)
	assert.Equal(t, DefaultTimeout, tailorer.opts.Timeout)
}
