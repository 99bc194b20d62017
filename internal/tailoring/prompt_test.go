package tailoring

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func testMaster() *types.ResumeDocument {
	return &types.ResumeDocument{
		Title: "Master",
		Contact: types.Contact{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
		},
		Experiences: []types.Experience{
			{
				Title:          "Engineer",
				EmploymentType: types.EmploymentFullTime,
				LocationType:   types.LocationRemote,
				Company:        "Acme Widgets Inc",
				StartDate:      "2021-03",
				Description:    "<ul><li>Built the widget API</li></ul>",
			},
		},
	}
}

func TestBuildPrompt_Sections(t *testing.T) {
	master := testMaster()
	schemaText := "model Resume {\n  objective String?\n}"

	prompt, err := BuildPrompt("Senior Engineer", "We need someone who ships.", master, schemaText)
	require.NoError(t, err)

	// All four sections are present, in order.
	schemaIdx := strings.Index(prompt, "OUTPUT SCHEMA:\n")
	titleIdx := strings.Index(prompt, "JOB TITLE:\n")
	descIdx := strings.Index(prompt, "JOB DESCRIPTION:\n")
	resumeIdx := strings.Index(prompt, "MASTER RESUME:\n")
	require.True(t, schemaIdx >= 0 && titleIdx >= 0 && descIdx >= 0 && resumeIdx >= 0)
	assert.True(t, schemaIdx < titleIdx && titleIdx < descIdx && descIdx < resumeIdx)

	// Inputs appear verbatim, not summarized.
	assert.Contains(t, prompt, schemaText)
	assert.Contains(t, prompt, "Senior Engineer")
	assert.Contains(t, prompt, "We need someone who ships.")
	assert.Contains(t, prompt, "Acme Widgets Inc")

	// The master resume is embedded as its exact JSON serialization.
	resumeJSON, err := json.MarshalIndent(master, "", "  ")
	require.NoError(t, err)
	assert.Contains(t, prompt, string(resumeJSON))

	// The instruction block closes the prompt.
	assert.Contains(t, prompt, "HARD CONSTRAINTS:")
	assert.Contains(t, prompt, "MUST NOT be altered")
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	master := testMaster()
	first, err := BuildPrompt("Engineer", "desc", master, "schema")
	require.NoError(t, err)
	second, err := BuildPrompt("Engineer", "desc", master, "schema")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuildPrompt_DoesNotMutateMaster(t *testing.T) {
	master := testMaster()
	before := master.Clone()

	_, err := BuildPrompt("Engineer", "desc", master, "schema")
	require.NoError(t, err)
	assert.Equal(t, before, master.Clone())
}
