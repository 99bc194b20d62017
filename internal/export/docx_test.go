package export

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-builder/internal/types"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestBuildReplacements(t *testing.T) {
	doc := &types.ResumeDocument{
		Objective: "Build reliable services.",
		Contact: types.Contact{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "555-0100",
			City:     "Toronto",
			Country:  "Canada",
			LinkedIn: "https://linkedin.com/in/janedoe",
			GitHub:   "https://github.com/janedoe",
		},
		Experiences: []types.Experience{
			{
				Title:       "Software Engineer",
				Company:     "Acme",
				Location:    "Remote",
				StartDate:   "2021-03",
				EndDate:     nil,
				Description: "<ul><li>Shipped the widget API</li><li>Cut latency in half</li></ul>",
			},
		},
		Educations: []types.Education{
			{
				School:    "University of Toronto",
				Degree:    "BSc",
				StartDate: "2016-09",
				EndDate:   strPtr("2020-05"),
				GPA:       floatPtr(3.7),
				GPAMax:    floatPtr(4.0),
			},
		},
		Skills: []types.Skill{
			{Name: "Go", Category: types.SkillTechnical},
			{Name: "Mentoring", Category: types.SkillSoft},
			{Name: "French", Category: types.SkillLanguage},
		},
	}

	repl := BuildReplacements(doc)

	assert.Equal(t, "Jane Doe", repl["{{FULL_NAME}}"])
	assert.Equal(t, "jane@example.com", repl["{{EMAIL}}"])
	assert.Equal(t, "Toronto, Canada", repl["{{LOCATION}}"])
	assert.Equal(t, "https://linkedin.com/in/janedoe | https://github.com/janedoe", repl["{{LINKS}}"])
	assert.Equal(t, "Build reliable services.", repl["{{OBJECTIVE}}"])

	exp := repl["{{EXPERIENCE}}"]
	assert.Contains(t, exp, "Software Engineer, Acme - Remote")
	assert.Contains(t, exp, "2021-03 - Present")
	assert.Contains(t, exp, "• Shipped the widget API")
	assert.Contains(t, exp, "• Cut latency in half")

	edu := repl["{{EDUCATION}}"]
	assert.Contains(t, edu, "University of Toronto, BSc")
	assert.Contains(t, edu, "2016-09 - 2020-05")
	assert.Contains(t, edu, "GPA: 3.70 / 4.00")

	skills := repl["{{SKILLS}}"]
	assert.Contains(t, skills, "Technical: Go")
	assert.Contains(t, skills, "Soft Skills: Mentoring")
	assert.Contains(t, skills, "Languages: French")

	// Empty sections render as empty strings, not placeholders.
	assert.Equal(t, "", repl["{{CERTIFICATIONS}}"])
	assert.Equal(t, "", repl["{{AWARDS}}"])
	assert.Equal(t, "", repl["{{PROJECTS}}"])
}

func TestHTMLToText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain text untouched", input: "just text", expected: "just text"},
		{name: "empty", input: "", expected: ""},
		{
			name:     "list becomes bullets",
			input:    "<ul><li>one</li><li>two</li></ul>",
			expected: "• one\n• two",
		},
		{
			name:     "paragraph with list",
			input:    "<p>Summary</p><ul><li>detail</li></ul>",
			expected: "Summary\n• detail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, htmlToText(tt.input))
		})
	}
}

func TestDateRange(t *testing.T) {
	assert.Equal(t, "2021-03 - Present", dateRange("2021-03", nil))
	assert.Equal(t, "2021-03 - Present", dateRange("2021-03", strPtr("")))
	assert.Equal(t, "2021-03 - 2023-01", dateRange("2021-03", strPtr("2023-01")))
	assert.Equal(t, "", dateRange("", nil))
}
