package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func sampleDocument() *ResumeDocument {
	return &ResumeDocument{
		Title:     "Backend Engineer",
		Objective: "Build reliable services.",
		Contact: Contact{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			City:     "Toronto",
		},
		Experiences: []Experience{
			{
				Title:          "Software Engineer",
				EmploymentType: EmploymentFullTime,
				LocationType:   LocationRemote,
				Company:        "Acme",
				StartDate:      "2021-03",
				EndDate:        nil,
				Description:    "<ul><li>Shipped things</li></ul>",
			},
		},
		Educations: []Education{
			{
				School:    "University of Toronto",
				Degree:    "BSc",
				StartDate: "2016-09",
				EndDate:   strPtr("2020-05"),
				GPA:       floatPtr(3.7),
				GPAMax:    floatPtr(4.0),
			},
		},
		Skills: []Skill{
			{Name: "Go", Category: SkillTechnical, Proficiency: ProficiencyAdvanced},
		},
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "full date", input: "2023-05-01"},
		{name: "year and month", input: "2023-05"},
		{name: "year only", input: "2023"},
		{name: "garbage", input: "May 2023", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResumeDocument_Validate(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		assert.NoError(t, sampleDocument().Validate())
	})

	t.Run("missing contact email", func(t *testing.T) {
		doc := sampleDocument()
		doc.Contact.Email = ""
		assert.Error(t, doc.Validate())
	})

	t.Run("malformed contact email", func(t *testing.T) {
		doc := sampleDocument()
		doc.Contact.Email = "not-an-email"
		assert.Error(t, doc.Validate())
	})

	t.Run("end date before start date", func(t *testing.T) {
		doc := sampleDocument()
		doc.Experiences[0].EndDate = strPtr("2020-01")
		err := doc.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "precedes")
	})

	t.Run("nil end date means present", func(t *testing.T) {
		doc := sampleDocument()
		doc.Experiences[0].EndDate = nil
		assert.NoError(t, doc.Validate())
	})

	t.Run("gpa exceeds gpa_max", func(t *testing.T) {
		doc := sampleDocument()
		doc.Educations[0].GPA = floatPtr(4.5)
		err := doc.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "gpa")
	})

	t.Run("mixed date granularities compare", func(t *testing.T) {
		doc := sampleDocument()
		doc.Educations[0].StartDate = "2016"
		doc.Educations[0].EndDate = strPtr("2020-05-15")
		assert.NoError(t, doc.Validate())
	})
}

func TestResumeDocument_AssignMissingIDs(t *testing.T) {
	doc := sampleDocument()
	doc.Experiences[0].ID = "existing-id"

	doc.AssignMissingIDs()

	assert.NotEmpty(t, doc.ID)
	assert.NotEmpty(t, doc.Contact.ID)
	assert.NotEmpty(t, doc.Educations[0].ID)
	assert.NotEmpty(t, doc.Skills[0].ID)

	// An existing identifier is never replaced.
	assert.Equal(t, "existing-id", doc.Experiences[0].ID)

	// Re-running is a no-op.
	before := doc.Educations[0].ID
	doc.AssignMissingIDs()
	assert.Equal(t, before, doc.Educations[0].ID)
}

func TestResumeDocument_Clone(t *testing.T) {
	original := sampleDocument()
	original.AssignMissingIDs()

	clone := original.Clone()
	require.Equal(t, original, clone)

	// Mutating the clone must not touch the original.
	clone.Contact.FullName = "Someone Else"
	clone.Experiences[0].Description = "rewritten"
	*clone.Educations[0].GPA = 2.0
	clone.Experiences[0].EndDate = strPtr("2024-01")
	clone.Skills[0].Name = "Rust"

	assert.Equal(t, "Jane Doe", original.Contact.FullName)
	assert.Equal(t, "<ul><li>Shipped things</li></ul>", original.Experiences[0].Description)
	assert.Equal(t, 3.7, *original.Educations[0].GPA)
	assert.Nil(t, original.Experiences[0].EndDate)
	assert.Equal(t, "Go", original.Skills[0].Name)
}
