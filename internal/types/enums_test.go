package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapToEmploymentType(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   EmploymentType
		wantOK bool
	}{
		{name: "canonical value", input: "FULL_TIME", want: EmploymentFullTime, wantOK: true},
		{name: "lowercase", input: "contract", want: EmploymentContract, wantOK: true},
		{name: "hyphenated", input: "self-employed", want: EmploymentSelfEmployed, wantOK: true},
		{name: "spaced", input: "Part Time", want: EmploymentPartTime, wantOK: true},
		{name: "surrounding whitespace", input: "  internship  ", want: EmploymentInternship, wantOK: true},
		{name: "unknown falls back", input: "gig-economy", want: EmploymentFullTime, wantOK: false},
		{name: "empty falls back", input: "", want: EmploymentFullTime, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MapToEmploymentType(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestMapToLocationType(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   LocationType
		wantOK bool
	}{
		{name: "canonical value", input: "REMOTE", want: LocationRemote, wantOK: true},
		{name: "hyphenated on-site", input: "on-site", want: LocationOnSite, wantOK: true},
		{name: "mixed case", input: "Hybrid", want: LocationHybrid, wantOK: true},
		{name: "unknown falls back", input: "moon", want: LocationOnSite, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MapToLocationType(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestMapToSkillCategory(t *testing.T) {
	got, ok := MapToSkillCategory("soft")
	assert.Equal(t, SkillSoft, got)
	assert.True(t, ok)

	got, ok = MapToSkillCategory("interpersonal")
	assert.Equal(t, SkillTechnical, got)
	assert.False(t, ok)
}

func TestMapToSkillProficiency(t *testing.T) {
	got, ok := MapToSkillProficiency("Expert")
	assert.Equal(t, ProficiencyExpert, got)
	assert.True(t, ok)

	got, ok = MapToSkillProficiency("ninja")
	assert.Equal(t, ProficiencyIntermediate, got)
	assert.False(t, ok)
}

func TestMapToApplicationStatus(t *testing.T) {
	got, ok := MapToApplicationStatus("interviewing")
	assert.Equal(t, StatusInterviewing, got)
	assert.True(t, ok)

	got, ok = MapToApplicationStatus("ghosted")
	assert.Equal(t, StatusSaved, got)
	assert.False(t, ok)
}
