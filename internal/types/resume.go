package types

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ResumeDocument is the aggregate root for a resume. It exclusively owns
// all of its child collections; children have no lifecycle of their own.
type ResumeDocument struct {
	ID             string          `json:"id,omitempty"`
	Title          string          `json:"title,omitempty"`
	Objective      string          `json:"objective,omitempty"`
	Contact        Contact         `json:"contact"`
	Experiences    []Experience    `json:"experiences"`
	Educations     []Education     `json:"educations"`
	Skills         []Skill         `json:"skills"`
	Certifications []Certification `json:"certifications"`
	Awards         []Award         `json:"awards"`
	Projects       []Project       `json:"projects"`
}

// Contact holds the resume owner's contact details.
type Contact struct {
	ID        string `json:"id,omitempty"`
	FullName  string `json:"full_name" validate:"required,min=1"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	Country   string `json:"country,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty" validate:"omitempty,url"`
	GitHub    string `json:"github,omitempty" validate:"omitempty,url"`
	Portfolio string `json:"portfolio,omitempty" validate:"omitempty,url"`
}

// Experience is a single work history entry. Description may carry simple
// HTML markup which must be preserved verbatim by any transformation.
type Experience struct {
	ID             string         `json:"id,omitempty"`
	Title          string         `json:"title"`
	EmploymentType EmploymentType `json:"employment_type"`
	LocationType   LocationType   `json:"location_type"`
	Company        string         `json:"company"`
	Location       string         `json:"location,omitempty"`
	StartDate      string         `json:"start_date"`
	EndDate        *string        `json:"end_date"` // nil means "present"
	Description    string         `json:"description,omitempty"`
}

// Education is a single education history entry.
type Education struct {
	ID           string   `json:"id,omitempty"`
	School       string   `json:"school"`
	Degree       string   `json:"degree,omitempty"`
	FieldOfStudy string   `json:"field_of_study,omitempty"`
	StartDate    string   `json:"start_date"`
	EndDate      *string  `json:"end_date"`
	GPA          *float64 `json:"gpa,omitempty"`
	GPAMax       *float64 `json:"gpa_max,omitempty"`
	Location     string   `json:"location,omitempty"`
	Description  string   `json:"description,omitempty"`
}

// Skill is a named skill with category and proficiency.
type Skill struct {
	ID          string           `json:"id,omitempty"`
	Name        string           `json:"name"`
	Category    SkillCategory    `json:"category"`
	Proficiency SkillProficiency `json:"proficiency"`
}

// Certification is a professional certification entry.
type Certification struct {
	ID           string  `json:"id,omitempty"`
	Name         string  `json:"name"`
	Issuer       string  `json:"issuer,omitempty"`
	IssueDate    string  `json:"issue_date"`
	ExpiryDate   *string `json:"expiry_date"`
	CredentialID string  `json:"credential_id,omitempty"`
}

// Award is an honors/awards entry.
type Award struct {
	ID          string  `json:"id,omitempty"`
	Title       string  `json:"title"`
	Issuer      string  `json:"issuer,omitempty"`
	Date        *string `json:"date"`
	Description string  `json:"description,omitempty"`
}

// Project is a personal or professional project entry.
type Project struct {
	ID          string  `json:"id,omitempty"`
	Title       string  `json:"title"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Description string  `json:"description,omitempty"`
}

// dateLayouts are the accepted date formats, tried in order.
var dateLayouts = []string{"2006-01-02", "2006-01", "2006"}

// ParseDate parses a resume date string.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %q", s)
}

// validateDateRange checks that end does not precede start. Empty or nil
// end dates mean "present" and always pass.
func validateDateRange(entity, start string, end *string) error {
	if end == nil || *end == "" || start == "" {
		return nil
	}
	startT, err := ParseDate(start)
	if err != nil {
		return fmt.Errorf("%s: invalid start date: %w", entity, err)
	}
	endT, err := ParseDate(*end)
	if err != nil {
		return fmt.Errorf("%s: invalid end date: %w", entity, err)
	}
	if endT.Before(startT) {
		return fmt.Errorf("%s: end date %s precedes start date %s", entity, *end, start)
	}
	return nil
}

// Validate checks the document against the data model invariants: required
// contact with a well-formed email, date ordering on every dated entity,
// and gpa <= gpa_max where both are present.
func (d *ResumeDocument) Validate() error {
	validate := validator.New()
	if err := validate.Struct(d.Contact); err != nil {
		return fmt.Errorf("contact: %w", err)
	}

	for i, exp := range d.Experiences {
		if err := validateDateRange(fmt.Sprintf("experiences[%d]", i), exp.StartDate, exp.EndDate); err != nil {
			return err
		}
	}
	for i, edu := range d.Educations {
		if err := validateDateRange(fmt.Sprintf("educations[%d]", i), edu.StartDate, edu.EndDate); err != nil {
			return err
		}
		if edu.GPA != nil && edu.GPAMax != nil && *edu.GPA > *edu.GPAMax {
			return fmt.Errorf("educations[%d]: gpa %.2f exceeds gpa_max %.2f", i, *edu.GPA, *edu.GPAMax)
		}
	}
	for i, cert := range d.Certifications {
		if err := validateDateRange(fmt.Sprintf("certifications[%d]", i), cert.IssueDate, cert.ExpiryDate); err != nil {
			return err
		}
	}
	for i, proj := range d.Projects {
		if err := validateDateRange(fmt.Sprintf("projects[%d]", i), proj.StartDate, proj.EndDate); err != nil {
			return err
		}
	}
	return nil
}

// AssignMissingIDs gives every sub-entity without an identifier a fresh
// opaque ID. Existing identifiers are never changed, so re-ordering a
// collection keeps entity identity stable.
func (d *ResumeDocument) AssignMissingIDs() {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.Contact.ID == "" {
		d.Contact.ID = uuid.NewString()
	}
	for i := range d.Experiences {
		if d.Experiences[i].ID == "" {
			d.Experiences[i].ID = uuid.NewString()
		}
	}
	for i := range d.Educations {
		if d.Educations[i].ID == "" {
			d.Educations[i].ID = uuid.NewString()
		}
	}
	for i := range d.Skills {
		if d.Skills[i].ID == "" {
			d.Skills[i].ID = uuid.NewString()
		}
	}
	for i := range d.Certifications {
		if d.Certifications[i].ID == "" {
			d.Certifications[i].ID = uuid.NewString()
		}
	}
	for i := range d.Awards {
		if d.Awards[i].ID == "" {
			d.Awards[i].ID = uuid.NewString()
		}
	}
	for i := range d.Projects {
		if d.Projects[i].ID == "" {
			d.Projects[i].ID = uuid.NewString()
		}
	}
}

// Clone returns a deep copy of the document. The tailoring pipeline works
// on a copy so that the master resume is never mutated.
func (d *ResumeDocument) Clone() *ResumeDocument {
	out := *d

	out.Experiences = make([]Experience, len(d.Experiences))
	for i, e := range d.Experiences {
		e.EndDate = cloneString(e.EndDate)
		out.Experiences[i] = e
	}
	out.Educations = make([]Education, len(d.Educations))
	for i, e := range d.Educations {
		e.EndDate = cloneString(e.EndDate)
		e.GPA = cloneFloat(e.GPA)
		e.GPAMax = cloneFloat(e.GPAMax)
		out.Educations[i] = e
	}
	out.Skills = append([]Skill(nil), d.Skills...)
	out.Certifications = make([]Certification, len(d.Certifications))
	for i, c := range d.Certifications {
		c.ExpiryDate = cloneString(c.ExpiryDate)
		out.Certifications[i] = c
	}
	out.Awards = make([]Award, len(d.Awards))
	for i, a := range d.Awards {
		a.Date = cloneString(a.Date)
		out.Awards[i] = a
	}
	out.Projects = make([]Project, len(d.Projects))
	for i, p := range d.Projects {
		p.EndDate = cloneString(p.EndDate)
		out.Projects[i] = p
	}
	return &out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
