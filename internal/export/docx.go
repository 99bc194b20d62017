// Package export renders a finalized resume document to a downloadable
// .docx file by filling placeholders in a Word template.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/nguyenthenguyen/docx"

	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultTemplatePath is the bundled resume template, relative to the
// working directory. Override with the EXPORT_TEMPLATE env var at the
// call site.
const DefaultTemplatePath = "templates/resume.docx"

// presentLabel renders a nullable end date.
const presentLabel = "Present"

// Render fills the template's placeholders from the resume document and
// writes the resulting .docx to w.
func Render(templatePath string, doc *types.ResumeDocument, w io.Writer) error {
	r, err := docx.ReadDocxFile(templatePath)
	if err != nil {
		return fmt.Errorf("failed to open docx template %s: %w", templatePath, err)
	}
	defer func() { _ = r.Close() }()

	d := r.Editable()
	for placeholder, value := range BuildReplacements(doc) {
		if err := d.Replace(placeholder, value, -1); err != nil {
			return fmt.Errorf("failed to replace %s: %w", placeholder, err)
		}
	}

	if err := d.Write(w); err != nil {
		return fmt.Errorf("failed to write docx: %w", err)
	}
	return nil
}

// BuildReplacements maps template placeholders to rendered section text.
func BuildReplacements(doc *types.ResumeDocument) map[string]string {
	return map[string]string{
		"{{FULL_NAME}}":      doc.Contact.FullName,
		"{{EMAIL}}":          doc.Contact.Email,
		"{{PHONE}}":          doc.Contact.Phone,
		"{{LOCATION}}":       contactLocation(&doc.Contact),
		"{{LINKS}}":          contactLinks(&doc.Contact),
		"{{OBJECTIVE}}":      doc.Objective,
		"{{EXPERIENCE}}":     renderExperiences(doc.Experiences),
		"{{EDUCATION}}":      renderEducations(doc.Educations),
		"{{SKILLS}}":         renderSkills(doc.Skills),
		"{{CERTIFICATIONS}}": renderCertifications(doc.Certifications),
		"{{AWARDS}}":         renderAwards(doc.Awards),
		"{{PROJECTS}}":       renderProjects(doc.Projects),
	}
}

func contactLocation(c *types.Contact) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{c.Address, c.City, c.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func contactLinks(c *types.Contact) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{c.LinkedIn, c.GitHub, c.Portfolio} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " | ")
}

func dateRange(start string, end *string) string {
	if start == "" {
		return ""
	}
	if end == nil || *end == "" {
		return start + " - " + presentLabel
	}
	return start + " - " + *end
}

func renderExperiences(experiences []types.Experience) string {
	var sb strings.Builder
	for i, exp := range experiences {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(fmt.Sprintf("%s, %s", exp.Title, exp.Company))
		if exp.Location != "" {
			sb.WriteString(" - " + exp.Location)
		}
		sb.WriteString("\n" + dateRange(exp.StartDate, exp.EndDate))
		if desc := htmlToText(exp.Description); desc != "" {
			sb.WriteString("\n" + desc)
		}
	}
	return sb.String()
}

func renderEducations(educations []types.Education) string {
	var sb strings.Builder
	for i, edu := range educations {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(edu.School)
		if edu.Degree != "" {
			sb.WriteString(", " + edu.Degree)
		}
		if edu.FieldOfStudy != "" {
			sb.WriteString(" in " + edu.FieldOfStudy)
		}
		sb.WriteString("\n" + dateRange(edu.StartDate, edu.EndDate))
		if edu.GPA != nil {
			if edu.GPAMax != nil {
				sb.WriteString(fmt.Sprintf("\nGPA: %.2f / %.2f", *edu.GPA, *edu.GPAMax))
			} else {
				sb.WriteString(fmt.Sprintf("\nGPA: %.2f", *edu.GPA))
			}
		}
		if desc := htmlToText(edu.Description); desc != "" {
			sb.WriteString("\n" + desc)
		}
	}
	return sb.String()
}

func renderSkills(skills []types.Skill) string {
	byCategory := make(map[types.SkillCategory][]string)
	for _, s := range skills {
		byCategory[s.Category] = append(byCategory[s.Category], s.Name)
	}

	var sb strings.Builder
	for i, cat := range []types.SkillCategory{types.SkillTechnical, types.SkillSoft, types.SkillLanguage} {
		names := byCategory[cat]
		if len(names) == 0 {
			continue
		}
		if i > 0 && sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%s: %s", skillCategoryLabel(cat), strings.Join(names, ", ")))
	}
	return sb.String()
}

func skillCategoryLabel(cat types.SkillCategory) string {
	switch cat {
	case types.SkillSoft:
		return "Soft Skills"
	case types.SkillLanguage:
		return "Languages"
	default:
		return "Technical"
	}
}

func renderCertifications(certs []types.Certification) string {
	var sb strings.Builder
	for i, cert := range certs {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(cert.Name)
		if cert.Issuer != "" {
			sb.WriteString(" - " + cert.Issuer)
		}
		sb.WriteString(" (" + dateRange(cert.IssueDate, cert.ExpiryDate) + ")")
	}
	return sb.String()
}

func renderAwards(awards []types.Award) string {
	var sb strings.Builder
	for i, award := range awards {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(award.Title)
		if award.Issuer != "" {
			sb.WriteString(" - " + award.Issuer)
		}
		if award.Date != nil && *award.Date != "" {
			sb.WriteString(" (" + *award.Date + ")")
		}
	}
	return sb.String()
}

func renderProjects(projects []types.Project) string {
	var sb strings.Builder
	for i, proj := range projects {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(proj.Title)
		if r := dateRange(proj.StartDate, proj.EndDate); r != "" {
			sb.WriteString("\n" + r)
		}
		if desc := htmlToText(proj.Description); desc != "" {
			sb.WriteString("\n" + desc)
		}
	}
	return sb.String()
}

// htmlToText flattens simple HTML markup (lists, paragraphs) into plain
// text lines for the Word document.
func htmlToText(html string) string {
	if html == "" {
		return ""
	}
	if !strings.Contains(html, "<") {
		return strings.TrimSpace(html)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.TrimSpace(html)
	}

	var lines []string
	items := doc.Find("li")
	if items.Length() > 0 {
		items.Each(func(_ int, s *goquery.Selection) {
			if text := strings.TrimSpace(s.Text()); text != "" {
				lines = append(lines, "• "+text)
			}
		})
		// Text outside the list still belongs in the output.
		doc.Find("li").Remove()
	}
	if text := strings.TrimSpace(doc.Text()); text != "" {
		lines = append([]string{text}, lines...)
	}
	return strings.Join(lines, "\n")
}
