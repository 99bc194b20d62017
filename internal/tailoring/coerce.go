package tailoring

import (
	"log"

	"github.com/jonathan/resume-builder/internal/types"
)

// coerceEnums forces every enumerated field of a generated document into
// its declared value set. Out-of-range values from the generation service
// are replaced with the documented default and logged; they are never
// accepted silently into the data model.
func coerceEnums(doc *types.ResumeDocument) {
	for i := range doc.Experiences {
		exp := &doc.Experiences[i]
		if mapped, ok := types.MapToEmploymentType(string(exp.EmploymentType)); !ok {
			log.Printf("[tailor] invalid employment_type %q on experience %q, defaulting to %s",
				exp.EmploymentType, exp.Title, mapped)
			exp.EmploymentType = mapped
		} else {
			exp.EmploymentType = mapped
		}
		if mapped, ok := types.MapToLocationType(string(exp.LocationType)); !ok {
			log.Printf("[tailor] invalid location_type %q on experience %q, defaulting to %s",
				exp.LocationType, exp.Title, mapped)
			exp.LocationType = mapped
		} else {
			exp.LocationType = mapped
		}
	}

	for i := range doc.Skills {
		skill := &doc.Skills[i]
		if mapped, ok := types.MapToSkillCategory(string(skill.Category)); !ok {
			log.Printf("[tailor] invalid skill category %q on %q, defaulting to %s",
				skill.Category, skill.Name, mapped)
			skill.Category = mapped
		} else {
			skill.Category = mapped
		}
		if mapped, ok := types.MapToSkillProficiency(string(skill.Proficiency)); !ok {
			log.Printf("[tailor] invalid skill proficiency %q on %q, defaulting to %s",
				skill.Proficiency, skill.Name, mapped)
			skill.Proficiency = mapped
		} else {
			skill.Proficiency = mapped
		}
	}
}
