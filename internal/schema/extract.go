// Package schema extracts the generation-relevant subset of the persisted
// data model declarations for embedding into LLM prompts.
package schema

import (
	_ "embed"
	"log"
	"strings"
)

//go:embed model.prisma
var modelSchema string

// Decl identifies a top-level declaration in the model schema, e.g.
// {Kind: "model", Name: "Experience"} or {Kind: "enum", Name: "LocationType"}.
type Decl struct {
	Kind string
	Name string
}

// minimalRootDecl is a hand-authored root declaration describing only the
// fields the generation service should produce. The persisted Resume model
// carries bookkeeping fields (userId, isMaster, timestamps) that would only
// confuse the generator.
const minimalRootDecl = `model Resume {
  objective      String?
  contact        Contact
  experiences    Experience[]
  educations     Education[]
  skills         Skill[]
  certifications Certification[]
  awards         Award[]
  projects       Project[]
}`

// tailoringDecls are the declarations embedded into the tailoring prompt.
var tailoringDecls = []Decl{
	{Kind: "model", Name: "Contact"},
	{Kind: "model", Name: "Experience"},
	{Kind: "model", Name: "Education"},
	{Kind: "model", Name: "Skill"},
	{Kind: "model", Name: "Certification"},
	{Kind: "model", Name: "Award"},
	{Kind: "model", Name: "Project"},
	{Kind: "enum", Name: "EmploymentType"},
	{Kind: "enum", Name: "LocationType"},
	{Kind: "enum", Name: "SkillCategory"},
	{Kind: "enum", Name: "SkillProficiency"},
}

// ExtractRelevantSchema returns the requested top-level declarations from
// fullSchemaText, concatenated in request order and separated by blank
// lines. Each declaration is located by its `kind Name {` header and cut at
// the matching closing brace. Declarations that cannot be found are skipped
// with a logged warning; the result is deterministic for fixed inputs.
func ExtractRelevantSchema(fullSchemaText string, wanted []Decl) string {
	var blocks []string
	for _, decl := range wanted {
		block, ok := extractDecl(fullSchemaText, decl)
		if !ok {
			log.Printf("[schema] declaration not found, skipping: %s %s", decl.Kind, decl.Name)
			continue
		}
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n\n")
}

// TailoringSchema returns the minimal self-consistent schema text for the
// tailoring prompt: the hand-authored root declaration followed by the
// extracted child declarations.
func TailoringSchema() string {
	extracted := ExtractRelevantSchema(modelSchema, tailoringDecls)
	if extracted == "" {
		return minimalRootDecl
	}
	return minimalRootDecl + "\n\n" + extracted
}

// extractDecl finds the first top-level `kind Name { ... }` block and
// returns it with balanced braces.
func extractDecl(text string, decl Decl) (string, bool) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0] != decl.Kind {
			continue
		}
		// Header forms: `kind Name {` or `kind Name{`.
		name := strings.TrimSuffix(fields[1], "{")
		if name != decl.Name {
			continue
		}
		if !strings.Contains(line, "{") {
			continue
		}

		depth := 0
		var block []string
		for j := i; j < len(lines); j++ {
			block = append(block, lines[j])
			depth += strings.Count(lines[j], "{") - strings.Count(lines[j], "}")
			if depth == 0 {
				return strings.Join(block, "\n"), true
			}
		}
		// Unbalanced braces: treat as not found.
		return "", false
	}
	return "", false
}
