// Package tailoring implements the AI-assisted resume tailoring pipeline:
// schema extraction, prompt construction, schema-constrained generation,
// bounded retry on parse failure, and coercion into the resume data model.
package tailoring

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// promptInstructions is the fixed instruction block appended to every
// tailoring prompt. The hard constraints mirror what the pipeline enforces
// downstream: factual fields untouched, markup preserved, one JSON object.
const promptInstructions = `APPROACH:
1. Extract the key skills, technologies, and qualifications from the job description.
2. Select the experiences, skills, and projects from the master resume most relevant to this job.
3. Tailor the selected content: reword descriptions to emphasize relevance, mirror the job posting's terminology, and lead with impact.
4. Emit the tailored resume as JSON matching the schema above.

HARD CONSTRAINTS:
- Company names, job titles, and employment dates MUST NOT be altered. All other content may be reworded.
- Description fields may contain HTML markup. Preserve the markup structure; only the text content may be edited.
- Each experience entry should carry 3-6 bullet points.
- Target an overall length equivalent to 1-2 pages.
- The output MUST be a single syntactically valid JSON object. No markdown fences, no commentary.`

// BuildPrompt assembles the tailoring prompt from its four sections: the
// generation schema, the job title, the job description, and the master
// resume serialized as indented JSON. Pure function of its inputs.
func BuildPrompt(jobTitle, jobDescription string, master *types.ResumeDocument, schemaText string) (string, error) {
	resumeJSON, err := json.MarshalIndent(master, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize master resume: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("You are an expert resume writer. Tailor the master resume below to the target job.\n\n")

	sb.WriteString("OUTPUT SCHEMA:\n")
	sb.WriteString(schemaText)
	sb.WriteString("\n\n")

	sb.WriteString("JOB TITLE:\n")
	sb.WriteString(jobTitle)
	sb.WriteString("\n\n")

	sb.WriteString("JOB DESCRIPTION:\n")
	sb.WriteString(jobDescription)
	sb.WriteString("\n\n")

	sb.WriteString("MASTER RESUME:\n")
	sb.Write(resumeJSON)
	sb.WriteString("\n\n")

	sb.WriteString(promptInstructions)

	return sb.String(), nil
}
