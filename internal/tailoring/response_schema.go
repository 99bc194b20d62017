package tailoring

import "github.com/google/generative-ai-go/genai"

// responseSchema returns the structured-output schema handed to the
// generation service. Keeping the service contractually bound to this shape
// makes free-text parse failures rare; the retry controller covers the rest.
func responseSchema() *genai.Schema {
	dateField := &genai.Schema{Type: genai.TypeString}
	nullableDate := &genai.Schema{Type: genai.TypeString, Nullable: true}

	return &genai.Schema{
		Type:     genai.TypeObject,
		Required: []string{"contact"},
		Properties: map[string]*genai.Schema{
			"objective": {Type: genai.TypeString},
			"contact": {
				Type:     genai.TypeObject,
				Required: []string{"full_name", "email"},
				Properties: map[string]*genai.Schema{
					"full_name": {Type: genai.TypeString},
					"email":     {Type: genai.TypeString},
					"phone":     {Type: genai.TypeString},
					"address":   {Type: genai.TypeString},
					"city":      {Type: genai.TypeString},
					"country":   {Type: genai.TypeString},
					"linkedin":  {Type: genai.TypeString},
					"github":    {Type: genai.TypeString},
					"portfolio": {Type: genai.TypeString},
				},
			},
			"experiences": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type:     genai.TypeObject,
					Required: []string{"title", "company", "start_date"},
					Properties: map[string]*genai.Schema{
						"title":           {Type: genai.TypeString},
						"employment_type": {Type: genai.TypeString},
						"location_type":   {Type: genai.TypeString},
						"company":         {Type: genai.TypeString},
						"location":        {Type: genai.TypeString},
						"start_date":      dateField,
						"end_date":        nullableDate,
						"description":     {Type: genai.TypeString},
					},
				},
			},
			"educations": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type:     genai.TypeObject,
					Required: []string{"school"},
					Properties: map[string]*genai.Schema{
						"school":         {Type: genai.TypeString},
						"degree":         {Type: genai.TypeString},
						"field_of_study": {Type: genai.TypeString},
						"start_date":     dateField,
						"end_date":       nullableDate,
						"gpa":            {Type: genai.TypeNumber, Nullable: true},
						"gpa_max":        {Type: genai.TypeNumber, Nullable: true},
						"location":       {Type: genai.TypeString},
						"description":    {Type: genai.TypeString},
					},
				},
			},
			"skills": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type:     genai.TypeObject,
					Required: []string{"name"},
					Properties: map[string]*genai.Schema{
						"name":        {Type: genai.TypeString},
						"category":    {Type: genai.TypeString},
						"proficiency": {Type: genai.TypeString},
					},
				},
			},
			"certifications": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type:     genai.TypeObject,
					Required: []string{"name", "issue_date"},
					Properties: map[string]*genai.Schema{
						"name":          {Type: genai.TypeString},
						"issuer":        {Type: genai.TypeString},
						"issue_date":    dateField,
						"expiry_date":   nullableDate,
						"credential_id": {Type: genai.TypeString},
					},
				},
			},
			"awards": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type:     genai.TypeObject,
					Required: []string{"title"},
					Properties: map[string]*genai.Schema{
						"title":       {Type: genai.TypeString},
						"issuer":      {Type: genai.TypeString},
						"date":        nullableDate,
						"description": {Type: genai.TypeString},
					},
				},
			},
			"projects": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type:     genai.TypeObject,
					Required: []string{"title"},
					Properties: map[string]*genai.Schema{
						"title":       {Type: genai.TypeString},
						"start_date":  dateField,
						"end_date":    nullableDate,
						"description": {Type: genai.TypeString},
					},
				},
			},
		},
	}
}
