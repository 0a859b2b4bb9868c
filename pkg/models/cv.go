package models

// StructuredCV is the open-ended mapping produced by the completion service.
// Keys are section names chosen by the model; values are strings, numbers,
// booleans, nested mappings or arrays thereof. No schema is enforced and the
// decoded value is returned to the caller unchanged.
type StructuredCV = map[string]any

// DemoCV returns the fixed example structure served when no completion-service
// credential is configured. The literal content is part of the API contract
// for demo mode and must not be edited casually.
func DemoCV() StructuredCV {
	return StructuredCV{
		"name":    "John Doe",
		"summary": "Experienced software engineer with 5+ years in web development",
		"contact": map[string]any{
			"email":    "john.doe@example.com",
			"phone":    "+1234567890",
			"linkedin": "linkedin.com/in/johndoe",
			"github":   "github.com/johndoe",
			"website":  "johndoe.com",
		},
		"education": []any{
			map[string]any{
				"institution":    "University of Example",
				"degree":         "Bachelor of Science",
				"field_of_study": "Computer Science",
				"start_date":     "2015",
				"end_date":       "2019",
			},
		},
		"experience": []any{
			map[string]any{
				"company":     "Tech Company Inc.",
				"position":    "Senior Software Engineer",
				"start_date":  "2020",
				"end_date":    "Present",
				"description": "Developed and maintained web applications using React and Node.js",
			},
		},
		"skills": []any{
			map[string]any{"name": "JavaScript", "level": "Expert"},
			map[string]any{"name": "Python", "level": "Intermediate"},
			map[string]any{"name": "React", "level": "Advanced"},
		},
		"languages":      []any{"English (Native)", "Spanish (Intermediate)"},
		"certifications": []any{"AWS Certified Developer", "Scrum Master"},
	}
}
