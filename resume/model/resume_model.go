package model

import "strings"

// ResumeInput is the structured form state collected from the user.
type ResumeInput struct {
	Name           string       `json:"name" validate:"required,max=200"`
	Email          string       `json:"email" validate:"omitempty,email"`
	Phone          string       `json:"phone" validate:"max=50"`
	LinkedIn       string       `json:"linkedin" validate:"max=300"`
	Summary        string       `json:"summary"`
	Experience     []Experience `json:"experience" validate:"min=1,max=10,dive"`
	Skills         string       `json:"skills"`
	Degree         string       `json:"degree"`
	University     string       `json:"university"`
	GradYear       string       `json:"grad_year" validate:"max=20"`
	Certifications string       `json:"certifications"`
	Languages      string       `json:"languages"`
	Projects       string       `json:"projects"`
}

// Experience is one work history entry.
type Experience struct {
	JobTitle    string `json:"job_title" validate:"max=200"`
	Company     string `json:"company" validate:"max=200"`
	Duration    string `json:"duration" validate:"max=100"`
	Description string `json:"description"`
}

// Clone returns a deep copy so later edits to the caller's value do not leak
// into an in-flight generation.
func (r ResumeInput) Clone() ResumeInput {
	out := r
	if r.Experience != nil {
		out.Experience = make([]Experience, len(r.Experience))
		copy(out.Experience, r.Experience)
	}
	return out
}

// ContactLine joins the contact fields the way they appear under the name.
func (r ResumeInput) ContactLine() string {
	return strings.Join([]string{r.Email, r.Phone, r.LinkedIn}, " | ")
}

// EducationLine renders the single education entry.
func (r ResumeInput) EducationLine() string {
	return r.Degree + ", " + r.University + " (" + r.GradYear + ")"
}

// Heading renders the subsection title for an experience entry.
func (e Experience) Heading() string {
	return e.JobTitle + " at " + e.Company + " (" + e.Duration + ")"
}
