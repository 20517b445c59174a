package llm

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"smartresume/resume/model"
)

// ResumePromptVersion identifies the embedded resume prompt template.
const ResumePromptVersion = "resume_gen_v1"

var (
	//go:embed prompts/resume_gen_v1.txt
	resumeGenPromptV1 string

	resumeGenTemplate = template.Must(template.New(ResumePromptVersion).Option("missingkey=error").Parse(resumeGenPromptV1))
)

type resumePromptData struct {
	model.ResumeInput
	Experience string
}

// BuildResumePrompt renders the resume generation prompt. Every field is
// embedded verbatim; the experience list is embedded as its JSON encoding.
func BuildResumePrompt(input model.ResumeInput) (string, error) {
	experience := input.Experience
	if experience == nil {
		experience = []model.Experience{}
	}
	var rawExperience bytes.Buffer
	encoder := json.NewEncoder(&rawExperience)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(experience); err != nil {
		return "", fmt.Errorf("encode experience: %w", err)
	}

	var buf bytes.Buffer
	data := resumePromptData{
		ResumeInput: input,
		Experience:  strings.TrimSpace(rawExperience.String()),
	}
	if err := resumeGenTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return buf.String(), nil
}
