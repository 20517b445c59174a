package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartresume/resume/model"
)

func sampleInput() model.ResumeInput {
	return model.ResumeInput{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "+1-555-0100",
		LinkedIn: "https://www.linkedin.com/in/janedoe",
		Summary:  "Engineer who ships.",
		Experience: []model.Experience{
			{JobTitle: "Engineer", Company: "Acme", Duration: "2020-2022", Description: "Built things"},
		},
		Skills:     "Go, SQL",
		Degree:     "BSc",
		University: "State University",
		GradYear:   "2019",
	}
}

func TestBuildFixedOrder(t *testing.T) {
	doc := Build(sampleInput())

	want := []model.Block{
		{Kind: model.BlockHeading, Level: 1, Text: "Jane Doe"},
		{Kind: model.BlockParagraph, Text: "jane@example.com | +1-555-0100 | https://www.linkedin.com/in/janedoe", Align: model.AlignCenter},
		{Kind: model.BlockHeading, Level: 2, Text: HeadingSummary},
		{Kind: model.BlockParagraph, Text: "Engineer who ships."},
		{Kind: model.BlockHeading, Level: 2, Text: HeadingExperience},
		{Kind: model.BlockHeading, Level: 3, Text: "Engineer at Acme (2020-2022)"},
		{Kind: model.BlockParagraph, Text: "Built things"},
		{Kind: model.BlockHeading, Level: 2, Text: HeadingSkills},
		{Kind: model.BlockParagraph, Text: "Go, SQL"},
		{Kind: model.BlockHeading, Level: 2, Text: HeadingEducation},
		{Kind: model.BlockParagraph, Text: "BSc, State University (2019)"},
	}
	assert.Equal(t, want, doc.Blocks)
	assert.NotContains(t, doc.Headings(2), HeadingCertifications)
	assert.Equal(t, []string{"Engineer at Acme (2020-2022)"}, doc.Headings(3))
}

func TestBuildExperienceInInputOrder(t *testing.T) {
	input := sampleInput()
	input.Experience = []model.Experience{
		{JobTitle: "Lead", Company: "Zeta", Duration: "2023-", Description: "Leads"},
		{JobTitle: "Engineer", Company: "Acme", Duration: "2020-2022", Description: "Builds"},
		{JobTitle: "Intern", Company: "Beta", Duration: "2019", Description: "Learns"},
	}

	doc := Build(input)

	assert.Equal(t, []string{
		"Lead at Zeta (2023-)",
		"Engineer at Acme (2020-2022)",
		"Intern at Beta (2019)",
	}, doc.Headings(3))
}

func TestBuildOptionalSections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*model.ResumeInput)
		present []string
		absent  []string
	}{
		{
			name:   "all empty",
			mutate: func(*model.ResumeInput) {},
			absent: []string{HeadingCertifications, HeadingLanguages, HeadingProjects},
		},
		{
			name:    "certifications only",
			mutate:  func(r *model.ResumeInput) { r.Certifications = "CKA" },
			present: []string{HeadingCertifications},
			absent:  []string{HeadingLanguages, HeadingProjects},
		},
		{
			name: "all present",
			mutate: func(r *model.ResumeInput) {
				r.Certifications = "CKA"
				r.Languages = "English, Spanish"
				r.Projects = "Compiler"
			},
			present: []string{HeadingCertifications, HeadingLanguages, HeadingProjects},
		},
		{
			name:    "whitespace only is kept",
			mutate:  func(r *model.ResumeInput) { r.Projects = "  \n " },
			present: []string{HeadingProjects},
			absent:  []string{HeadingCertifications, HeadingLanguages},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			input := sampleInput()
			tt.mutate(&input)
			headings := Build(input).Headings(2)
			for _, h := range tt.present {
				assert.Contains(t, headings, h)
			}
			for _, h := range tt.absent {
				assert.NotContains(t, headings, h)
			}
		})
	}
}

func TestBuildOptionalSectionsVerbatimAndOrdered(t *testing.T) {
	input := sampleInput()
	input.Certifications = "CKA\nAWS SA"
	input.Languages = "English"
	input.Projects = "Compiler"

	blocks := Build(input).Blocks
	require.GreaterOrEqual(t, len(blocks), 6)
	tail := blocks[len(blocks)-6:]

	assert.Equal(t, HeadingCertifications, tail[0].Text)
	assert.Equal(t, "CKA\nAWS SA", tail[1].Text)
	assert.Equal(t, HeadingLanguages, tail[2].Text)
	assert.Equal(t, "English", tail[3].Text)
	assert.Equal(t, HeadingProjects, tail[4].Text)
	assert.Equal(t, "Compiler", tail[5].Text)
}
