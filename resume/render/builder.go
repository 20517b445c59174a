package render

import "smartresume/resume/model"

// Section headings in document order.
const (
	HeadingSummary        = "Professional Summary"
	HeadingExperience     = "Work Experience"
	HeadingSkills         = "Skills"
	HeadingEducation      = "Education"
	HeadingCertifications = "Certifications"
	HeadingLanguages      = "Languages Spoken"
	HeadingProjects       = "Key Projects"
)

// Build lays out the resume document from the structured fields. The order is
// fixed; the optional trailing sections appear only when their field is set.
func Build(input model.ResumeInput) model.ResumeDocument {
	var doc model.ResumeDocument

	doc.AddHeading(input.Name, 1)
	doc.AddParagraph(input.ContactLine(), model.AlignCenter)

	doc.AddHeading(HeadingSummary, 2)
	doc.AddParagraph(input.Summary, model.AlignLeft)

	doc.AddHeading(HeadingExperience, 2)
	for _, exp := range input.Experience {
		doc.AddHeading(exp.Heading(), 3)
		doc.AddParagraph(exp.Description, model.AlignLeft)
	}

	doc.AddHeading(HeadingSkills, 2)
	doc.AddParagraph(input.Skills, model.AlignLeft)

	doc.AddHeading(HeadingEducation, 2)
	doc.AddParagraph(input.EducationLine(), model.AlignLeft)

	optional := []struct {
		heading string
		value   string
	}{
		{HeadingCertifications, input.Certifications},
		{HeadingLanguages, input.Languages},
		{HeadingProjects, input.Projects},
	}
	for _, section := range optional {
		if section.value == "" {
			continue
		}
		doc.AddHeading(section.heading, 2)
		doc.AddParagraph(section.value, model.AlignLeft)
	}

	return doc
}
