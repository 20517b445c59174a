package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"smartresume/resume/model"
	"smartresume/resume/render"
)

func main() {
	inputPath := flag.String("input", "", "Path to a resume input JSON file (defaults to a built-in sample)")
	outPath := flag.String("out", "./out/Generated_Resume.docx", "output path for generated DOCX")
	theme := flag.String("theme", string(model.ThemeClassic), "Theme: Classic, Modern or Minimalist")
	fontSize := flag.Int("font-size", model.DefaultFontSize, "Base font size in points (10-20)")
	flag.Parse()

	input := sampleInput()
	if strings.TrimSpace(*inputPath) != "" {
		raw, err := os.ReadFile(*inputPath)
		if err != nil {
			exitErr(fmt.Sprintf("read input: %v", err))
		}
		input = model.ResumeInput{}
		if err := json.Unmarshal(raw, &input); err != nil {
			exitErr(fmt.Sprintf("parse input: %v", err))
		}
	}

	t, ok := model.ParseTheme(*theme)
	if !ok {
		exitErr(fmt.Sprintf("unsupported theme: %s", *theme))
	}
	opts := model.Options{Theme: t, FontSize: *fontSize}
	if err := opts.Validate(); err != nil {
		exitErr(err.Error())
	}

	docxBytes, err := render.RenderResume(input, opts)
	if err != nil {
		exitErr(fmt.Sprintf("render failed: %v", err))
	}

	if err := writeOutput(*outPath, docxBytes); err != nil {
		exitErr(fmt.Sprintf("write failed: %v", err))
	}

	if err := validateRenderedDocx(*outPath, input); err != nil {
		exitErr(fmt.Sprintf("render validation failed: %v", err))
	}

	fmt.Printf("OK: wrote %s\n", *outPath)
}

func writeOutput(outPath string, docxBytes []byte) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outPath, docxBytes, 0o644)
}

// validateRenderedDocx reads the package back and checks the title and one
// role line per experience entry.
func validateRenderedDocx(path string, input model.ResumeInput) error {
	docxBytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	paragraphs, err := render.ReadParagraphs(docxBytes)
	if err != nil {
		return err
	}
	if len(paragraphs) == 0 {
		return fmt.Errorf("document has no paragraphs")
	}
	if paragraphs[0].Style != "Heading1" || paragraphs[0].Text != input.Name {
		return fmt.Errorf("unexpected title paragraph: %+v", paragraphs[0])
	}

	var roles []string
	for _, p := range paragraphs {
		if p.Style == "Heading3" {
			roles = append(roles, p.Text)
		}
	}
	if len(roles) != len(input.Experience) {
		return fmt.Errorf("expected %d experience headings, found %d", len(input.Experience), len(roles))
	}
	for i, exp := range input.Experience {
		if roles[i] != exp.Heading() {
			return fmt.Errorf("experience %d: expected %q, found %q", i+1, exp.Heading(), roles[i])
		}
	}
	return nil
}

func sampleInput() model.ResumeInput {
	return model.ResumeInput{
		Name:     "Jordan Lee",
		Email:    "jordan.lee@example.com",
		Phone:    "+1-555-0102",
		LinkedIn: "https://www.linkedin.com/in/jordanlee",
		Summary:  "Backend engineer with 8+ years of experience building resilient APIs and data services.",
		Experience: []model.Experience{
			{
				JobTitle:    "Senior Backend Engineer",
				Company:     "Northwind",
				Duration:    "2021-Present",
				Description: "Led platform modernization spanning cloud migration and observability adoption.",
			},
			{
				JobTitle:    "Software Engineer",
				Company:     "Contoso",
				Duration:    "2016-2021",
				Description: "Built billing services in Go and PostgreSQL.\nOwned on-call for the payments stack.",
			},
		},
		Skills:         "Go, PostgreSQL, AWS, Kubernetes",
		Degree:         "BSc Computer Science",
		University:     "University of Texas",
		GradYear:       "2016",
		Certifications: "AWS Certified Solutions Architect",
		Languages:      "English, Korean",
		Projects:       "Open-source rate limiter used by 200+ services",
	}
}

func exitErr(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
