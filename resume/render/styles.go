package render

import (
	"bytes"
	"text/template"

	"smartresume/resume/model"
)

// RunStyle captures the inline run formatting applied to a paragraph style.
type RunStyle struct {
	Bold   bool
	Italic bool
	Size   int
	Color  string
}

// Palette is the resolved styling for one theme and base font size.
type Palette struct {
	Font           string
	Body           RunStyle
	Name           RunStyle
	SectionHeading RunStyle
	RoleLine       RunStyle
}

const (
	HeadingColor = "1F2937"
	NameColor    = "111111"
)

type themeSpec struct {
	font         string
	nameColor    string
	headingColor string
	headingBold  bool
	roleItalic   bool
}

var themes = map[model.Theme]themeSpec{
	model.ThemeClassic: {
		font:         "Times New Roman",
		nameColor:    "000000",
		headingColor: "000000",
		headingBold:  true,
	},
	model.ThemeModern: {
		font:         "Calibri",
		nameColor:    NameColor,
		headingColor: HeadingColor,
		headingBold:  true,
	},
	model.ThemeMinimalist: {
		font:         "Arial",
		nameColor:    "111827",
		headingColor: "4B5563",
		roleItalic:   true,
	},
}

// PaletteFor resolves a theme and font size (points) into run styles. Sizes
// are in half-points as OOXML expects.
func PaletteFor(opts model.Options) Palette {
	opts = opts.WithDefaults(model.Options{})
	spec, ok := themes[opts.Theme]
	if !ok {
		spec = themes[model.ThemeClassic]
	}
	body := opts.FontSize * 2
	return Palette{
		Font: spec.font,
		Body: RunStyle{Size: body},
		Name: RunStyle{
			Bold:  true,
			Size:  body + 12,
			Color: spec.nameColor,
		},
		SectionHeading: RunStyle{
			Bold:  spec.headingBold,
			Size:  body + 4,
			Color: spec.headingColor,
		},
		RoleLine: RunStyle{
			Bold:   true,
			Italic: spec.roleItalic,
			Size:   body,
		},
	}
}

var stylesTemplate = template.Must(template.New("styles").Funcs(template.FuncMap{
	"heading": func(id, name string, style RunStyle, before int) headingStyle {
		return headingStyle{ID: id, Name: name, Style: style, Before: before}
	},
}).Parse(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
	`<w:docDefaults><w:rPrDefault><w:rPr><w:rFonts w:ascii="{{.Font}}" w:hAnsi="{{.Font}}" w:cs="{{.Font}}"/><w:sz w:val="{{.Body.Size}}"/><w:szCs w:val="{{.Body.Size}}"/></w:rPr></w:rPrDefault>` +
	`<w:pPrDefault><w:pPr><w:spacing w:after="120" w:line="264" w:lineRule="auto"/></w:pPr></w:pPrDefault></w:docDefaults>` +
	`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:qFormat/></w:style>` +
	`{{template "heading" (heading "Heading1" "heading 1" .Name 240)}}` +
	`{{template "heading" (heading "Heading2" "heading 2" .SectionHeading 200)}}` +
	`{{template "heading" (heading "Heading3" "heading 3" .RoleLine 120)}}` +
	`</w:styles>` +
	`{{define "heading"}}<w:style w:type="paragraph" w:styleId="{{.ID}}"><w:name w:val="{{.Name}}"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:qFormat/>` +
	`<w:pPr><w:keepNext/><w:spacing w:before="{{.Before}}" w:after="60"/></w:pPr>` +
	`<w:rPr>{{if .Style.Bold}}<w:b/><w:bCs/>{{end}}{{if .Style.Italic}}<w:i/><w:iCs/>{{end}}{{if .Style.Color}}<w:color w:val="{{.Style.Color}}"/>{{end}}<w:sz w:val="{{.Style.Size}}"/><w:szCs w:val="{{.Style.Size}}"/></w:rPr></w:style>{{end}}`))

type headingStyle struct {
	ID     string
	Name   string
	Style  RunStyle
	Before int
}

func renderStylesXML(p Palette) ([]byte, error) {
	var buf bytes.Buffer
	if err := stylesTemplate.Execute(&buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
