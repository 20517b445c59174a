package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"smartresume/resume/model"
)

// MimeType is the content type of a DOCX package.
const MimeType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

const (
	wmlNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	relNamespace = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// zipEpoch pins part timestamps so identical input renders identical bytes.
var zipEpoch = time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`</Types>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`</Relationships>`

// RenderResume lays out and encodes the resume into DOCX bytes.
func RenderResume(input model.ResumeInput, opts model.Options) ([]byte, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.New("full name is required")
	}
	var buf bytes.Buffer
	if err := Encode(&buf, Build(input), opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes doc as a DOCX package styled by opts.
func Encode(w io.Writer, doc model.ResumeDocument, opts model.Options) error {
	documentXML, err := renderDocumentXML(doc)
	if err != nil {
		return fmt.Errorf("render document.xml: %w", err)
	}
	stylesXML, err := renderStylesXML(PaletteFor(opts))
	if err != nil {
		return fmt.Errorf("render styles.xml: %w", err)
	}

	parts := []struct {
		name    string
		content []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(packageRelsXML)},
		{"word/_rels/document.xml.rels", []byte(documentRelsXML)},
		{"word/document.xml", documentXML},
		{"word/styles.xml", stylesXML},
	}

	writer := zip.NewWriter(w)
	for _, part := range parts {
		if err := writeZipFile(writer, part.name, part.content); err != nil {
			return fmt.Errorf("write %s: %w", part.name, err)
		}
	}
	return writer.Close()
}

type wDocument struct {
	XMLName xml.Name `xml:"w:document"`
	W       string   `xml:"xmlns:w,attr"`
	R       string   `xml:"xmlns:r,attr"`
	Body    wBody    `xml:"w:body"`
}

type wBody struct {
	Paragraphs []wParagraph `xml:"w:p"`
	SectPr     wSectPr      `xml:"w:sectPr"`
}

type wParagraph struct {
	Props *wParagraphProps `xml:"w:pPr,omitempty"`
	Runs  []wRun           `xml:"w:r"`
}

type wParagraphProps struct {
	Style   *wVal `xml:"w:pStyle,omitempty"`
	Justify *wVal `xml:"w:jc,omitempty"`
}

type wVal struct {
	Val string `xml:"w:val,attr"`
}

type wRun struct {
	Break *wEmpty `xml:"w:br,omitempty"`
	Text  wText   `xml:"w:t"`
}

type wEmpty struct{}

type wText struct {
	Space string `xml:"xml:space,attr,omitempty"`
	Value string `xml:",chardata"`
}

type wSectPr struct {
	PageSize   wPageSize   `xml:"w:pgSz"`
	PageMargin wPageMargin `xml:"w:pgMar"`
}

type wPageSize struct {
	W int `xml:"w:w,attr"`
	H int `xml:"w:h,attr"`
}

type wPageMargin struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
	Header int `xml:"w:header,attr"`
	Footer int `xml:"w:footer,attr"`
	Gutter int `xml:"w:gutter,attr"`
}

func renderDocumentXML(doc model.ResumeDocument) ([]byte, error) {
	body := wBody{
		Paragraphs: make([]wParagraph, 0, len(doc.Blocks)),
		SectPr: wSectPr{
			PageSize:   wPageSize{W: 12240, H: 15840},
			PageMargin: wPageMargin{Top: 1440, Right: 1440, Bottom: 1440, Left: 1440, Header: 720, Footer: 720},
		},
	}
	for _, block := range doc.Blocks {
		body.Paragraphs = append(body.Paragraphs, toParagraph(block))
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	encoder := xml.NewEncoder(&buf)
	if err := encoder.Encode(wDocument{W: wmlNamespace, R: relNamespace, Body: body}); err != nil {
		return nil, err
	}
	if err := encoder.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func toParagraph(block model.Block) wParagraph {
	var props wParagraphProps
	if block.Kind == model.BlockHeading {
		props.Style = &wVal{Val: headingStyleID(block.Level)}
	}
	if block.Align == model.AlignCenter {
		props.Justify = &wVal{Val: "center"}
	}

	p := wParagraph{Runs: textRuns(block.Text)}
	if props.Style != nil || props.Justify != nil {
		p.Props = &props
	}
	return p
}

func headingStyleID(level int) string {
	switch {
	case level <= 1:
		return "Heading1"
	case level == 2:
		return "Heading2"
	default:
		return "Heading3"
	}
}

// textRuns splits multi-line text into runs joined by line breaks.
func textRuns(text string) []wRun {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	runs := make([]wRun, 0, len(lines))
	for i, line := range lines {
		run := wRun{Text: wText{Space: "preserve", Value: line}}
		if i > 0 {
			run.Break = &wEmpty{}
		}
		runs = append(runs, run)
	}
	return runs
}

func writeZipFile(writer *zip.Writer, name string, content []byte) error {
	header := &zip.FileHeader{
		Name:     normalizeZipName(name),
		Method:   zip.Deflate,
		Modified: zipEpoch,
	}
	dst, err := writer.CreateHeader(header)
	if err != nil {
		return err
	}
	_, err = dst.Write(content)
	return err
}

func normalizeZipName(name string) string {
	return strings.ReplaceAll(name, "\\", "/")
}
