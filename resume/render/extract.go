package render

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// Paragraph is a read-back paragraph of a DOCX body.
type Paragraph struct {
	Style string
	Text  string
}

// ReadParagraphs opens a DOCX package and returns its body paragraphs with
// their paragraph style ids.
func ReadParagraphs(docxBytes []byte) ([]Paragraph, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(docxBytes), int64(len(docxBytes)))
	if err != nil {
		return nil, fmt.Errorf("read docx: %w", err)
	}
	defer doc.Close()

	return parseParagraphs(doc.Editable().GetContent())
}

// ExtractText returns the plain text of a DOCX package, one line per paragraph.
func ExtractText(docxBytes []byte) (string, error) {
	paragraphs, err := ReadParagraphs(docxBytes)
	if err != nil {
		return "", err
	}
	lines := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		lines = append(lines, p.Text)
	}
	return strings.Join(lines, "\n"), nil
}

func parseParagraphs(documentXML string) ([]Paragraph, error) {
	decoder := xml.NewDecoder(strings.NewReader(documentXML))
	var (
		out     []Paragraph
		current *Paragraph
		text    strings.Builder
		inText  bool
	)
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("document.xml parse failed: %w", err)
		}
		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Space != wmlNamespace {
				continue
			}
			switch t.Name.Local {
			case "p":
				current = &Paragraph{}
				text.Reset()
			case "pStyle":
				if current != nil {
					current.Style = attrValue(t.Attr, "val")
				}
			case "br":
				text.WriteByte('\n')
			case "t":
				inText = true
			}
		case xml.EndElement:
			if t.Name.Space != wmlNamespace {
				continue
			}
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if current != nil {
					current.Text = text.String()
					out = append(out, *current)
					current = nil
				}
			}
		case xml.CharData:
			if inText {
				text.Write(t)
			}
		}
	}
	return out, nil
}

func attrValue(attrs []xml.Attr, local string) string {
	for _, attr := range attrs {
		if attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}
