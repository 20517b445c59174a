package model

// BlockKind distinguishes headings from body paragraphs.
type BlockKind int

const (
	BlockHeading BlockKind = iota
	BlockParagraph
)

// Alignment of a block within the page.
type Alignment string

const (
	AlignLeft   Alignment = ""
	AlignCenter Alignment = "center"
)

// Block is one heading or paragraph of a ResumeDocument.
type Block struct {
	Kind  BlockKind
	Level int
	Text  string
	Align Alignment
}

// ResumeDocument is the ordered content of the generated word document.
type ResumeDocument struct {
	Blocks []Block
}

// AddHeading appends a heading at the given level.
func (d *ResumeDocument) AddHeading(text string, level int) {
	d.Blocks = append(d.Blocks, Block{Kind: BlockHeading, Level: level, Text: text})
}

// AddParagraph appends a body paragraph.
func (d *ResumeDocument) AddParagraph(text string, align Alignment) {
	d.Blocks = append(d.Blocks, Block{Kind: BlockParagraph, Text: text, Align: align})
}

// Headings returns the text of every heading at level.
func (d ResumeDocument) Headings(level int) []string {
	var out []string
	for _, b := range d.Blocks {
		if b.Kind == BlockHeading && b.Level == level {
			out = append(out, b.Text)
		}
	}
	return out
}
