package richtext

import (
	"slices"
	"strings"

	"github.com/FocuswithJustin/JuniperNotes/core/errors"
)

var (
	_ Document         = (*Buffer)(nil)
	_ ParagraphBreaker = (*Buffer)(nil)
)

// cell is one rune and its format. For a newline the format is the
// paragraph style; for anything else it is the character format.
type cell struct {
	r      rune
	format string
}

// Buffer is an in-memory attributed-text Document.
type Buffer struct {
	cells []cell
}

// Block is a newline-terminated stretch of the buffer: one paragraph.
type Block struct {
	// Style is the paragraph-level format carried by the terminating newline.
	// It is empty for a trailing paragraph without a newline.
	Style string `json:"style"`

	// Runs are the paragraph's character runs, coalesced by format.
	Runs []Run `json:"runs"`

	// Terminated is false only for trailing text after the last newline.
	Terminated bool `json:"terminated"`
}

// Text returns the paragraph's text without the terminating newline.
func (p Block) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// NewBuffer returns an empty buffer of length zero.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// NewBufferString returns a buffer seeded with unformatted text. Like the
// web editor's documents, non-empty seeded text always ends with a newline;
// one styled DefaultParagraphStyle is appended when missing.
func NewBufferString(text string) *Buffer {
	b := &Buffer{}
	if text == "" {
		return b
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	b.cells = make([]cell, 0, len(text))
	for _, r := range text {
		c := cell{r: r}
		if r == '\n' {
			c.format = DefaultParagraphStyle
		}
		b.cells = append(b.cells, c)
	}
	return b
}

// Length returns the number of runes in the buffer.
func (b *Buffer) Length() int {
	return len(b.cells)
}

// Insert places text at offset. Paragraph runs style every newline in text
// and leave other runes unformatted; Character runs format every rune, and a
// newline inside them closes a paragraph with DefaultParagraphStyle. The
// origin is accepted for the Document contract and otherwise ignored.
func (b *Buffer) Insert(offset int, text string, kind RunKind, format string, _ Origin) error {
	if offset < 0 || offset > len(b.cells) {
		return errors.NewRange("insert", offset, 0, len(b.cells))
	}
	if !kind.Valid() {
		return &errors.ValidationError{Field: "kind", Value: kind.String(), Message: "unknown run kind"}
	}
	if text == "" {
		return nil
	}

	ins := make([]cell, 0, len(text))
	for _, r := range text {
		c := cell{r: r}
		switch {
		case r == '\n' && kind == Paragraph:
			c.format = format
		case r == '\n':
			c.format = DefaultParagraphStyle
		case kind == Character:
			c.format = format
		}
		ins = append(ins, c)
	}
	b.cells = slices.Insert(b.cells, offset, ins...)
	return nil
}

// InsertParagraphBreak inserts a newline styled with style at offset. The
// newline terminates the new paragraph, so its character runs start at the
// same offset.
func (b *Buffer) InsertParagraphBreak(offset int, style string, origin Origin) (int, error) {
	if err := b.Insert(offset, "\n", Paragraph, style, origin); err != nil {
		return offset, err
	}
	return offset, nil
}

// Delete removes n runes starting at offset.
func (b *Buffer) Delete(offset, n int) error {
	if offset < 0 || n < 0 || offset+n > len(b.cells) {
		return errors.NewRange("delete", offset, n, len(b.cells))
	}
	b.cells = slices.Delete(b.cells, offset, offset+n)
	return nil
}

// Text returns the buffer's plain text, newlines included.
func (b *Buffer) Text() string {
	var sb strings.Builder
	sb.Grow(len(b.cells))
	for _, c := range b.cells {
		sb.WriteRune(c.r)
	}
	return sb.String()
}

// Runs returns the buffer as runs. Character runs are coalesced by format;
// each newline is its own Paragraph run carrying the paragraph style.
func (b *Buffer) Runs() []Run {
	var runs []Run
	var sb strings.Builder
	open := false
	var format string

	flush := func() {
		if open {
			runs = append(runs, Run{Text: sb.String(), Kind: Character, Format: format})
			sb.Reset()
			open = false
		}
	}

	for _, c := range b.cells {
		if c.r == '\n' {
			flush()
			runs = append(runs, Run{Text: "\n", Kind: Paragraph, Format: c.format})
			continue
		}
		if open && c.format != format {
			flush()
		}
		if !open {
			format = c.format
			open = true
		}
		sb.WriteRune(c.r)
	}
	flush()
	return runs
}

// Paragraphs splits the buffer at its newlines.
func (b *Buffer) Paragraphs() []Block {
	var paragraphs []Block
	var current Block
	pending := false

	for _, run := range b.Runs() {
		if run.Kind == Paragraph {
			current.Style = run.Format
			current.Terminated = true
			paragraphs = append(paragraphs, current)
			current = Block{}
			pending = false
			continue
		}
		current.Runs = append(current.Runs, run)
		pending = true
	}
	if pending {
		paragraphs = append(paragraphs, current)
	}
	return paragraphs
}

// Flatten returns the buffer as the parallel text and format lists used when
// saving editor content: each paragraph contributes "\n" with its style
// (DefaultParagraphStyle when unset), followed by its character runs with
// their formats.
func (b *Buffer) Flatten() (texts, formats []string) {
	for _, p := range b.Paragraphs() {
		style := p.Style
		if style == "" {
			style = DefaultParagraphStyle
		}
		texts = append(texts, "\n")
		formats = append(formats, style)
		for _, run := range p.Runs {
			texts = append(texts, run.Text)
			formats = append(formats, run.Format)
		}
	}
	return texts, formats
}
