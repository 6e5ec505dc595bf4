package richtext

var (
	_ Document         = (*Recorder)(nil)
	_ ParagraphBreaker = (*Recorder)(nil)
)

// Command is one positioned insert handed to a Document.
type Command struct {
	Offset int     `json:"offset"`
	Text   string  `json:"text"`
	Kind   RunKind `json:"kind"`
	Format string  `json:"format,omitempty"`
	Origin Origin  `json:"origin"`
}

// Run returns the command's text, kind and format.
func (c Command) Run() Run {
	return Run{Text: c.Text, Kind: c.Kind, Format: c.Format}
}

// Recorder forwards inserts to a Document and keeps the ones that succeeded,
// in order.
type Recorder struct {
	doc      Document
	commands []Command
}

// NewRecorder wraps doc.
func NewRecorder(doc Document) *Recorder {
	return &Recorder{doc: doc}
}

// Length returns the wrapped document's length.
func (r *Recorder) Length() int {
	return r.doc.Length()
}

// Insert forwards to the wrapped document and records the command on success.
func (r *Recorder) Insert(offset int, text string, kind RunKind, format string, origin Origin) error {
	if err := r.doc.Insert(offset, text, kind, format, origin); err != nil {
		return err
	}
	r.commands = append(r.commands, Command{Offset: offset, Text: text, Kind: kind, Format: format, Origin: origin})
	return nil
}

// InsertParagraphBreak forwards to the wrapped document's ParagraphBreaker
// when it has one and records the newline insert.
func (r *Recorder) InsertParagraphBreak(offset int, style string, origin Origin) (int, error) {
	next, err := BreakParagraph(r.doc, offset, style, origin)
	if err != nil {
		return next, err
	}
	r.commands = append(r.commands, Command{Offset: offset, Text: "\n", Kind: Paragraph, Format: style, Origin: origin})
	return next, nil
}

// Commands returns a copy of the recorded commands.
func (r *Recorder) Commands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Reset forgets the recorded commands.
func (r *Recorder) Reset() {
	r.commands = nil
}

// DeltaOp is one editor delta operation.
type DeltaOp struct {
	Retain     int               `json:"retain,omitempty"`
	Insert     string            `json:"insert,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// Delta is an ordered change to a document.
type Delta []DeltaOp

// Delta returns one change delta per recorded command: a retain up to the
// offset followed by the insert. Commands with empty text change nothing
// and are skipped.
func (r *Recorder) Delta() []Delta {
	var deltas []Delta
	for _, c := range r.commands {
		if c.Text == "" {
			continue
		}
		var d Delta
		if c.Offset > 0 {
			d = append(d, DeltaOp{Retain: c.Offset})
		}
		op := DeltaOp{Insert: c.Text}
		if c.Format != "" {
			op.Attributes = map[string]string{c.Kind.String(): c.Format}
		}
		deltas = append(deltas, append(d, op))
	}
	return deltas
}
