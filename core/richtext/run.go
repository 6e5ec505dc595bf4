package richtext

import "unicode/utf8"

// RunKind tells whether an inserted run carries a paragraph-level or a
// character-level format.
type RunKind int

const (
	// Paragraph formats apply to the whole paragraph a newline terminates.
	Paragraph RunKind = iota + 1
	// Character formats apply to the inserted characters only.
	Character
)

// String returns the editor's name for the kind.
func (k RunKind) String() string {
	switch k {
	case Paragraph:
		return "paragraph"
	case Character:
		return "character"
	default:
		return "unknown"
	}
}

// Valid reports whether k is Paragraph or Character.
func (k RunKind) Valid() bool {
	return k == Paragraph || k == Character
}

// Origin tags who made an edit. Documents pass it through uninterpreted.
type Origin string

// Editor change sources.
const (
	OriginUser   Origin = "user"
	OriginAPI    Origin = "api"
	OriginSilent Origin = "silent"
)

// DefaultParagraphStyle is used for paragraphs that were never given a style.
const DefaultParagraphStyle = "p"

// Run is a contiguous span of text sharing one kind and format.
type Run struct {
	Text   string  `json:"text"`
	Kind   RunKind `json:"kind"`
	Format string  `json:"format,omitempty"`
}

// Len returns the run's length in runes.
func (r Run) Len() int {
	return utf8.RuneCountInString(r.Text)
}
