// Package note inserts footnote and cross-reference entries into a
// richtext.Document.
//
// A note entry is one new paragraph, styled with the caller-supplied note
// style, holding seven character runs:
//
//	caller  " + "  chapter.verse  " "  "keyword"  " "  "Text."
//	notebodyN  -   fr             fk   fk         ft   ft
//
// The paragraph break is inserted first at the document's end. Every run
// after it is inserted at a running offset that advances by the measured
// rune length of the run just inserted.
package note

import (
	"strconv"

	"github.com/FocuswithJustin/JuniperNotes/core/richtext"
)

// Character formats of the note runs.
const (
	CallerFormatPrefix = "notebody"
	ReferenceFormat    = "fr"
	KeywordFormat      = "fk"
	TextFormat         = "ft"
)

// Fixed run texts.
const (
	Separator          = " + "
	PlaceholderKeyword = "keyword"
	PlaceholderText    = "Text."
)

// Spec describes one note to insert.
type Spec struct {
	// Style is the paragraph style of the note paragraph, e.g. "f" or "x".
	Style string `json:"style"`
	// Caller is the visible note marker, usually one glyph.
	Caller string `json:"caller"`
	// NoteID numbers the note; it only feeds the caller's format name.
	NoteID  int `json:"note_id"`
	Chapter int `json:"chapter"`
	Verse   int `json:"verse"`
}

// CallerFormat returns the caller run's format, "notebody" plus NoteID.
func (s Spec) CallerFormat() string {
	return CallerFormatPrefix + strconv.Itoa(s.NoteID)
}

// Reference returns the reference run's text.
func (s Spec) Reference() string {
	return FormatReference(s.Chapter, s.Verse)
}

// Runs returns the note's character runs in insertion order.
func (s Spec) Runs() []richtext.Run {
	return []richtext.Run{
		{Text: s.Caller, Kind: richtext.Character, Format: s.CallerFormat()},
		{Text: Separator, Kind: richtext.Character},
		{Text: s.Reference(), Kind: richtext.Character, Format: ReferenceFormat},
		{Text: " ", Kind: richtext.Character, Format: KeywordFormat},
		{Text: PlaceholderKeyword, Kind: richtext.Character, Format: KeywordFormat},
		{Text: " ", Kind: richtext.Character, Format: TextFormat},
		{Text: PlaceholderText, Kind: richtext.Character, Format: TextFormat},
	}
}

// Len returns how many runes inserting the note adds to a document,
// paragraph break included.
func (s Spec) Len() int {
	n := 1
	for _, run := range s.Runs() {
		n += run.Len()
	}
	return n
}

// Insert appends the note described by spec to doc and returns the offset
// just past the note's text. All inserts are tagged richtext.OriginUser.
//
// Insert does not validate spec. An error from doc is returned unchanged
// together with the offset of the failed insert; runs already inserted are
// left in place.
func Insert(doc richtext.Document, spec Spec) (int, error) {
	pos, err := richtext.BreakParagraph(doc, doc.Length(), spec.Style, richtext.OriginUser)
	if err != nil {
		return pos, err
	}
	for _, run := range spec.Runs() {
		if err := doc.Insert(pos, run.Text, run.Kind, run.Format, richtext.OriginUser); err != nil {
			return pos, err
		}
		pos += run.Len()
	}
	return pos, nil
}

// InsertNote is Insert with the note's fields passed one by one.
func InsertNote(doc richtext.Document, style, caller string, noteID, chapter, verse int) (int, error) {
	return Insert(doc, Spec{
		Style:   style,
		Caller:  caller,
		NoteID:  noteID,
		Chapter: chapter,
		Verse:   verse,
	})
}
