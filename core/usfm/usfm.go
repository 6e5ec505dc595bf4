// Package usfm exports richtext buffers produced by the note editor as USFM.
//
// Paragraphs become "\STYLE text" lines and formatted character runs become
// "\fmt text\fmt*". A note paragraph becomes a complete note:
//
//	\f + \fr 3.16 \fk keyword \ft Text.\f*
//
// When body text carries a "notecallN" run, the note whose caller run is
// "notebodyN" is placed there instead of on a line of its own.
package usfm

import (
	"bytes"
	"strings"

	"github.com/FocuswithJustin/JuniperNotes/core/note"
	"github.com/FocuswithJustin/JuniperNotes/core/richtext"
)

// NoteCallFormatPrefix marks the note anchor in body text.
const NoteCallFormatPrefix = "notecall"

// AutoCaller is the USFM caller written when a note has none of its own.
const AutoCaller = "+"

// noteStyles are the paragraph styles that hold note bodies.
var noteStyles = map[string]bool{
	"f":  true,
	"fe": true,
	"ef": true,
	"x":  true,
	"ex": true,
}

// IsNote reports whether p holds a note body: its first run carries a
// notebody format, it opens with a caller separator and a reference run, or
// its style is a note style.
func IsNote(p richtext.Block) bool {
	if _, ok := noteID(p); ok {
		return true
	}
	return hasNoteShape(p) || noteStyles[p.Style]
}

// hasNoteShape matches a note whose caller run is empty: an unformatted
// separator such as " + " directly followed by an fr run.
func hasNoteShape(p richtext.Block) bool {
	if len(p.Runs) < 2 || p.Runs[0].Format != "" || p.Runs[1].Format != note.ReferenceFormat {
		return false
	}
	sep := strings.TrimSpace(p.Runs[0].Text)
	return sep != "" && !strings.ContainsAny(sep, " \t")
}

// noteID returns the N of a leading "notebodyN" run.
func noteID(p richtext.Block) (string, bool) {
	if len(p.Runs) == 0 {
		return "", false
	}
	format := p.Runs[0].Format
	if !strings.HasPrefix(format, note.CallerFormatPrefix) {
		return "", false
	}
	return strings.TrimPrefix(format, note.CallerFormatPrefix), true
}

// NoteUSFM renders one note paragraph. The visible caller glyph is dropped;
// the unformatted text after it (" + ") supplies the USFM caller.
func NoteUSFM(p richtext.Block) string {
	style := p.Style
	if style == "" {
		style = "f"
	}

	runs := p.Runs
	if _, ok := noteID(p); ok {
		runs = runs[1:]
	}
	caller := AutoCaller
	if len(runs) > 0 && runs[0].Format == "" {
		if c := strings.TrimSpace(runs[0].Text); c != "" {
			caller = c
		}
		runs = runs[1:]
	}

	var sb strings.Builder
	sb.WriteString(`\` + style + " " + caller)
	for _, run := range runs {
		text := strings.TrimSpace(run.Text)
		if run.Format != "" {
			sb.WriteString(` \` + run.Format)
		}
		if text != "" {
			sb.WriteString(" " + text)
		}
	}
	sb.WriteString(`\` + style + `*`)
	return sb.String()
}

// FromBuffer renders the whole buffer as USFM, one line per paragraph.
func FromBuffer(b *richtext.Buffer) string {
	paragraphs := b.Paragraphs()

	notes := make(map[string]string)
	for _, p := range paragraphs {
		if id, ok := noteID(p); ok {
			notes[id] = NoteUSFM(p)
		}
	}

	placed := make(map[string]bool)
	var body []string
	for _, p := range paragraphs {
		if IsNote(p) {
			continue
		}
		body = append(body, paragraphUSFM(p, notes, placed))
	}

	var buf bytes.Buffer
	bodyIndex := 0
	for _, p := range paragraphs {
		if !IsNote(p) {
			buf.WriteString(body[bodyIndex])
			buf.WriteString("\n")
			bodyIndex++
			continue
		}
		if id, ok := noteID(p); ok && placed[id] {
			continue
		}
		buf.WriteString(NoteUSFM(p))
		buf.WriteString("\n")
	}
	return buf.String()
}

// paragraphUSFM renders a body paragraph, placing notes at their calls.
func paragraphUSFM(p richtext.Block, notes map[string]string, placed map[string]bool) string {
	style := p.Style
	if style == "" {
		style = richtext.DefaultParagraphStyle
	}

	var sb strings.Builder
	sb.WriteString(`\` + style)
	if len(p.Runs) == 0 {
		return sb.String()
	}
	sb.WriteString(" ")
	for _, run := range p.Runs {
		switch {
		case run.Format == "":
			sb.WriteString(run.Text)
		case strings.HasPrefix(run.Format, NoteCallFormatPrefix):
			id := strings.TrimPrefix(run.Format, NoteCallFormatPrefix)
			if n, ok := notes[id]; ok {
				sb.WriteString(n)
				placed[id] = true
			} else {
				sb.WriteString(run.Text)
			}
		default:
			sb.WriteString(`\` + run.Format + " " + run.Text + `\` + run.Format + `*`)
		}
	}
	return sb.String()
}
