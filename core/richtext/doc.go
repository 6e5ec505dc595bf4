// Package richtext provides the attributed-text document model that notes are
// inserted into.
//
// A document is an ordered sequence of runes. Every rune carries one format
// name. Ordinary runes carry a character-level format (empty for unformatted
// text); every newline carries the paragraph-level style of the paragraph it
// terminates. Text inserted just before a newline therefore lands in the
// paragraph that newline closes, which is how the web editor anchors a freshly
// inserted paragraph break.
//
// # Core Types
//
//   - Document: the contract consumed by note insertion (Length and Insert)
//   - ParagraphBreaker: optional contract returning where a new paragraph's
//     character runs begin
//   - Buffer: in-memory Document implementation
//   - Recorder: Document wrapper that records every insert command
//
// # Views
//
// A Buffer can be viewed as coalesced runs, as paragraphs, as the parallel
// text/format lists the editor save path works with (Flatten), or as the
// editor's class-based markup (Markup). Checksum identifies content for
// change detection.
//
// Offsets and lengths count runes. A Buffer is not safe for concurrent use.
//
// # Example
//
//	buf := richtext.NewBuffer()
//	_ = buf.Insert(0, "\n", richtext.Paragraph, "p", richtext.OriginUser)
//	_ = buf.Insert(0, "In the beginning", richtext.Character, "", richtext.OriginUser)
//	fmt.Println(buf.Length()) // 17
package richtext
