package richtext

// Document is an attributed-text buffer that accepts positioned inserts.
//
// Insert at an offset in [0, Length()] must grow the length by exactly the
// rune count of text. Failures are the implementation's own to define.
type Document interface {
	Length() int
	Insert(offset int, text string, kind RunKind, format string, origin Origin) error
}

// ParagraphBreaker is implemented by documents that can say where the
// character runs of a freshly broken paragraph begin.
type ParagraphBreaker interface {
	// InsertParagraphBreak inserts a newline styled with style at offset
	// and returns the offset at which the new paragraph's text goes.
	InsertParagraphBreak(offset int, style string, origin Origin) (int, error)
}

// BreakParagraph inserts a paragraph break at offset and returns the offset
// for the paragraph's character runs. Documents that do not implement
// ParagraphBreaker get a plain newline insert and the unchanged offset.
func BreakParagraph(doc Document, offset int, style string, origin Origin) (int, error) {
	if pb, ok := doc.(ParagraphBreaker); ok {
		return pb.InsertParagraphBreak(offset, style, origin)
	}
	if err := doc.Insert(offset, "\n", Paragraph, style, origin); err != nil {
		return offset, err
	}
	return offset, nil
}
