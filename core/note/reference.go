package note

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/JuniperNotes/core/errors"
)

// Reference is a chapter and verse, optionally qualified by a book.
type Reference struct {
	Book    string `json:"book,omitempty"`
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse"`
}

// String returns "chapter.verse", prefixed with "Book." when a book is set.
func (r Reference) String() string {
	if r.Book != "" {
		return r.Book + "." + FormatReference(r.Chapter, r.Verse)
	}
	return FormatReference(r.Chapter, r.Verse)
}

// FormatReference joins chapter and verse with a dot, without padding.
func FormatReference(chapter, verse int) string {
	return strconv.Itoa(chapter) + "." + strconv.Itoa(verse)
}

// referenceGrammar accepts "3.16", "3:16", "John.3.16" and "JHN 3:16".
//
//nolint:govet // participle grammar tags are not standard struct tags
type referenceGrammar struct {
	Book    string `( @Ident "."? )?`
	Chapter int    `@Int`
	Verse   int    `( "." | ":" ) @Int`
}

var referenceLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[A-Za-z]+`},
	{Name: "Punct", Pattern: `[.:]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var referenceParser = participle.MustBuild[referenceGrammar](
	participle.Lexer(referenceLexer),
	participle.Elide("Whitespace"),
)

// ParseReference parses a chapter:verse reference with an optional book.
func ParseReference(s string) (Reference, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Reference{}, errors.NewParse("reference", "", "empty reference")
	}

	parsed, err := referenceParser.ParseString("", s)
	if err != nil {
		return Reference{}, &errors.ParseError{Format: "reference", Input: s, Message: "invalid syntax", Err: err}
	}

	return Reference{
		Book:    parsed.Book,
		Chapter: parsed.Chapter,
		Verse:   parsed.Verse,
	}, nil
}
