package richtext

import (
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/FocuswithJustin/JuniperNotes/core/errors"
)

// Class prefixes the web editor puts in front of paragraph styles and
// character formats.
const (
	BlockClassPrefix  = "b-"
	InlineClassPrefix = "i-"
)

// Markup builds the editor's class-based markup for the buffer: one
// <p class="b-STYLE"> per paragraph holding plain text nodes for unformatted
// runs and <span class="i-FORMAT"> for formatted ones. The returned node is a
// document node whose children are the paragraphs.
func Markup(b *Buffer) *xmlquery.Node {
	root := &xmlquery.Node{Type: xmlquery.DocumentNode}
	for _, p := range b.Paragraphs() {
		style := p.Style
		if style == "" {
			style = DefaultParagraphStyle
		}
		pn := newElement("p", BlockClassPrefix+style)
		xmlquery.AddChild(root, pn)
		for _, run := range p.Runs {
			text := &xmlquery.Node{Type: xmlquery.TextNode, Data: run.Text}
			if run.Format == "" {
				xmlquery.AddChild(pn, text)
				continue
			}
			span := newElement("span", InlineClassPrefix+run.Format)
			xmlquery.AddChild(span, text)
			xmlquery.AddChild(pn, span)
		}
	}
	return root
}

// MarkupString serializes Markup(b). Text keeps its spacing exactly; note
// entries depend on the spaces around their markers.
func MarkupString(b *Buffer) string {
	return Markup(b).OutputXMLWithOptions(xmlquery.WithPreserveSpace())
}

// QueryFormats evaluates an xpath expression against markup and returns the
// class of every matched element with the editor prefix removed.
func QueryFormats(root *xmlquery.Node, expr string) ([]string, error) {
	compiled, err := xpath.Compile(expr)
	if err != nil {
		return nil, &errors.ParseError{Format: "xpath", Input: expr, Message: "invalid expression", Err: err}
	}

	var formats []string
	for _, n := range xmlquery.QuerySelectorAll(root, compiled) {
		if n.Type != xmlquery.ElementNode {
			continue
		}
		formats = append(formats, trimClassPrefix(n.SelectAttr("class")))
	}
	return formats, nil
}

func newElement(tag, class string) *xmlquery.Node {
	n := &xmlquery.Node{Type: xmlquery.ElementNode, Data: tag}
	xmlquery.AddAttr(n, "class", class)
	return n
}

func trimClassPrefix(class string) string {
	class = strings.TrimPrefix(class, BlockClassPrefix)
	return strings.TrimPrefix(class, InlineClassPrefix)
}
