package richtext

import (
	"reflect"
	"testing"

	"github.com/FocuswithJustin/JuniperNotes/core/errors"
)

func noteBuffer() *Buffer {
	b := NewBufferString("For God so loved the world")
	end := b.Length()
	_ = b.Insert(end, "\n", Paragraph, "f", OriginUser)
	runs := []Run{
		{Text: "1", Format: "notebody1"},
		{Text: " + "},
		{Text: "3.16", Format: "fr"},
		{Text: " ", Format: "fk"},
		{Text: "keyword", Format: "fk"},
		{Text: " ", Format: "ft"},
		{Text: "Text.", Format: "ft"},
	}
	pos := end
	for _, r := range runs {
		_ = b.Insert(pos, r.Text, Character, r.Format, OriginUser)
		pos += r.Len()
	}
	return b
}

func TestMarkupString(t *testing.T) {
	got := MarkupString(noteBuffer())
	want := `<p class="b-p">For God so loved the world</p>` +
		`<p class="b-f"><span class="i-notebody1">1</span> + <span class="i-fr">3.16</span>` +
		`<span class="i-fk"> keyword</span><span class="i-ft"> Text.</span></p>`
	if got != want {
		t.Errorf("MarkupString() =\n%s\nwant\n%s", got, want)
	}
}

func TestMarkupEscapesText(t *testing.T) {
	b := NewBufferString("a < b & c")
	got := MarkupString(b)
	want := `<p class="b-p">a &lt; b &amp; c</p>`
	if got != want {
		t.Errorf("MarkupString() = %s, want %s", got, want)
	}
}

func TestMarkupPreservesSpacing(t *testing.T) {
	b := NewBuffer()
	_ = b.Insert(0, "\n", Paragraph, "q1", OriginUser)
	_ = b.Insert(0, " a ", Character, "", OriginUser)
	_ = b.Insert(3, "  ", Character, "fk", OriginUser)
	_ = b.Insert(5, "b ", Character, "", OriginUser)

	got := MarkupString(b)
	want := `<p class="b-q1"> a <span class="i-fk">  </span>b </p>`
	if got != want {
		t.Errorf("MarkupString() = %q, want %q", got, want)
	}
}

func TestMarkupUnterminatedParagraph(t *testing.T) {
	b := NewBuffer()
	_ = b.Insert(0, "tail", Character, "", OriginUser)
	if got := MarkupString(b); got != `<p class="b-p">tail</p>` {
		t.Errorf("MarkupString() = %s", got)
	}
}

func TestQueryFormats(t *testing.T) {
	root := Markup(noteBuffer())

	tests := []struct {
		expr string
		want []string
	}{
		{expr: "//p", want: []string{"p", "f"}},
		{expr: "//p[@class='b-f']/span", want: []string{"notebody1", "fr", "fk", "ft"}},
		{expr: "//span[.='3.16']", want: []string{"fr"}},
		{expr: "//table", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := QueryFormats(root, tt.expr)
			if err != nil {
				t.Fatalf("QueryFormats failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("QueryFormats(%q) = %q, want %q", tt.expr, got, tt.want)
			}
		})
	}
}

func TestQueryFormatsInvalidExpression(t *testing.T) {
	_, err := QueryFormats(Markup(NewBuffer()), "//p[")
	var parseErr *errors.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("QueryFormats error = %v, want *ParseError", err)
	}
	if parseErr.Format != "xpath" {
		t.Errorf("ParseError.Format = %q, want xpath", parseErr.Format)
	}
}
