package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []Note
	}{
		{
			name: "plain text",
			text: "nothing to see here",
			want: []Note{Text("nothing to see here")},
		},
		{
			name: "bold span",
			text: "Revenue is **up** 20%",
			want: []Note{Text("Revenue is "), Bold("up"), Text(" 20%")},
		},
		{
			name: "italic star",
			text: "a *very* good year",
			want: []Note{Text("a "), Italic("very"), Text(" good year")},
		},
		{
			name: "italic underscore",
			text: "see _notes_ below",
			want: []Note{Text("see "), Italic("notes"), Text(" below")},
		},
		{
			name: "inline code",
			text: "run `make all` first",
			want: []Note{Text("run "), Code("make all"), Text(" first")},
		},
		{
			name: "strikethrough",
			text: "that was ~~wrong~~ fine",
			want: []Note{Text("that was "), Strike("wrong"), Text(" fine")},
		},
		{
			name: "unterminated backtick stays literal",
			text: "Use the `flag without closing",
			want: []Note{Text("Use the `flag without closing")},
		},
		{
			name: "unterminated bold stays literal",
			text: "this **never closes",
			want: []Note{Text("this **never closes")},
		},
		{
			name: "bold wins over italic at the same offset",
			text: "***x***",
			want: []Note{Text("*"), Bold("x"), Text("*")},
		},
		{
			name: "bold stars are not italic edges",
			text: "**up**",
			want: []Note{Bold("up")},
		},
		{
			name: "earliest marker wins",
			text: "a ~~x~~ then **y**",
			want: []Note{Text("a "), Strike("x"), Text(" then "), Bold("y")},
		},
		{
			name: "multiple spans in order",
			text: "**a** then *b* then `c`",
			want: []Note{
				Bold("a"), Text(" then "), Italic("b"),
				Text(" then "), Code("c"),
			},
		},
		{
			name: "empty bold is literal",
			text: "****",
			want: []Note{Text("****")},
		},
		{
			name: "marker inside code is not a span",
			text: "`a*b`",
			want: []Note{Code("a*b")},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Format(c.text))
		})
	}
}

// Concatenated run content must reproduce the input with only the markers of
// completed spans removed.
func TestFormatRoundTrip(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"plain", "plain"},
		{"**a** and *b*", "a and b"},
		{"half **open", "half **open"},
		{"mix `code` and ~~gone~~", "mix code and gone"},
	}

	for _, c := range cases {
		var b strings.Builder
		for _, n := range Format(c.text) {
			switch v := n.(type) {
			case Text:
				b.WriteString(string(v))
			case Bold:
				b.WriteString(string(v))
			case Italic:
				b.WriteString(string(v))
			case Code:
				b.WriteString(string(v))
			case Strike:
				b.WriteString(string(v))
			}
		}
		assert.Equal(t, c.want, b.String(), c.text)
	}
}

func TestFormatDeterministic(t *testing.T) {
	text := "**a** _b_ `c` ~~d~~ *e* and `tail"
	assert.Equal(t, Format(text), Format(text))
}
