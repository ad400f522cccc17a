package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoteMarkdown(t *testing.T) {
	cases := []struct {
		note Note
		want string
	}{
		{Text("plain"), "plain"},
		{Bold("b"), "**b**"},
		{Italic("i"), "*i*"},
		{Code("c"), "`c`"},
		{Strike("s"), "~~s~~"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, c.note.Markdown())
	}
}

func TestParagraphMarkdown(t *testing.T) {
	p := Paragraph{Text("Cash is "), Bold("up"), Text(" 12%.")}
	assert.Equal(t, "Cash is **up** 12%.", p.Markdown())

	assert.Equal(t, "", Paragraph{}.Markdown())
}

func TestHeaderMarkdown(t *testing.T) {
	assert.Equal(t, "> __**Summary**__", Header("Summary").Markdown())
}

func TestListMarkdown(t *testing.T) {
	l := List{Items: []string{"one", "**two**"}}
	assert.Equal(t, "• one\n• **two**", l.Markdown())

	ordered := List{Ordered: true, Items: []string{"first", "second"}}
	assert.Equal(t, "1. first\n2. second", ordered.Markdown())

	assert.Equal(t, "", List{}.Markdown())
}

func TestTableMarkdown(t *testing.T) {
	tbl := Table{
		Headers: []string{"Account", "Balance"},
		Rows:    [][]string{{"Ops", "1,200"}, {"**Tax**", "90"}},
	}

	want := "```text\n" +
		"Account  Balance\n" +
		"-------  -------\n" +
		"Ops      1,200\n" +
		"Tax      90\n" +
		"```"
	assert.Equal(t, want, tbl.Markdown())
}

func TestTableMarkdownRagged(t *testing.T) {
	tbl := Table{
		Headers: []string{"A"},
		Rows:    [][]string{{"1", "2"}},
	}

	want := "```text\n" +
		"A\n" +
		"-\n" +
		"1  2\n" +
		"```"
	assert.Equal(t, want, tbl.Markdown())

	assert.Equal(t, "", Table{}.Markdown())
}
