// Package markup parses assistant reply text into a block/inline node tree
// and renders it back out as Discord-flavoured markdown.
//
// The dialect is deliberately small: pipe tables, bulleted and numbered
// lists, single-level bold headers, paragraphs and blank-line spacers at the
// block level; bold, italic, inline code and strikethrough at the inline
// level. Anything else passes through as plain text.
package markup

import (
	"strconv"
	"strings"
)

// Note is a single inline run within a block.
type Note interface {
	Markdown() string
}

type (
	Text   string
	Bold   string
	Italic string
	Code   string
	Strike string
)

// Block is a top-level segment of a reply.
type Block interface {
	Markdown() string
}

// Paragraph is a single line of inline runs.
type Paragraph []Note

// Header is a full-line bold heading.
type Header string

// Spacer is a vertical gap produced by a blank line.
type Spacer struct{}

// List holds the stripped item text of a contiguous run of list lines.
type List struct {
	Ordered bool
	Items   []string
}

// Table holds the raw cell text of a contiguous run of pipe-table lines.
// Rows may disagree with Headers on cell count; no rectangularity check is
// performed.
type Table struct {
	Headers []string
	Rows    [][]string
}

func (t Text) Markdown() string {
	return string(t)
}

func (b Bold) Markdown() string {
	return "**" + string(b) + "**"
}

func (i Italic) Markdown() string {
	return "*" + string(i) + "*"
}

func (c Code) Markdown() string {
	return "`" + string(c) + "`"
}

func (s Strike) Markdown() string {
	return "~~" + string(s) + "~~"
}

func (p Paragraph) Markdown() string {
	switch len(p) {
	case 0:
		return ""
	case 1:
		return p[0].Markdown()
	}

	var b strings.Builder
	for _, part := range p {
		b.WriteString(part.Markdown())
	}
	return b.String()
}

func (h Header) Markdown() string {
	return "> __**" + string(h) + "**__"
}

func (Spacer) Markdown() string {
	return ""
}

const bullet = "• "

func (l List) prefix(n int) string {
	if l.Ordered {
		return strconv.Itoa(n) + ". "
	}
	return bullet
}

func (l List) Markdown() string {
	switch len(l.Items) {
	case 0:
		return ""
	case 1:
		return l.prefix(1) + runs(Format(l.Items[0]))
	}

	var b strings.Builder
	b.WriteString(l.prefix(1))
	b.WriteString(runs(Format(l.Items[0])))

	for i, item := range l.Items[1:] {
		b.WriteRune('\n')
		b.WriteString(l.prefix(i + 2))
		b.WriteString(runs(Format(item)))
	}
	return b.String()
}

// Markdown renders the table as an aligned monospace grid inside a code
// fence. Discord has no table markup of its own, so cells are reduced to
// their plain text.
func (t Table) Markdown() string {
	var cols int
	if len(t.Headers) > cols {
		cols = len(t.Headers)
	}
	for _, row := range t.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return ""
	}

	widths := make([]int, cols)
	header := plainRow(t.Headers)
	for i, cell := range header {
		if len(cell) > widths[i] {
			widths[i] = len(cell)
		}
	}
	rows := make([][]string, 0, len(t.Rows))
	for _, raw := range t.Rows {
		row := plainRow(raw)
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
		rows = append(rows, row)
	}

	var b strings.Builder
	b.WriteString("```text\n")
	if len(t.Headers) > 0 {
		writeRow(&b, header, widths)
		for i, w := range widths[:len(header)] {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(strings.Repeat("-", w))
		}
		b.WriteRune('\n')
	}
	for _, row := range rows {
		writeRow(&b, row, widths)
	}
	b.WriteString("```")
	return b.String()
}

func writeRow(b *strings.Builder, row []string, widths []int) {
	for i, cell := range row {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(cell)
		if i < len(row)-1 {
			b.WriteString(strings.Repeat(" ", widths[i]-len(cell)))
		}
	}
	b.WriteRune('\n')
}

func plainRow(row []string) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = plain(cell)
	}
	return out
}

// plain strips emphasis markers from s, keeping literal text.
func plain(s string) string {
	var b strings.Builder
	for _, n := range Format(s) {
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
	return b.String()
}

func runs(notes []Note) string {
	var b strings.Builder
	for _, n := range notes {
		b.WriteString(n.Markdown())
	}
	return b.String()
}
