package main

import (
	"strings"

	"github.com/hhhapz/deskbot/markup"
)

// render flattens blocks into Discord markdown, stopping once the output
// passes limit. The second return reports whether anything was left out.
func render(blocks []markup.Block, limit int) (string, bool) {
	switch len(blocks) {
	case 0:
		return "*The assistant sent an empty reply*", false
	}

	var more bool

	var b strings.Builder
	for _, block := range blocks {
		if b.Len() > limit {
			more = true
			break
		}
		b.WriteString(block.Markdown())
		b.WriteRune('\n')
	}
	return strings.TrimRight(b.String(), "\n"), more
}
