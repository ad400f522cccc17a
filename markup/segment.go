package markup

import "strings"

// Segment splits reply text into its top-level blocks. It never fails:
// anything the patterns do not recognize degrades to a paragraph.
//
// Contiguous table lines coalesce into one Table node and contiguous list
// lines into one List node; every other line produces exactly one node.
// Blocks appear in input order.
func Segment(text string) []Block {
	if text == "" {
		return nil
	}

	var blocks []Block

	var inTable, inList bool
	var headers []string
	var rows [][]string
	var items []string
	var ordered bool

	flushTable := func() {
		blocks = append(blocks, Table{Headers: headers, Rows: rows})
		headers, rows = nil, nil
		inTable = false
	}
	flushList := func() {
		blocks = append(blocks, List{Ordered: ordered, Items: items})
		items = nil
		inList = false
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		if cells, ok := tableRow(trimmed); ok {
			if inList {
				flushList()
			}
			switch {
			case separatorRow(cells):
				// Alignment separator: consumed, never stored.
				inTable = true
			case !inTable:
				inTable = true
				headers = cells
			default:
				rows = append(rows, cells)
			}
			continue
		}
		if inTable {
			flushTable()
		}

		if item, ord, ok := listItem(line); ok {
			if !inList {
				inList = true
				ordered = ord
			}
			items = append(items, item)
			continue
		}
		if inList {
			flushList()
		}

		if trimmed == "" {
			blocks = append(blocks, Spacer{})
			continue
		}

		if h, ok := headerLine(trimmed); ok {
			blocks = append(blocks, Header(h))
			continue
		}

		blocks = append(blocks, Paragraph(Format(line)))
	}

	if inTable {
		flushTable()
	}
	if inList {
		flushList()
	}

	return blocks
}

// tableRow reports whether a trimmed line is a pipe-table row, returning its
// cells with the outer empty cells dropped.
func tableRow(trimmed string) ([]string, bool) {
	if len(trimmed) < 2 || !strings.HasPrefix(trimmed, "|") || !strings.HasSuffix(trimmed, "|") {
		return nil, false
	}

	split := strings.Split(trimmed, "|")
	cells := split[1 : len(split)-1]
	for i, cell := range cells {
		cells[i] = strings.TrimSpace(cell)
	}
	return cells, true
}

// separatorRow reports whether every cell contains only whitespace, ':' or
// '-' characters.
func separatorRow(cells []string) bool {
	for _, cell := range cells {
		if strings.Trim(cell, " \t:-") != "" {
			return false
		}
	}
	return true
}

// listItem reports whether a line is a list item: a bullet rune or a decimal
// ordinal, followed by a space. The returned item has the marker stripped.
func listItem(line string) (item string, ordered, ok bool) {
	s := strings.TrimLeft(line, " \t")

	for _, marker := range []string{"• ", "- ", "* "} {
		if strings.HasPrefix(s, marker) {
			return s[len(marker):], false, true
		}
	}

	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i > 0 && i+1 < len(s) && s[i] == '.' && s[i+1] == ' ' {
		return s[i+2:], true, true
	}

	return "", false, false
}

// headerLine reports whether a trimmed line is a full-line bold heading:
// opening and closing "**" with no further "**" in between. Header text is
// exempt from inline formatting.
func headerLine(trimmed string) (string, bool) {
	if len(trimmed) <= 4 || !strings.HasPrefix(trimmed, "**") || !strings.HasSuffix(trimmed, "**") {
		return "", false
	}

	inner := trimmed[2 : len(trimmed)-2]
	if strings.Contains(inner, "**") {
		return "", false
	}
	return inner, true
}
