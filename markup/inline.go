package markup

import "regexp"

var (
	boldRe   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	starRe   = regexp.MustCompile(`\*([^*]+)\*`)
	underRe  = regexp.MustCompile(`_([^_]+)_`)
	codeRe   = regexp.MustCompile("`([^`]+)`")
	strikeRe = regexp.MustCompile(`~~(.+?)~~`)
)

// candidate is one possible emphasis span in the unscanned suffix.
type candidate struct {
	start, end int
	note       Note
}

// finders in tie-break priority order.
var finders = []func(string) (candidate, bool){
	findBold,
	findItalic,
	findCode,
	findStrike,
}

// Format splits a single line (or table cell, or list item) into inline
// runs. It never fails: a marker without a matching closer stays literal, so
// the worst case is one big Text run.
//
// Concatenating the runs' content reproduces the input with the markers of
// completed spans removed.
func Format(text string) []Note {
	var notes []Note

	s := text
	for s != "" {
		c, ok := earliest(s)
		if !ok {
			notes = append(notes, Text(s))
			break
		}

		if c.start > 0 {
			notes = append(notes, Text(s[:c.start]))
		}
		notes = append(notes, c.note)
		s = s[c.end:]
	}

	return notes
}

// earliest returns the candidate with the lowest start offset. Ties go to
// the earlier finder, so at equal offsets bold beats italic beats code beats
// strikethrough.
func earliest(s string) (candidate, bool) {
	var best candidate
	var found bool

	for _, find := range finders {
		c, ok := find(s)
		if !ok {
			continue
		}
		if !found || c.start < best.start {
			best, found = c, true
		}
	}

	return best, found
}

func findBold(s string) (candidate, bool) {
	m := boldRe.FindStringSubmatchIndex(s)
	if m == nil {
		return candidate{}, false
	}
	return candidate{m[0], m[1], Bold(s[m[2]:m[3]])}, true
}

// findItalic matches either *text* with no adjacent '*' on either side, or
// _text_. The adjacency rule keeps lone italic stars from eating the edges
// of bold markers.
func findItalic(s string) (candidate, bool) {
	star, okStar := findStarItalic(s)

	m := underRe.FindStringSubmatchIndex(s)
	if m == nil {
		return star, okStar
	}
	under := candidate{m[0], m[1], Italic(s[m[2]:m[3]])}

	if okStar && star.start < under.start {
		return star, true
	}
	return under, true
}

func findStarItalic(s string) (candidate, bool) {
	for from := 0; from < len(s); {
		m := starRe.FindStringSubmatchIndex(s[from:])
		if m == nil {
			return candidate{}, false
		}

		start, end := from+m[0], from+m[1]
		if (start == 0 || s[start-1] != '*') && (end == len(s) || s[end] != '*') {
			return candidate{start, end, Italic(s[from+m[2] : from+m[3]])}, true
		}
		from = start + 1
	}
	return candidate{}, false
}

func findCode(s string) (candidate, bool) {
	m := codeRe.FindStringSubmatchIndex(s)
	if m == nil {
		return candidate{}, false
	}
	return candidate{m[0], m[1], Code(s[m[2]:m[3]])}, true
}

func findStrike(s string) (candidate, bool) {
	m := strikeRe.FindStringSubmatchIndex(s)
	if m == nil {
		return candidate{}, false
	}
	return candidate{m[0], m[1], Strike(s[m[2]:m[3]])}, true
}
