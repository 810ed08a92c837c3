// Package highlight wraps every occurrence of a query inside a line with ANSI color markers
package highlight

import (
	"strings"

	"github.com/UnendingLoop/MiniGrep/internal/casefold"
)

const (
	On  = "\x1b[31m" // красный
	Off = "\x1b[0m"
)

// Highlight returns a copy of line with each non-overlapping occurrence of
// queryToCheck in lineToCheck wrapped in On/Off. Offsets are found in
// lineToCheck and sliced out of line, so both must have the same byte length;
// otherwise line is returned unchanged. An empty query never matches.
func Highlight(line, lineToCheck, queryToCheck string) string {
	if queryToCheck == "" || len(line) != len(lineToCheck) {
		return strings.Clone(line)
	}

	var b strings.Builder
	last := 0
	for _, start := range indices(lineToCheck, queryToCheck) {
		end := start + len(queryToCheck)
		write(&b, line, last, start, end)
		last = end
	}
	b.WriteString(line[last:])

	return b.String()
}

// HighlightFolded highlights occurrences of foldedQuery found in folded, the
// case-folded form of line. Matches are mapped back through the folding offset
// map, so line and folded may differ in length.
func HighlightFolded(line string, folded casefold.Text, foldedQuery string) string {
	if foldedQuery == "" {
		return strings.Clone(line)
	}

	var b strings.Builder
	last := 0
	for _, fs := range indices(folded.String(), foldedQuery) {
		start, end := folded.Span(fs, fs+len(foldedQuery))
		// две находки внутри одной развернутой руны (ß -> ss) не должны пересекаться
		if start < last {
			start = last
		}
		if end <= start {
			continue
		}
		write(&b, line, last, start, end)
		last = end
	}
	b.WriteString(line[last:])

	return b.String()
}

// Strip removes highlight markers from s.
func Strip(s string) string {
	return strings.NewReplacer(On, "", Off, "").Replace(s)
}

func write(b *strings.Builder, line string, last, start, end int) {
	b.WriteString(line[last:start])
	b.WriteString(On)
	b.WriteString(line[start:end])
	b.WriteString(Off)
}

// indices returns start offsets of non-overlapping occurrences of query in s.
func indices(s, query string) []int {
	var res []int
	off := 0
	for {
		idx := strings.Index(s[off:], query)
		if idx < 0 {
			break
		}
		start := off + idx
		res = append(res, start)
		off = start + len(query)
	}
	return res
}
