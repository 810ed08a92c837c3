// Package matcher selects the lines of a text body that contain a query string
package matcher

import (
	"iter"
	"strings"

	"github.com/UnendingLoop/MiniGrep/internal/casefold"
)

// FindMatches returns the lines of content containing query, in their original
// order. Lines are substrings of content. With ignoreCase both sides are
// case-folded for the comparison only; yielded lines keep their original text.
// Each range over the result rescans content.
func FindMatches(query, content string, ignoreCase bool) iter.Seq[string] {
	return func(yield func(string) bool) {
		q := query
		if ignoreCase {
			q = casefold.String(query)
		}
		for line := range Lines(content) {
			if MatchLine(q, line, ignoreCase) && !yield(line) {
				return
			}
		}
	}
}

// Search returns every line of content containing query as an exact substring.
func Search(query, content string) []string {
	return collect(FindMatches(query, content, false))
}

// SearchCaseInsensitive is Search with both query and lines case-folded.
func SearchCaseInsensitive(query, content string) []string {
	return collect(FindMatches(query, content, true))
}

// MatchLine reports whether line contains query. With ignoreCase the query
// must already be folded.
func MatchLine(query, line string, ignoreCase bool) bool {
	if ignoreCase { //-i
		line = casefold.String(line)
	}
	return strings.Contains(line, query)
}

// Lines splits content on "\n", dropping a trailing "\r" from every line.
// A final terminator does not start an extra empty line.
func Lines(content string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for content != "" {
			line, rest, _ := strings.Cut(content, "\n")
			content = rest
			if !yield(strings.TrimSuffix(line, "\r")) {
				return
			}
		}
	}
}

func collect(seq iter.Seq[string]) []string {
	result := []string{}
	for line := range seq {
		result = append(result, line)
	}
	return result
}
