// Package casefold lowers text for case-insensitive comparison and keeps track of
// where every folded byte came from in the original string.
//
// Folding is Unicode full case folding (golang.org/x/text/cases.Fold), applied
// one code point at a time, so the result does not depend on locale or on
// neighbouring characters. Some code points fold to a different number of
// bytes (U+212A KELVIN SIGN -> "k", U+00DF -> "ss"); Map records the original
// span of each folded byte so offsets found in folded text can be translated
// back.
package casefold

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Text is a folded string together with its offset map.
type Text struct {
	folded string
	starts []int // starts[i] - начало исходной руны, из которой получен байт i
	ends   []int // ends[i] - конец этой руны
	origin int   // длина исходной строки
}

// String returns the folded text.
func (t Text) String() string {
	return t.folded
}

// Len returns the length of the folded text in bytes.
func (t Text) Len() int {
	return len(t.folded)
}

// Span translates the folded byte range [start, end) into a range of the
// original string. A boundary that falls inside the expansion of a single
// code point is widened to cover that whole code point.
func (t Text) Span(start, end int) (int, int) {
	if start >= len(t.folded) {
		return t.origin, t.origin
	}
	if end <= start {
		return t.starts[start], t.starts[start]
	}
	return t.starts[start], t.ends[end-1]
}

// String folds s.
func String(s string) string {
	if isLowerASCII(s) {
		return s
	}
	var (
		b     strings.Builder
		caser = cases.Fold()
	)
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		b.WriteString(foldRune(caser, s[i:i+size], r))
		i += size
	}
	return b.String()
}

// Map folds s and records the offset map.
func Map(s string) Text {
	t := Text{
		starts: make([]int, 0, len(s)),
		ends:   make([]int, 0, len(s)),
		origin: len(s),
	}
	var (
		b     strings.Builder
		caser = cases.Fold()
	)
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		f := foldRune(caser, s[i:i+size], r)
		b.WriteString(f)
		for range len(f) {
			t.starts = append(t.starts, i)
			t.ends = append(t.ends, i+size)
		}
		i += size
	}
	t.folded = b.String()
	return t
}

func foldRune(caser cases.Caser, raw string, r rune) string {
	switch {
	case r < utf8.RuneSelf:
		if 'A' <= r && r <= 'Z' {
			return string(r + 'a' - 'A')
		}
		return raw
	case r == utf8.RuneError && len(raw) == 1: // битый байт оставляем как есть
		return raw
	default:
		return caser.String(raw)
	}
}

func isLowerASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= utf8.RuneSelf || ('A' <= c && c <= 'Z') {
			return false
		}
	}
	return true
}
