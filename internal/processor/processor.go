// Package processor applies matcher and highlight to input lines: one by one for the CLI, in batch for the HTTP mode
package processor

import (
	"context"
	"fmt"

	"github.com/UnendingLoop/MiniGrep/internal/casefold"
	"github.com/UnendingLoop/MiniGrep/internal/highlight"
	"github.com/UnendingLoop/MiniGrep/internal/matcher"
	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/cespare/xxhash/v2"
)

// LineProcessor decides for a single line whether it matches and renders it.
type LineProcessor struct {
	query      string // уже свернут, если ignoreCase
	ignoreCase bool
	colorize   bool
	enumLine   bool
}

func NewLineProcessor(sp model.SearchParam, colorize bool) *LineProcessor {
	lp := &LineProcessor{
		query:      sp.Query,
		ignoreCase: sp.IgnoreCase,
		colorize:   colorize,
		enumLine:   sp.EnumLine,
	}
	if lp.ignoreCase {
		lp.query = casefold.String(lp.query)
	}
	return lp
}

// Process returns the rendered line n (1-based) and true when line matches.
func (lp *LineProcessor) Process(line string, n int) (string, bool) {
	var out string

	switch lp.ignoreCase {
	case true: //-i
		folded := casefold.Map(line)
		if !matcher.MatchLine(lp.query, folded.String(), false) {
			return "", false
		}
		out = line
		if lp.colorize {
			out = highlight.HighlightFolded(line, folded, lp.query)
		}
	default:
		if !matcher.MatchLine(lp.query, line, false) {
			return "", false
		}
		out = line
		if lp.colorize {
			out = highlight.Highlight(line, line, lp.query)
		}
	}

	return normalizeLine(lp.enumLine, out, n), true
}

// учесть что нужно делать префикс номера строки
func normalizeLine(enumLine bool, line string, n int) string {
	if enumLine {
		return fmt.Sprintf("%d:%s", n, line)
	}
	return line
}

type Processor struct{}

// ProcessInput runs a whole SearchTask. A cancelled context yields an empty result.
func (p Processor) ProcessInput(ctx context.Context, task *model.SearchTask) *model.SearchResult {
	result := model.SearchResult{
		Matches: []string{},
	}
	query := ""
	if task.Query != nil {
		query = *task.Query
	}
	foldedQuery := query
	if task.IgnoreCase {
		foldedQuery = casefold.String(query)
	}

	for line := range matcher.FindMatches(query, task.Content, task.IgnoreCase) {
		select {
		case <-ctx.Done():
			return &model.SearchResult{Matches: []string{}, HashSumm: hasher(ctx, nil)}
		default:
		}

		result.Matches = append(result.Matches, line)
		if !task.Highlight {
			continue
		}
		switch task.IgnoreCase {
		case true:
			result.Highlighted = append(result.Highlighted, highlight.HighlightFolded(line, casefold.Map(line), foldedQuery))
		default:
			result.Highlighted = append(result.Highlighted, highlight.Highlight(line, line, query))
		}
	}
	result.Count = len(result.Matches)

	// считаем общий хеш по тому, что отдаем клиенту
	output := result.Matches
	if task.Highlight {
		output = result.Highlighted
	}
	result.HashSumm = hasher(ctx, output)

	return &result
}

func hasher(ctx context.Context, input []string) uint64 {
	hs := xxhash.New()
	for _, s := range input {
		select {
		case <-ctx.Done():
			return 0
		default:
			_, _ = hs.WriteString(s)
			_, _ = hs.WriteString("\n")
		}
	}
	return hs.Sum64()
}
