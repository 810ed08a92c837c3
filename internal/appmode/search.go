// Package appmode provides 2 methods to work in preliminarily defined mode 'search' and 'serve'
package appmode

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/UnendingLoop/MiniGrep/internal/processor"
	"github.com/UnendingLoop/MiniGrep/internal/reader"
	"golang.org/x/term"
)

// RunSearch streams the selected input line by line and prints matching lines
// to stdout. Any open or read error stops the search immediately.
func RunSearch(ctx context.Context, ai *model.AppInit, stdin io.Reader, stdout io.Writer) error {
	sp := ai.Search

	src, err := reader.Open(stdin, sp.FilePath)
	if err != nil {
		return err
	}
	defer src.Close()

	out := bufio.NewWriter(stdout)
	defer out.Flush()

	lp := processor.NewLineProcessor(sp, colorize(sp.Color, stdout))
	scanner := reader.NewScanner(src)
	lineN, counter := 0, 0

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		lineN++
		line, ok := lp.Process(scanner.Text(), lineN)
		if !ok {
			continue
		}
		counter++
		if sp.CountOnly {
			continue
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	if sp.CountOnly {
		if _, err := fmt.Fprintln(out, counter); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	return out.Flush()
}

func colorize(mode model.ColorMode, stdout io.Writer) bool {
	switch mode {
	case model.ColorNever:
		return false
	case model.ColorAuto:
		f, ok := stdout.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	default:
		return true
	}
}
