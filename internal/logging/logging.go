// Package logging points the standard logger at stderr and, optionally, a size-rotated file
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/UnendingLoop/MiniGrep/internal/model"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup configures the standard logger. The returned closer releases the log
// file and is a no-op when no file is configured.
func Setup(lp model.LogParam, stderr io.Writer) (io.Closer, error) {
	log.SetPrefix("minigrep: ")

	if lp.File == "" {
		log.SetOutput(stderr)
		return io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(lp.File), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logger := &lumberjack.Logger{
		Filename:   lp.File,
		MaxSize:    lp.MaxSize,
		MaxBackups: lp.MaxBackups,
		MaxAge:     lp.MaxAge,
		Compress:   true,
	}

	log.SetOutput(io.MultiWriter(stderr, logger))

	return logger, nil
}
