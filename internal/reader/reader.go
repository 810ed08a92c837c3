// Package reader selects the input source: a named file or standard input
package reader

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// MaxLineSize - максимальная длина строки для bufio.Scanner
const MaxLineSize = 1024 * 1024

// Open returns stdin when fileName is empty, otherwise the opened file.
// Closing the result never closes stdin.
func Open(stdin io.Reader, fileName string) (io.ReadCloser, error) {
	if fileName == "" {
		return io.NopCloser(stdin), nil
	}

	// проверяем открывается ли файл
	info, err := os.Stat(fileName)
	if err != nil {
		return nil, fmt.Errorf("error opening file %q: %w", fileName, err)
	}
	// проверяем не папка ли это
	if info.IsDir() {
		return nil, fmt.Errorf("specified source filename %q is a directory", fileName)
	}

	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("couldn't open file %q: %w", fileName, err)
	}
	return file, nil
}

// NewScanner returns a line scanner that accepts lines up to MaxLineSize.
func NewScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	return scanner
}

// ReadInput reads every line of the selected source.
func ReadInput(stdin io.Reader, fileName string) ([]string, error) {
	src, err := Open(stdin, fileName)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	result := make([]string, 0)
	scanner := NewScanner(src)
	for scanner.Scan() {
		result = append(result, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return result, nil
}
