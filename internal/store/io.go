package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dchest/safefile"

	"kmacrypt/internal/domain"
)

// readFile reads the file at path; a missing file is domain.ErrNotFound.
func readFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// writeFile writes bytes via a temp file, then atomically replaces the target.
func writeFile(path string, b []byte, mode os.FileMode) error {
	if err := safefile.WriteFile(path, b, mode); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrWrite, path, err)
	}
	return nil
}

// readLines reads a record of at least n newline-separated fields.
func readLines(path string, n int) ([]string, error) {
	b, err := readFile(path)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(strings.TrimSuffix(string(b), "\n"), "\n")
	if len(lines) < n {
		return nil, fmt.Errorf("%w: %s: want %d fields, got %d", domain.ErrMalformedRecord, path, n, len(lines))
	}
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	return lines[:n], nil
}

// writeLines writes one field per line.
func writeLines(path string, mode os.FileMode, fields ...string) error {
	return writeFile(path, []byte(strings.Join(fields, "\n")+"\n"), mode)
}
