// Package wordlists defines interfaces and orchestration for the word list
// build phases.
package wordlists

import (
	"io"

	"github.com/heartmarshall/wordlists/internal/domain"
)

// ListStore defines the flat-file contract consumed by the pipeline.
// All methods use only domain types and return domain sentinel errors
// (ErrFileNotFound, ErrEncoding, ErrMalformedMapping) wrapped with context.
// Implemented by wordlist.FileStore.
type ListStore interface {
	// Reads: one normalized, non-empty entry per line.
	ReadLines(path string) ([]string, error)
	ReadPattern(pattern string) ([]string, error)
	ReadMapping(path string) ([]domain.MappingPair, error)
	Open(path string) (io.ReadCloser, error)

	// Writes one word per line, blank entries skipped. Returns lines written.
	WriteLines(path string, words []string) (int, error)

	CountLines(path string) (int, error)
}
