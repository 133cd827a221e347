// Package wordlist reads and writes the flat files the pipelines work on:
// newline-separated word lists and JSON spelling mappings.
package wordlist

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/encoding"

	"github.com/heartmarshall/wordlists/internal/domain"
)

const (
	bom          = "\ufeff"
	maxLineBytes = 1024 * 1024
)

// FileStore reads word lists in a configured input encoding and writes
// UTF-8 output. Every call opens and closes its own file handle.
type FileStore struct {
	enc encoding.Encoding
}

// NewFileStore creates a FileStore that decodes inputs from encodingName.
func NewFileStore(encodingName string) (*FileStore, error) {
	enc, err := LookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}
	return &FileStore{enc: enc}, nil
}

// Open opens path for reading and decodes it to UTF-8.
func (s *FileStore) Open(path string) (io.ReadCloser, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	return readCloser{Reader: decodingReader(f, s.enc), Closer: f}, nil
}

// ReadLines reads a word list: one token per line, trimmed, NFC-normalized,
// empty lines dropped. Order is preserved.
func (s *FileStore) ReadLines(path string) ([]string, error) {
	rc, err := s.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	words, err := scanLines(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return words, nil
}

// ReadPattern reads and concatenates every file matching a doublestar glob
// pattern, in lexical path order. A plain path matches only itself.
func (s *FileStore) ReadPattern(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("glob %s: no matches: %w", pattern, domain.ErrFileNotFound)
	}
	sort.Strings(matches)

	var all []string
	for _, path := range matches {
		words, err := s.ReadLines(path)
		if err != nil {
			return nil, err
		}
		all = append(all, words...)
	}
	return all, nil
}

// WriteLines writes words to path, one per line, newline-terminated, in UTF-8.
// Blank words are not written. Missing parent directories are created.
// Returns the number of lines written.
func (s *FileStore) WriteLines(path string, words []string) (int, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	written := 0
	for _, word := range words {
		if strings.TrimSpace(word) == "" {
			continue
		}
		if _, err := w.WriteString(word + "\n"); err != nil {
			f.Close()
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written++
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return written, fmt.Errorf("flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return written, fmt.Errorf("close %s: %w", path, err)
	}
	return written, nil
}

// CountLines counts newline characters in path, like `wc -l`.
func (s *FileStore) CountLines(path string) (int, error) {
	f, err := openFile(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	buf := make([]byte, 32*1024)
	count := 0
	for {
		n, err := f.Read(buf)
		count += bytes.Count(buf[:n], []byte{'\n'})
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, fmt.Errorf("read %s: %w", path, err)
		}
	}
}

func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("open %s: %w", path, domain.ErrFileNotFound)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

// scanLines splits r into normalized non-empty lines. Input must already be
// UTF-8; invalid sequences fail with domain.ErrEncoding.
func scanLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var words []string
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, bom)
		}
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("line %d: invalid UTF-8: %w", lineNo, domain.ErrEncoding)
		}
		if word := domain.NormalizeLine(line); word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

type readCloser struct {
	io.Reader
	io.Closer
}
