package wordlist

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/heartmarshall/wordlists/internal/domain"
)

// ReadMapping reads a JSON object of string → string|null and returns its
// entries in file order. A null value decodes to the drop signal "".
// Mapping files are always UTF-8 regardless of the store's input encoding.
func (s *FileStore) ReadMapping(path string) ([]domain.MappingPair, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	pairs, err := decodeMapping(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return pairs, nil
}

func decodeMapping(data []byte) ([]domain.MappingPair, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("invalid UTF-8: %w", domain.ErrEncoding)
	}
	data = bytes.TrimPrefix(data, []byte(bom))

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, malformed("read opening token: %v", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, malformed("expected JSON object, got %v", tok)
	}

	var pairs []domain.MappingPair
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, malformed("read key: %v", err)
		}
		key, _ := keyTok.(string)

		valTok, err := dec.Token()
		if err != nil {
			return nil, malformed("read value for %q: %v", key, err)
		}

		var value string
		switch v := valTok.(type) {
		case string:
			value = v
		case nil:
			// drop signal
		default:
			return nil, malformed("value for %q must be a string or null, got %v", key, v)
		}

		pairs = append(pairs, domain.MappingPair{
			Key:   domain.NormalizeLine(key),
			Value: domain.NormalizeLine(value),
		})
	}

	if _, err := dec.Token(); err != nil {
		return nil, malformed("read closing token: %v", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, malformed("trailing data after object")
	}

	return pairs, nil
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), domain.ErrMalformedMapping)
}
