package lemma

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/wordlists/internal/domain"
)

// Table is a dictionary-backed Lemmatizer built from a form → lemma listing
// such as a Lexique or Lefff export.
type Table struct {
	lemmas map[string]string
}

// TableStats holds parser statistics for logging.
type TableStats struct {
	TotalLines int
	Forms      int
	Ambiguous  int // forms listed more than once; the first lemma wins
}

// ParseTable reads a tab-separated table: form<TAB>lemma[<TAB>ignored...].
// Blank lines and lines starting with "#" are skipped. Forms are matched
// case-insensitively.
func ParseTable(r io.Reader) (*Table, TableStats, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.Comment = '#'
	reader.FieldsPerRecord = -1 // allow variable column count
	reader.LazyQuotes = true

	t := &Table{lemmas: make(map[string]string)}
	var stats TableStats

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("read row: %w", err)
		}
		stats.TotalLines++

		if len(record) < 2 {
			return nil, stats, fmt.Errorf("row %d: expected form and lemma, got %d field(s)", stats.TotalLines, len(record))
		}

		form := strings.ToLower(domain.NormalizeLine(record[0]))
		lemma := domain.NormalizeLine(record[1])
		if form == "" || lemma == "" {
			continue
		}

		if _, exists := t.lemmas[form]; exists {
			stats.Ambiguous++
			continue
		}
		t.lemmas[form] = lemma
	}

	stats.Forms = len(t.lemmas)
	return t, stats, nil
}

// Lemmatize tokenizes text and looks each token up in the table. A token
// with no entry lemmatizes to its lowercased form.
func (t *Table) Lemmatize(text string) []Token {
	parts := Tokenize(text)
	tokens := make([]Token, 0, len(parts))
	for _, p := range parts {
		key := strings.ToLower(p)
		lemma, ok := t.lemmas[key]
		if !ok {
			lemma = key
		}
		tokens = append(tokens, Token{Text: p, Lemma: lemma})
	}
	return tokens
}

// Len returns the number of distinct forms in the table.
func (t *Table) Len() int {
	return len(t.lemmas)
}
