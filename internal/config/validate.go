package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/wordlists/internal/domain"
	"github.com/heartmarshall/wordlists/internal/wordlist"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	var errs []domain.FieldError
	add := func(field, format string, args ...any) {
		errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if _, err := wordlist.LookupEncoding(c.Run.InputEncoding); err != nil {
		add("run.input_encoding", "unsupported encoding %q", c.Run.InputEncoding)
	}
	if c.Run.Timeout <= 0 {
		add("run.timeout", "must be > 0 (got %v)", c.Run.Timeout)
	}

	if c.Spelling.WordLength <= 0 {
		add("spelling.word_length", "must be > 0 (got %d)", c.Spelling.WordLength)
	}
	if samePath(c.Spelling.AnswersPath, c.Spelling.AnswersOutPath) {
		add("spelling.answers_out_path", "must differ from answers_path")
	}
	if samePath(c.Spelling.GuessesPath, c.Spelling.GuessesOutPath) {
		add("spelling.guesses_out_path", "must differ from guesses_path")
	}

	if c.Lemma.WordLength <= 0 {
		add("lemma.word_length", "must be > 0 (got %d)", c.Lemma.WordLength)
	}
	if c.Lemma.ProgressEvery <= 0 {
		add("lemma.progress_every", "must be > 0 (got %d)", c.Lemma.ProgressEvery)
	}
	for lig := range c.Lemma.Ligatures {
		if lig == "" {
			add("lemma.ligatures", "ligature must not be empty")
		}
	}

	if strings.TrimSpace(c.Plural.PluralSuffix) == "" {
		add("plural.plural_suffix", "required")
	}
	if len(c.Plural.SingularSuffixes) == 0 {
		add("plural.singular_suffixes", "at least one suffix required")
	}
	if samePath(c.Plural.InputPath, c.Plural.OutputPath) {
		add("plural.output_path", "must differ from input_path")
	}

	return domain.NewValidationErrors(errs)
}

func samePath(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return filepath.Clean(a) == filepath.Clean(b)
}
