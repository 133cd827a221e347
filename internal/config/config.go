package config

import (
	"maps"
	"slices"
	"time"

	"github.com/heartmarshall/wordlists/internal/domain"
)

// Config is the root configuration of the wordlists tool.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Run      RunConfig      `yaml:"run"`
	Spelling SpellingConfig `yaml:"spelling"`
	Lemma    LemmaConfig    `yaml:"lemma"`
	Plural   PluralConfig   `yaml:"plural"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// RunConfig holds settings shared by every phase.
type RunConfig struct {
	InputEncoding string        `yaml:"input_encoding" env:"WORDLISTS_INPUT_ENCODING" env-default:"utf-8"`
	Timeout       time.Duration `yaml:"timeout"        env:"WORDLISTS_TIMEOUT"        env-default:"30m"`
	DryRun        bool          `yaml:"dry_run"        env:"WORDLISTS_DRY_RUN"`
}

// SpellingConfig holds the US → localized spelling phase settings.
type SpellingConfig struct {
	MappingPath     string `yaml:"mapping_path"      env:"SPELLING_MAPPING_PATH"      env-default:"us_spellings.json"`
	TargetWordsPath string `yaml:"target_words_path" env:"SPELLING_TARGET_WORDS_PATH" env-default:"british_spellings.json"`
	AnswersPath     string `yaml:"answers_path"      env:"SPELLING_ANSWERS_PATH"      env-default:"en_A.txt"`
	GuessesPath     string `yaml:"guesses_path"      env:"SPELLING_GUESSES_PATH"      env-default:"en_G.txt"`
	AnswersOutPath  string `yaml:"answers_out_path"  env:"SPELLING_ANSWERS_OUT_PATH"  env-default:"en-GB_A.txt"`
	GuessesOutPath  string `yaml:"guesses_out_path"  env:"SPELLING_GUESSES_OUT_PATH"  env-default:"en-GB_G.txt"`
	WordLength      int    `yaml:"word_length"       env:"SPELLING_WORD_LENGTH"       env-default:"5"`
}

// LemmaConfig holds the lemma extraction phase settings.
type LemmaConfig struct {
	CorpusPath    string            `yaml:"corpus_path"    env:"LEMMA_CORPUS_PATH"    env-default:"fr_full.txt"`
	TablePath     string            `yaml:"table_path"     env:"LEMMA_TABLE_PATH"     env-default:"fr_lemmas.tsv"`
	OutputPath    string            `yaml:"output_path"    env:"LEMMA_OUTPUT_PATH"    env-default:"fr_lemmas_5.txt"`
	WordLength    int               `yaml:"word_length"    env:"LEMMA_WORD_LENGTH"    env-default:"5"`
	ProgressEvery int               `yaml:"progress_every" env:"LEMMA_PROGRESS_EVERY" env-default:"5000"`
	Ligatures     map[string]string `yaml:"ligatures"      env:"LEMMA_LIGATURES"      env-default:"œ:oe,æ:ae"`
}

// PluralConfig holds the plural deduplication phase settings.
type PluralConfig struct {
	InputPath        string   `yaml:"input_path"        env:"PLURAL_INPUT_PATH"        env-default:"validated.txt"`
	OutputPath       string   `yaml:"output_path"       env:"PLURAL_OUTPUT_PATH"       env-default:"validated2.txt"`
	ExtraWords       []string `yaml:"extra_words"       env:"PLURAL_EXTRA_WORDS"       env-default:"brits,agara"`
	PluralSuffix     string   `yaml:"plural_suffix"     env:"PLURAL_SUFFIX"            env-default:"i"`
	SingularSuffixes []string `yaml:"singular_suffixes" env:"PLURAL_SINGULAR_SUFFIXES" env-default:"s,š"`
}

// LigaturePairs flattens Ligatures into old/new pairs for strings.NewReplacer.
// Pairs are ordered by ligature so the replacer behaves the same on every run.
func (c LemmaConfig) LigaturePairs() []string {
	keys := slices.Sorted(maps.Keys(c.Ligatures))
	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, k, c.Ligatures[k])
	}
	return pairs
}

// Extras returns ExtraWords normalized like input lines, blank entries removed.
func (c PluralConfig) Extras() []string {
	out := make([]string, 0, len(c.ExtraWords))
	for _, w := range c.ExtraWords {
		if w = domain.NormalizeLine(w); w != "" {
			out = append(out, w)
		}
	}
	return out
}
