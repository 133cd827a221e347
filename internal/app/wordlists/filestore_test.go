package wordlists

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordlists/internal/config"
	"github.com/heartmarshall/wordlists/internal/wordlist"
)

var _ ListStore = (*wordlist.FileStore)(nil)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestPipeline_FileStore(t *testing.T) {
	dir := t.TempDir()

	cfg := config.Config{
		Spelling: config.SpellingConfig{
			MappingPath:     writeFile(t, dir, "us_spellings.json", `{"color": "colour", "grays": "greys", "arbor": null}`),
			TargetWordsPath: writeFile(t, dir, "british_spellings.json", `{"tyres": "tires", "greys": "grays", "kerb": "curb"}`),
			AnswersPath:     writeFile(t, dir, "en_A.txt", "apple\ncolor\r\ngrays\n\n"),
			GuessesPath:     writeFile(t, dir, "en_G.txt", "apple\n  arbor \nplumb\n"),
			AnswersOutPath:  filepath.Join(dir, "out", "en-GB_A.txt"),
			GuessesOutPath:  filepath.Join(dir, "out", "en-GB_G.txt"),
			WordLength:      5,
		},
		Lemma: config.LemmaConfig{
			CorpusPath:    filepath.Join(dir, "corpus", "**", "*.txt"),
			TablePath:     writeFile(t, dir, "fr_lemmas.tsv", "# form\tlemma\ncœurs\tcœur\nlivres\tlivre\n"),
			OutputPath:    filepath.Join(dir, "fr_lemmas_5.txt"),
			WordLength:    5,
			ProgressEvery: 5000,
			Ligatures:     map[string]string{"œ": "oe", "æ": "ae"},
		},
		Plural: config.PluralConfig{
			InputPath:        writeFile(t, dir, "validated.txt", "galds\ngaldi\nabc.\nlapa\n"),
			OutputPath:       filepath.Join(dir, "validated2.txt"),
			ExtraWords:       []string{"brits", "agara"},
			PluralSuffix:     "i",
			SingularSuffixes: []string{"s", "š"},
		},
	}
	writeFile(t, dir, "corpus/a.txt", "cœurs\nlivres\n")
	writeFile(t, dir, "corpus/b/c.txt", "maisons\ncœurs\n")

	store, err := wordlist.NewFileStore("utf-8")
	require.NoError(t, err)

	p := NewPipeline(testLogger(), store, cfg)
	require.NoError(t, p.Run(context.Background(), nil))
	require.False(t, p.HasErrors(), "results: %+v", p.Results())

	assert.Equal(t, "apple\ngreys\n", readFile(t, cfg.Spelling.AnswersOutPath))
	assert.Equal(t, "apple\nplumb\ntyres\ngreys\n", readFile(t, cfg.Spelling.GuessesOutPath))
	assert.Equal(t, "coeur\nlivre\n", readFile(t, cfg.Lemma.OutputPath))
	assert.Equal(t, "galds\nlapa\nbrits\nagara\n", readFile(t, cfg.Plural.OutputPath))
}
