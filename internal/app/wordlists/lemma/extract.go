package lemma

import (
	"context"
	"slices"
	"strings"

	"github.com/heartmarshall/wordlists/internal/domain"
)

// Progress is called with the number of inputs processed so far and the
// total number of inputs.
type Progress func(done, total int)

// Options configures Extract.
type Options struct {
	Length        int               // exact lemma length in characters
	Ligatures     *strings.Replacer // expands ligatures before filtering; nil disables
	ProgressEvery int               // report progress every N inputs; <= 0 disables
	OnProgress    Progress
}

// Result is the output of Extract.
type Result struct {
	Lemmas   []string // distinct, sorted
	Inputs   int
	Distinct int // distinct normalized lemmas before the length/alnum filter
	Rejected int // distinct normalized lemmas removed by the filter
}

// Extract lemmatizes every input word, expands ligatures in every lemma and
// keeps the distinct lemmas that are alphanumeric and exactly opts.Length
// characters long. Progress is reported before processing inputs 0, N, 2N...
// The context is checked at each progress tick.
func Extract(ctx context.Context, words []string, lz Lemmatizer, opts Options) (Result, error) {
	res := Result{Inputs: len(words)}
	seen := make(map[string]struct{})

	for i, w := range words {
		if opts.ProgressEvery > 0 && i%opts.ProgressEvery == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
			if opts.OnProgress != nil {
				opts.OnProgress(i, len(words))
			}
		}

		for _, tok := range lz.Lemmatize(w) {
			seen[normalize(tok.Lemma, opts.Ligatures)] = struct{}{}
		}
	}

	res.Distinct = len(seen)
	for l := range seen {
		if Include(l, opts.Length) {
			res.Lemmas = append(res.Lemmas, l)
		}
	}
	slices.Sort(res.Lemmas)
	res.Rejected = res.Distinct - len(res.Lemmas)

	return res, nil
}

// Include reports whether a normalized lemma belongs in the output list.
func Include(lemma string, length int) bool {
	return domain.IsAlnum(lemma) && domain.WordLength(lemma) == length
}

// NewLigatureReplacer builds a replacer from old/new pairs, e.g. "œ", "oe".
func NewLigatureReplacer(pairs ...string) *strings.Replacer {
	if len(pairs) == 0 {
		return nil
	}
	return strings.NewReplacer(pairs...)
}

func normalize(lemma string, lig *strings.Replacer) string {
	if lig == nil {
		return lemma
	}
	return lig.Replace(lemma)
}
