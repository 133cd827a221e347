// Package plural removes plural forms from a word list when the matching
// singular form is also listed. Pure functions: no file I/O.
package plural

import (
	"strings"

	"github.com/heartmarshall/wordlists/internal/domain"
)

const (
	reasonNotAlnum = "not alphanumeric"
	reasonSingular = "singular alternative is present"
)

// Rules describes which entries count as plurals of another entry.
// A word ending in PluralSuffix is a plural when its stem followed by any of
// SingularSuffixes is also in the list. Extras missing from the input are
// appended to it before the rules are applied.
type Rules struct {
	PluralSuffix     string
	SingularSuffixes []string
	Extras           []string
}

// Result is the output of Dedupe.
type Result struct {
	Words       []string
	Appended    int // extras added to the input
	Skipped     int // skipped entries, one per occurrence
	Removed     int // entries dropped from the output, every occurrence of a skipped word
	Diagnostics []domain.Diagnostic
}

// Dedupe applies rules to words plus the missing extras. Non-alphanumeric entries and
// plurals with a listed singular are skipped, then every occurrence of a
// skipped word is removed. Surviving entries keep their order.
func Dedupe(words []string, rules Rules) Result {
	combined := make([]string, 0, len(words)+len(rules.Extras))
	combined = append(combined, words...)

	var res Result
	present := domain.WordSet(words)
	for _, w := range rules.Extras {
		if _, ok := present[w]; ok {
			continue
		}
		present[w] = struct{}{}
		combined = append(combined, w)
		res.Appended++
	}

	plural := domain.NormalizeLine(rules.PluralSuffix)
	singulars := normalizeAll(rules.SingularSuffixes)
	skipped := make(map[string]struct{})

	for _, w := range combined {
		reason := skipReason(w, plural, singulars, present)
		if reason == "" {
			continue
		}
		skipped[w] = struct{}{}
		res.Skipped++
		res.Diagnostics = append(res.Diagnostics, domain.Diagnostic{
			Word:   w,
			Action: domain.ActionSkipped,
			Reason: reason,
		})
	}

	res.Words = make([]string, 0, len(combined))
	for _, w := range combined {
		if _, ok := skipped[w]; ok {
			res.Removed++
			continue
		}
		res.Words = append(res.Words, w)
	}

	return res
}

func skipReason(w, plural string, singulars []string, present map[string]struct{}) string {
	if !domain.IsAlnum(w) {
		return reasonNotAlnum
	}
	if plural == "" || !strings.HasSuffix(w, plural) {
		return ""
	}

	stem := strings.TrimSuffix(w, plural)
	for _, s := range singulars {
		if _, ok := present[stem+s]; ok {
			return reasonSingular
		}
	}
	return ""
}

func normalizeAll(ss []string) []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		if s = domain.NormalizeLine(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
