// Package spelling rewrites word lists from one regional spelling to another.
// Pure functions: word slices in, word slices and diagnostics out. No file I/O.
package spelling

import (
	"github.com/heartmarshall/wordlists/internal/domain"
)

// Result is the output of Localize.
type Result struct {
	Words       []string
	Replaced    int
	Dropped     int
	Diagnostics []domain.Diagnostic
}

// Localize rewrites words through m. A word absent from m is kept as is.
// A word present in m is replaced when its replacement is exactly length
// characters long, and dropped otherwise (including the empty drop signal).
// Order of the surviving words is preserved.
func Localize(words []string, m domain.SpellingMap, length int) Result {
	res := Result{Words: make([]string, 0, len(words))}

	for _, w := range words {
		replacement, ok := m[w]
		if !ok {
			res.Words = append(res.Words, w)
			continue
		}

		if domain.WordLength(replacement) == length {
			res.Words = append(res.Words, replacement)
			res.Replaced++
			res.Diagnostics = append(res.Diagnostics, domain.Diagnostic{
				Word:        w,
				Action:      domain.ActionReplaced,
				Replacement: replacement,
			})
			continue
		}

		res.Dropped++
		res.Diagnostics = append(res.Diagnostics, domain.Diagnostic{
			Word:   w,
			Action: domain.ActionDropped,
			Reason: dropReason(replacement, length),
		})
	}

	return res
}

// Supplement returns the target words of exactly length characters that are
// not in any of the exclude lists. Target order is kept and duplicates are
// removed, so every returned word is unique.
func Supplement(targets []string, length int, exclude ...[]string) []string {
	seen := make(map[string]struct{})
	for _, list := range exclude {
		for _, w := range list {
			seen[w] = struct{}{}
		}
	}

	var out []string
	for _, w := range targets {
		if domain.WordLength(w) != length {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

func dropReason(replacement string, length int) string {
	if replacement == "" {
		return "no target spelling"
	}
	if domain.WordLength(replacement) < length {
		return "target spelling too short"
	}
	return "target spelling too long"
}
