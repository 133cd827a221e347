package lemma

import (
	"strings"
	"unicode"
)

// Tokenize splits text into word and punctuation tokens:
//   - runs of letters, digits and combining marks form a word
//   - an apostrophe closes the word before it and stays attached (elision: "l'", "qu'")
//   - any other non-space rune is a token on its own
//   - whitespace separates tokens and is dropped
func Tokenize(text string) []string {
	var tokens []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}

	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r):
			cur.WriteRune(r)
		case isApostrophe(r):
			if cur.Len() == 0 {
				tokens = append(tokens, string(r))
				continue
			}
			cur.WriteRune(r)
			flush()
		case unicode.IsSpace(r):
			flush()
		default:
			flush()
			tokens = append(tokens, string(r))
		}
	}
	flush()

	return tokens
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}
