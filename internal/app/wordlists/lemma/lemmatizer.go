// Package lemma extracts fixed-length dictionary lemmas from a raw word corpus.
// Morphological analysis is delegated to a Lemmatizer; this package only
// normalizes, filters and deduplicates what the Lemmatizer returns.
package lemma

// Token is one token of an analyzed input together with its lemma.
type Token struct {
	Text  string
	Lemma string
}

// Lemmatizer analyzes a piece of text into zero or more lemmatized tokens.
type Lemmatizer interface {
	Lemmatize(text string) []Token
}

// LemmatizerFunc adapts a plain function to the Lemmatizer interface.
type LemmatizerFunc func(text string) []Token

// Lemmatize calls f(text).
func (f LemmatizerFunc) Lemmatize(text string) []Token { return f(text) }
