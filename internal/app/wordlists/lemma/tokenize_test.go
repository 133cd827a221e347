package lemma

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "single word", in: "maison", want: []string{"maison"}},
		{name: "accents kept", in: "étaient", want: []string{"étaient"}},
		{name: "ligature kept", in: "cœur", want: []string{"cœur"}},
		{name: "elision", in: "l'eau", want: []string{"l'", "eau"}},
		{name: "typographic apostrophe", in: "qu’il", want: []string{"qu’", "il"}},
		{name: "hyphen splits", in: "peut-être", want: []string{"peut", "-", "être"}},
		{name: "whitespace", in: "  deux  mots ", want: []string{"deux", "mots"}},
		{name: "punctuation", in: "bulv.", want: []string{"bulv", "."}},
		{name: "digits", in: "h2o", want: []string{"h2o"}},
		{name: "leading apostrophe", in: "'tis", want: []string{"'", "tis"}},
		{name: "empty", in: "", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Tokenize(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
