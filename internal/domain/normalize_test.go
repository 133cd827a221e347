package domain

import "testing"

func TestNormalizeLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trim spaces", input: "  hello  ", want: "hello"},
		{name: "trim carriage return", input: "apple\r", want: "apple"},
		{name: "case preserved", input: "Paris", want: "Paris"},
		{name: "empty string", input: "", want: ""},
		{name: "only spaces", input: "   ", want: ""},
		{name: "tabs and spaces", input: "\t cœur \t", want: "cœur"},
		{name: "decomposed s-caron composed", input: "kaks\u030c", want: "kak\u0161"},
		{name: "decomposed e-acute composed", input: "e\u0301le\u0300ve", want: "\u00e9l\u00e8ve"},
		{name: "already composed unchanged", input: "\u0101bols", want: "\u0101bols"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeLine(tt.input); got != tt.want {
				t.Errorf("NormalizeLine(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsAlnum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"apple", true},
		{"kakši", true},
		{"coeur", true},
		{"cœur", true},
		{"abc1", true},
		{"", false},
		{"abc.", false},
		{"bulv.", false},
		{"l'eau", false},
		{"peut-être", false},
		{"two words", false},
		{"s\u030c", false}, // combining mark is not a letter
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := IsAlnum(tt.input); got != tt.want {
				t.Errorf("IsAlnum(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestWordLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  int
	}{
		{"apple", 5},
		{"kakši", 5},
		{"cœur", 4},
		{"coeur", 5},
		{"", 0},
	}
	for _, tt := range tests {
		if got := WordLength(tt.input); got != tt.want {
			t.Errorf("WordLength(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
