package domain

// SpellingMap maps a source-spelling word to its target spelling.
// An empty value is the drop signal: the word has no usable target form.
type SpellingMap map[string]string

// MappingPair is one key/value entry of a mapping file, kept in file order.
type MappingPair struct {
	Key   string
	Value string
}

// NewSpellingMap builds a lookup map from ordered pairs. Later duplicates win,
// matching how a JSON object with repeated keys decodes.
func NewSpellingMap(pairs []MappingPair) SpellingMap {
	m := make(SpellingMap, len(pairs))
	for _, p := range pairs {
		m[p.Key] = p.Value
	}
	return m
}

// MappingKeys returns the keys of pairs in file order, without duplicates.
func MappingKeys(pairs []MappingPair) []string {
	seen := make(map[string]struct{}, len(pairs))
	keys := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if _, ok := seen[p.Key]; ok {
			continue
		}
		seen[p.Key] = struct{}{}
		keys = append(keys, p.Key)
	}
	return keys
}

// WordSet builds a membership set from words.
func WordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Action is what a transform did to a single word.
type Action string

const (
	ActionReplaced Action = "replaced"
	ActionDropped  Action = "dropped"
	ActionAppended Action = "appended"
	ActionSkipped  Action = "skipped"
)

// Diagnostic records a per-word decision made by a transform.
type Diagnostic struct {
	Word        string
	Action      Action
	Replacement string // set for ActionReplaced
	Reason      string
}
