// Package corpus loads an optional JSON frequency corpus used to enrich or
// override the counts parsed from the primary text dictionary (§6). It
// never persists or replaces the symmetric-delete index itself — that
// remains a non-goal.
package corpus

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// Frequencies is a word -> count map parsed from a JSON object of the form
// {"word": count, ...}.
type Frequencies map[string]int64

// Load parses path as a flat JSON object mapping words to non-negative
// integer counts.
func Load(path string) (Frequencies, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: open %q: %w", path, err)
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("corpus: %q is not valid JSON", path)
	}

	result := gjson.ParseBytes(data)
	if !result.IsObject() {
		return nil, fmt.Errorf("corpus: %q does not contain a JSON object", path)
	}

	freqs := make(Frequencies)
	var parseErr error

	result.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.Number {
			parseErr = fmt.Errorf("corpus: %q: count for %q is not a number", path, key.String())
			return false
		}
		freqs[key.String()] = value.Int()
		return true
	})

	if parseErr != nil {
		return nil, parseErr
	}

	return freqs, nil
}

// Merge overlays overrides onto entries (parsed from the primary text
// dictionary): a shared word's count is replaced by the corpus's count;
// words present only in overrides are left out, since the text dictionary
// remains the authoritative word list (§6).
func Merge(entries map[string]int64, overrides Frequencies) {
	for word := range entries {
		if count, ok := overrides[word]; ok {
			entries[word] = count
		}
	}
}
