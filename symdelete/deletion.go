// Package symdelete implements the symmetric-delete indexing technique: a
// deletion-edit neighborhood is precomputed for every dictionary word so
// that, at query time, the same neighborhood computed for a misspelled
// input overlaps with it whenever the two are within the build edit
// distance.
package symdelete

// Enumerator produces the set of deletion-edits of a word up to a fixed
// depth, optionally truncating the word to a prefix length first.
type Enumerator struct {
	// Depth is the maximum number of deletions to apply (the symmetric-
	// delete build/query distance).
	Depth int

	// PrefixLength caps the number of leading code units considered when
	// enumerating a word's neighborhood; 0 disables truncation.
	PrefixLength int
}

// NewEnumerator creates an Enumerator with the given depth and prefix cap.
func NewEnumerator(depth, prefixLength int) *Enumerator {
	return &Enumerator{Depth: depth, PrefixLength: prefixLength}
}

// Enumerate returns the deletion-key set for word: word itself, the empty
// key (when the prefix-truncated word's length is at most Depth), and
// every string reachable by deleting 1..Depth distinct positions from the
// (possibly prefix-truncated) word.
//
// Truncation happens before the deletion set is generated; the full,
// untruncated word is still included as a key so an exact-length match is
// never lost purely to the prefix cap.
func (e *Enumerator) Enumerate(word string) []string {
	runes := []rune(word)

	truncated := runes
	if e.PrefixLength > 0 && len(runes) > e.PrefixLength {
		truncated = runes[:e.PrefixLength]
	}

	seen := map[string]bool{word: true}
	keys := []string{word}

	if len(truncated) <= e.Depth {
		if _, ok := seen[""]; !ok {
			seen[""] = true
			keys = append(keys, "")
		}
	}

	// BFS over deletion depth: the frontier at depth k is every string
	// obtainable by deleting k distinct positions from truncated; the
	// visited set (seen) is the accumulated result and also prevents
	// re-expanding an edit already produced by a different deletion order.
	frontier := []string{string(truncated)}
	if _, ok := seen[string(truncated)]; !ok {
		seen[string(truncated)] = true
		keys = append(keys, string(truncated))
	}

	for depth := 0; depth < e.Depth; depth++ {
		var next []string
		for _, s := range frontier {
			sr := []rune(s)
			for i := range sr {
				edit := string(append(append([]rune{}, sr[:i]...), sr[i+1:]...))
				if seen[edit] {
					continue
				}
				seen[edit] = true
				keys = append(keys, edit)
				next = append(next, edit)
			}
		}
		if len(next) == 0 {
			break
		}
		frontier = next
	}

	return keys
}
