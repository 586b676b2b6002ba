package symdelete

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Wrap with fmt.Errorf("...: %w", ErrX) for context;
// callers compare with errors.Is.
var (
	ErrDuplicateWord = errors.New("symdelete: word already present in index")
	ErrUnknownWord   = errors.New("symdelete: word not present in index")
)

// KeyScheme selects how a deletion-edit is turned into a posting-list key.
type KeyScheme int

const (
	// KeyExact stores the edit string itself as the key. Guarantees zero
	// false-positive candidates (modulo the symmetric-delete technique's
	// own pruning).
	KeyExact KeyScheme = iota

	// KeyFingerprint folds a 32-bit FNV-1a hash of the edit with a length
	// tag in its low bits, trading a small, bounded false-positive rate
	// for a smaller and faster posting-list map. The edit-distance
	// verifier remains the sole gatekeeper of correctness under this
	// scheme.
	KeyFingerprint
)

// Index maps deletion-edit keys to the dictionary words that generate them,
// and tracks each word's frequency. It is mutable only during the build
// phase (Add); after that it is read-only and may be shared by multiple
// Correctors.
type Index struct {
	scheme    KeyScheme
	enumerate *Enumerator

	freq    map[string]int64
	posting map[string][]string
}

// New creates an empty Index. depth is the build-time symmetric-delete
// depth (maxEditDistance) and prefixLength the prefix cap passed to the
// DeletionEnumerator; both must match what Correct uses at query time.
func New(depth, prefixLength int, scheme KeyScheme) *Index {
	return &Index{
		scheme:    scheme,
		enumerate: NewEnumerator(depth, prefixLength),
		freq:      make(map[string]int64),
		posting:   make(map[string][]string),
	}
}

// Depth returns the build-time symmetric-delete depth.
func (ix *Index) Depth() int { return ix.enumerate.Depth }

// PrefixLength returns the build-time prefix cap.
func (ix *Index) PrefixLength() int { return ix.enumerate.PrefixLength }

// Scheme returns the key representation this index was built with.
func (ix *Index) Scheme() KeyScheme { return ix.scheme }

// Add inserts word with the given frequency. It fails with ErrDuplicateWord
// if word is already present.
func (ix *Index) Add(word string, frequency int64) error {
	if _, exists := ix.freq[word]; exists {
		return fmt.Errorf("add %q: %w", word, ErrDuplicateWord)
	}

	ix.freq[word] = frequency

	for _, edit := range ix.enumerate.Enumerate(word) {
		key := ix.key(edit)
		list := ix.posting[key]

		// A single word's deletion-key set is already deduplicated by the
		// enumerator, so no membership scan is required here — but under
		// KeyFingerprint two distinct edits of the SAME word could collide
		// onto one key, so guard against a double append regardless.
		duplicate := false
		for _, w := range list {
			if w == word {
				duplicate = true
				break
			}
		}
		if !duplicate {
			list = append(list, word)
		}
		// Store the (possibly reallocated) slice back under the key: Go's
		// append may return a new backing array, and the map entry must be
		// refreshed or the growth is silently lost.
		ix.posting[key] = list
	}

	return nil
}

// Lookup returns the posting list for key, or nil if the key is absent.
func (ix *Index) Lookup(key string) []string {
	return ix.posting[ix.key(key)]
}

// FrequencyOf returns the frequency recorded for word, or ErrUnknownWord if
// word was never added.
func (ix *Index) FrequencyOf(word string) (int64, error) {
	f, exists := ix.freq[word]
	if !exists {
		return 0, fmt.Errorf("frequency of %q: %w", word, ErrUnknownWord)
	}
	return f, nil
}

// Contains reports whether word was added to the index.
func (ix *Index) Contains(word string) bool {
	_, exists := ix.freq[word]
	return exists
}

// Size returns the number of distinct deletion keys stored.
func (ix *Index) Size() int { return len(ix.posting) }

// Words returns the number of distinct words stored.
func (ix *Index) Words() int { return len(ix.freq) }

// EnumerateQuery returns the deletion-key set for a query string, using
// maxEditDistance as the deletion depth and the same prefix cap as the
// build. Callers doing a symmetric-delete
// lookup enumerate the query once and call Lookup for each resulting key.
func (ix *Index) EnumerateQuery(input string, maxEditDistance int) []string {
	e := NewEnumerator(maxEditDistance, ix.enumerate.PrefixLength)
	return e.Enumerate(input)
}

func (ix *Index) key(edit string) string {
	if ix.scheme == KeyExact {
		return edit
	}
	return fingerprint(edit)
}

// fingerprint computes a stable, length-salted 32-bit FNV-1a fingerprint of
// edit, formatted as a short string so it can share the same map type as
// exact-string keys. The length tag folded into the low two bits is the
// edit's length modulo 4, so it keeps edits whose lengths differ by 1, 2 or
// 3 from colliding structurally; it does not eliminate collisions between
// edits whose lengths are equal or differ by a multiple of 4, which the
// edit-distance verifier resolves downstream.
func fingerprint(edit string) string {
	var h uint32 = 2166136261
	n := 0
	for _, r := range edit {
		h ^= uint32(r)
		h *= 16777619
		n++
	}
	lengthTag := uint32(n) & 0x3
	folded := (h &^ 0x3) | lengthTag
	return fmt.Sprintf("%08x", folded)
}
