package corrector

import (
	"fmt"

	"github.com/dmitry-maltsev/spelling-corrector/editdistance"
	"github.com/dmitry-maltsev/spelling-corrector/normalize"
	"github.com/dmitry-maltsev/spelling-corrector/symdelete"
)

// Corrector is the symmetric-delete-backed Strategy: candidate generation
// goes through the index's deletion-key postings instead of a full
// dictionary scan.
type Corrector struct {
	index    *symdelete.Index
	verifier *editdistance.Verifier

	order      []string
	orderIndex map[string]int

	Normalizer *normalize.Normalizer
}

// New creates a Corrector backed by index. index must not be mutated
// concurrently with calls to Correct.
func New(index *symdelete.Index) *Corrector {
	return &Corrector{
		index:      index,
		verifier:   editdistance.New(),
		orderIndex: make(map[string]int),
	}
}

// AddEntry adds word to the underlying index and records its insertion
// order for ranking tie-breaks.
func (c *Corrector) AddEntry(word string, frequency int64) error {
	if err := c.index.Add(word, frequency); err != nil {
		return err
	}
	c.orderIndex[word] = len(c.order)
	c.order = append(c.order, word)
	return nil
}

// Correct implements Strategy.Correct per §4.4: exact-match short circuit,
// symmetric-delete candidate generation via the index's deletion-key
// postings, bounded edit-distance verification, ranking, and a topK cap.
func (c *Corrector) Correct(input string, maxEditDistance, topK int, opts ...Option) (SuggestionList, error) {
	if maxEditDistance < 0 || maxEditDistance > c.index.Depth() {
		return nil, fmt.Errorf("Correct(%q, %d): %w", input, maxEditDistance, ErrDistanceOutOfRange)
	}

	lookupKey := input
	if c.Normalizer != nil {
		lookupKey = c.Normalizer.Skeleton(input)
	}

	p := defaultParams(c.verifier.Distance)
	for _, opt := range opts {
		opt(p)
	}

	var candidates []rankedCandidate

	seen := map[string]bool{lookupKey: true}

	if freq, err := c.index.FrequencyOf(lookupKey); err == nil {
		candidates = append(candidates, rankedCandidate{
			Suggestion:     Suggestion{Word: lookupKey, Distance: 0, Frequency: freq},
			insertionIndex: c.orderIndex[lookupKey],
		})
	}

	if maxEditDistance > 0 {
		inputLen := runeLen(lookupKey)

		for _, key := range c.index.EnumerateQuery(lookupKey, maxEditDistance) {
			for _, candidate := range c.index.Lookup(key) {
				if seen[candidate] {
					continue
				}
				seen[candidate] = true

				if abs(runeLen(candidate)-inputLen) > maxEditDistance {
					continue
				}

				dist := p.distanceFunc(lookupKey, candidate, maxEditDistance)
				if dist < 0 {
					continue
				}

				freq, err := c.index.FrequencyOf(candidate)
				if err != nil {
					continue
				}

				candidates = append(candidates, rankedCandidate{
					Suggestion:     Suggestion{Word: candidate, Distance: dist, Frequency: freq},
					insertionIndex: c.orderIndex[candidate],
				})
			}
		}
	}

	rank(candidates)

	out := make(SuggestionList, len(candidates))
	for i, rc := range candidates {
		out[i] = rc.Suggestion
	}

	return applyVerbosity(out, p.verbosity, topK), nil
}

func runeLen(s string) int { return len([]rune(s)) }

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
