package corrector

import (
	"fmt"

	"github.com/dmitry-maltsev/spelling-corrector/editdistance"
	"github.com/dmitry-maltsev/spelling-corrector/normalize"
	"github.com/dmitry-maltsev/spelling-corrector/symdelete"
)

// LinearCorrector is the brute-force reference Strategy: every dictionary
// word is checked on every query. It exists as a correctness oracle for
// Corrector (§8, "Oracle equivalence") and is never the fast path.
type LinearCorrector struct {
	maxBuildDistance int
	verifier         *editdistance.Verifier

	freq  map[string]int64
	order []string

	Normalizer *normalize.Normalizer
}

// NewLinear creates a LinearCorrector whose Correct calls are bounded by
// the same maxBuildDistance a paired Corrector was built with:
// Correct(_, k, _) fails with ErrDistanceOutOfRange for k > maxBuildDistance
// — matching §4.4's precondition.
func NewLinear(maxBuildDistance int) *LinearCorrector {
	return &LinearCorrector{
		maxBuildDistance: maxBuildDistance,
		verifier:         editdistance.New(),
		freq:             make(map[string]int64),
	}
}

// AddEntry adds word to the dictionary. It fails with
// symdelete.ErrDuplicateWord if word is already present, matching
// symdelete.Index.Add's contract.
func (l *LinearCorrector) AddEntry(word string, frequency int64) error {
	if _, exists := l.freq[word]; exists {
		return fmt.Errorf("add %q: %w", word, symdelete.ErrDuplicateWord)
	}
	l.freq[word] = frequency
	l.order = append(l.order, word)
	return nil
}

// Correct implements Strategy.Correct by scanning every dictionary word
// instead of going through a symmetric-delete index.
func (l *LinearCorrector) Correct(input string, maxEditDistance, topK int, opts ...Option) (SuggestionList, error) {
	if maxEditDistance < 0 || maxEditDistance > l.maxBuildDistance {
		return nil, fmt.Errorf("Correct(%q, %d): %w", input, maxEditDistance, ErrDistanceOutOfRange)
	}

	lookupKey := input
	if l.Normalizer != nil {
		lookupKey = l.Normalizer.Skeleton(input)
	}

	p := defaultParams(l.verifier.Distance)
	for _, opt := range opts {
		opt(p)
	}

	var candidates []rankedCandidate

	for idx, word := range l.order {
		if word == lookupKey {
			candidates = append(candidates, rankedCandidate{
				Suggestion:     Suggestion{Word: word, Distance: 0, Frequency: l.freq[word]},
				insertionIndex: idx,
			})
			continue
		}

		if maxEditDistance == 0 {
			continue
		}

		dist := p.distanceFunc(lookupKey, word, maxEditDistance)
		if dist < 0 {
			continue
		}

		candidates = append(candidates, rankedCandidate{
			Suggestion:     Suggestion{Word: word, Distance: dist, Frequency: l.freq[word]},
			insertionIndex: idx,
		})
	}

	rank(candidates)

	out := make(SuggestionList, len(candidates))
	for i, rc := range candidates {
		out[i] = rc.Suggestion
	}

	return applyVerbosity(out, p.verbosity, topK), nil
}
