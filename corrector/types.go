// Package corrector orchestrates candidate generation, verification,
// ranking and top-K selection for spelling-correction queries. It provides
// two interchangeable Strategy implementations: Corrector (sub-linear,
// symmetric-delete index-backed) and LinearCorrector (brute-force, used as a
// correctness oracle).
package corrector

import (
	"errors"
	"fmt"
	"sort"
)

// ErrDistanceOutOfRange is returned when Correct is called with a
// maxEditDistance outside [0, buildMaxEditDistance].
var ErrDistanceOutOfRange = errors.New("corrector: maxEditDistance out of range")

// Suggestion is a single ranked correction candidate.
type Suggestion struct {
	Word      string
	Distance  int
	Frequency int64
}

func (s Suggestion) String() string {
	return fmt.Sprintf("%s - %d - %d", s.Word, s.Distance, s.Frequency)
}

// SuggestionList is a ranked slice of Suggestion.
type SuggestionList []Suggestion

func (sl SuggestionList) String() string {
	words := make([]string, len(sl))
	for i, s := range sl {
		words[i] = s.String()
	}
	out := "["
	for i, w := range words {
		if i > 0 {
			out += ", "
		}
		out += w
	}
	return out + "]"
}

// DistanceFunc computes the distance between two strings, returning a
// negative value if it exceeds maxDistance. The signature matches the
// teacher library's pluggable DistanceFunc lookup option.
type DistanceFunc func(a, b string, maxDistance int) int

// Verbosity controls how much of the ranked candidate list Correct
// returns. Ranking itself (§4.4) is unaffected by Verbosity — it only
// narrows which already-ranked candidates make it into the result.
type Verbosity int

const (
	// All returns up to topK ranked candidates (the default, and the
	// verbosity level the rest of this package's contract is defined in
	// terms of).
	All Verbosity = iota

	// Closest returns only the candidates tied at the smallest distance
	// found, still capped at topK.
	Closest

	// Top returns at most one candidate: the best-ranked suggestion.
	Top
)

// Strategy is the shared operation set for a correction backend: add
// entries one at a time, then answer correction queries against the
// accumulated dictionary.
type Strategy interface {
	AddEntry(word string, frequency int64) error
	Correct(input string, maxEditDistance, topK int, opts ...Option) (SuggestionList, error)
}

type params struct {
	distanceFunc DistanceFunc
	verbosity    Verbosity
}

// Option configures a single Correct call.
type Option func(*params)

// WithDistanceFunc overrides the distance function used to verify
// candidates. It allows callers to substitute, e.g., strmet.Levenshtein for
// the bundled banded OSA verifier.
func WithDistanceFunc(df DistanceFunc) Option {
	return func(p *params) { p.distanceFunc = df }
}

// WithVerbosity overrides how many of the ranked candidates are returned.
func WithVerbosity(v Verbosity) Option {
	return func(p *params) { p.verbosity = v }
}

func defaultParams(df DistanceFunc) *params {
	return &params{distanceFunc: df, verbosity: All}
}

// rank sorts candidates ascending by distance, then descending by
// frequency, with ties broken by first-seen (insertion) order — the
// total order §4.4 requires.
func rank(candidates []rankedCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Suggestion.Distance != b.Suggestion.Distance {
			return a.Suggestion.Distance < b.Suggestion.Distance
		}
		if a.Suggestion.Frequency != b.Suggestion.Frequency {
			return a.Suggestion.Frequency > b.Suggestion.Frequency
		}
		return a.insertionIndex < b.insertionIndex
	})
}

type rankedCandidate struct {
	Suggestion     Suggestion
	insertionIndex int
}

// applyVerbosity narrows a fully ranked, topK-capped list per v. Both
// Strategy implementations call this exact function so that ranking and
// verbosity filtering remain identical between them (oracle equivalence).
func applyVerbosity(ranked SuggestionList, v Verbosity, topK int) SuggestionList {
	if len(ranked) > topK {
		ranked = ranked[:topK]
	}

	switch v {
	case Top:
		if len(ranked) > 1 {
			ranked = ranked[:1]
		}
	case Closest:
		if len(ranked) > 0 {
			best := ranked[0].Distance
			i := 0
			for i < len(ranked) && ranked[i].Distance == best {
				i++
			}
			ranked = ranked[:i]
		}
	}

	return ranked
}
