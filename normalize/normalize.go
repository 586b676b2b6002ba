// Package normalize reduces visually-confusable Unicode input to a
// canonical skeleton before it is used as a symmetric-delete lookup key,
// using github.com/eskriett/confusables.
package normalize

import "github.com/eskriett/confusables"

// Normalizer skeletonizes query strings. A nil *Normalizer is never
// constructed by callers that want normalization disabled — Corrector and
// LinearCorrector simply leave their Normalizer field nil in that case.
type Normalizer struct{}

// New creates a Normalizer.
func New() *Normalizer {
	return &Normalizer{}
}

// Skeleton returns the confusables-normalized form of s, which is used as
// the canonical lookup key throughout a Correct call. The original input
// string is discarded once Skeleton is applied — only dictionary words
// (never skeletons) are ever returned as Suggestion.Word values.
func (n *Normalizer) Skeleton(s string) string {
	return confusables.Skeleton(s)
}
