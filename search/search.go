// Package search implements the bounded counterexample search that stands
// in for a real equivalence oracle (spec §4.4): it exhaustively enumerates
// Σ* by increasing length, comparing a hypothesis DFA's acceptance against
// the membership oracle T, and returns the first disagreement found
// within budget.
//
// This mirrors the bounded-resource search loop of coregex's
// BoundedBacktracker (nfa/backtrack.go): a hard counter gates the hot
// loop instead of letting it run unbounded, the same "cap the exhaustive
// walk" idiom applied here to string enumeration instead of bit-vector
// visited-state tracking.
package search

import (
	"github.com/coregx/lstar/alphabet"
	"github.com/coregx/lstar/automaton"
	"github.com/coregx/lstar/oracle"
)

// Search holds the fixed parameters of a bounded counterexample search.
type Search struct {
	alpha         alphabet.Alphabet
	adapter       *oracle.Adapter
	maxCELen      int // 0 means "not supplied"
	maxCESearches int
}

// New builds a Search over the given alphabet and oracle adapter. maxCELen
// may be 0 to mean "not supplied" (spec §6); maxCESearches must be > 0.
func New(alpha alphabet.Alphabet, adapter *oracle.Adapter, maxCELen, maxCESearches int) *Search {
	return &Search{alpha: alpha, adapter: adapter, maxCELen: maxCELen, maxCESearches: maxCESearches}
}

// EffectiveMaxLen returns L_eff for this search's configured budget.
func (s *Search) EffectiveMaxLen() int {
	return EffectiveMaxLen(s.alpha.Len(), s.maxCELen, s.maxCESearches)
}

// Find enumerates Σ^2, Σ^3, ... up to L_eff, in length-then-lexicographic
// order, looking for a word w where hypothesis.Accepts(w) disagrees with
// the oracle. Returns (true, w) on the first disagreement, or (false, nil)
// once L_eff is exhausted or maxCESearches T-queries have been spent,
// whichever comes first.
//
// Lengths 0 and 1 are never enumerated: they are already covered by
// S ∪ S·Σ with E = {ε} at table initialization, so by the time Find runs
// against a closed, consistent hypothesis, a disagreement at those lengths
// is structurally impossible (spec §4.4).
func (s *Search) Find(hypothesis *automaton.DFA) (bool, []string) {
	leff := s.EffectiveMaxLen()
	queries := 0

	for length := 2; length <= leff; length++ {
		od := newOdometer(s.alpha.Len(), length)
		for {
			if queries >= s.maxCESearches {
				return false, nil
			}
			word := od.word(s.alpha)
			oracleAnswer := s.adapter.Query(alphabet.Join(word))
			queries++

			if hypothesis.Accepts(word) != oracleAnswer {
				return true, word
			}
			if !od.advance() {
				break
			}
		}
	}
	return false, nil
}
