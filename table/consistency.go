package table

import "github.com/coregx/lstar/alphabet"

// IsConsistent implements spec §4.3 is_consistent(): searches for
// s1,s2∈S with row(s1)=row(s2) but row(s1·a)≠row(s2·a) for some a∈Σ;
// returns (false, a·e) for the experiment that exposes the disagreement.
// Among all disagreements found — every distinguishing column, for every
// symbol, for every pair within a group, not just the first column hit —
// the lexicographically least a·e is returned (spec §4.3 refinement
// algorithm, step 2).
//
// It suffices to compare every group member against one representative:
// if s1's border row matches the representative's for every a, and s2's
// does too, then s1 and s2 agree with each other transitively, so any
// inconsistency within a group shows up against the representative.
func (t *Table) IsConsistent() (bool, []string) {
	groups := make(map[uint32][]string)
	for _, key := range t.sKeys {
		id := t.groupOf[key]
		groups[id] = append(groups[id], key)
	}

	var candidates [][]string
	for _, members := range groups {
		if len(members) < 2 {
			continue
		}
		repr := t.words[members[0]]
		for _, otherKey := range members[1:] {
			other := t.words[otherKey]
			for i := 0; i < t.alpha.Len(); i++ {
				sym := t.alpha.Symbol(i)
				row1 := t.r[alphabet.Join(alphabet.Concat(repr, []string{sym}))]
				row2 := t.r[alphabet.Join(alphabet.Concat(other, []string{sym}))]
				for j := range row1 {
					if row1[j] != row2[j] {
						candidates = append(candidates, alphabet.Concat([]string{sym}, t.eWords[j]))
					}
				}
			}
		}
	}

	if len(candidates) == 0 {
		return true, nil
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if t.alpha.Less(c, best) {
			best = c
		}
	}
	return false, best
}

// MakeConsistent implements spec §4.3 make_consistent(new_experiment):
// appends the experiment to E and extends R accordingly.
func (t *Table) MakeConsistent(experiment []string) {
	t.addExperiment(experiment)
}
