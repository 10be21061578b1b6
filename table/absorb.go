package table

// AbsorbCounterexample implements spec §4.3 absorb_counterexample(w): for
// every non-empty prefix p of w with p ∉ S, adds p to S and extends R.
// ε is never added here since it is already guaranteed present by New.
//
// Prefixes are added shortest-first so that by the time a longer prefix
// p is added, all of its own prefixes are already members of S — keeping
// invariant 1 (prefix-closure of S) intact at every intermediate step,
// not just once absorption finishes.
func (t *Table) AbsorbCounterexample(w []string) {
	for length := 1; length <= len(w); length++ {
		prefix := append([]string(nil), w[:length]...)
		if !t.inS(prefix) {
			t.addAccessString(prefix)
		}
	}
}
