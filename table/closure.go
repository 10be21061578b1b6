package table

import "github.com/coregx/lstar/alphabet"

// IsClosed implements spec §4.3 is_closed(): true iff every s∈S, a∈Σ has
// some s'∈S with row(s·a) = row(s'); otherwise returns (false, s·a) for
// the length-then-lexicographically least such witness.
func (t *Table) IsClosed() (bool, []string) {
	for _, s := range t.sortedS() {
		for i := 0; i < t.alpha.Len(); i++ {
			border := alphabet.Concat(s, []string{t.alpha.Symbol(i)})
			key := alphabet.Join(border)
			id := t.groupID(t.r[key])
			if !t.groupsInS.Contains(id) {
				return false, border
			}
		}
	}
	return true, nil
}

// Close implements spec §4.3 close(witness): promotes witness (a border
// row previously absent from S) into S, extending R to cover its own
// one-symbol border extensions.
func (t *Table) Close(witness []string) {
	if t.inS(witness) {
		return
	}
	t.addAccessString(witness)
}
