// Package automaton implements the immutable hypothesis DFA produced by a
// learning session: a total transition table over an abstract alphabet,
// with no dependency on the table that built it.
package automaton

import (
	"fmt"
	"sort"
	"strings"
)

// StateID uniquely identifies a DFA state. States are numbered densely
// from 0, so StateID doubles as an index into the accept set and the
// flat transition table.
type StateID uint32

// InvalidState is returned by lookups that find no matching state.
const InvalidState StateID = 0xFFFFFFFF

// DFA is an immutable, total deterministic finite automaton (Σ, Q, q0, F, δ).
//
// δ is stored as a flat table of size |Q|*|Σ|, the same dense
// state*alphabetLen+symbolIndex layout coregex's onepass DFA uses for its
// transition table, since δ here is total and small enough that a flat
// table is always cheaper than a map.
type DFA struct {
	alphabetLen int
	symbols     []string         // Σ in fixed order; symbols[i] has index i
	delta       []StateID        // size len(accept)*alphabetLen
	accept      []bool           // size |Q|, accept[q] iff q ∈ F
	start       StateID          // q0
	labels      []string         // optional: labels[q] is q's canonical access string, for String()
}

// New builds a DFA from its raw components. Callers (table.ToDFA) are
// responsible for δ's totality and for q0/F referring to valid states;
// New does not re-validate invariants 4-5 of the observation table, which
// is what guarantees δ is well-defined in the first place.
func New(symbols []string, numStates int, start StateID, accept []bool, delta []StateID, labels []string) *DFA {
	return &DFA{
		alphabetLen: len(symbols),
		symbols:     symbols,
		delta:       delta,
		accept:      accept,
		start:       start,
		labels:      labels,
	}
}

// NumStates returns |Q|.
func (d *DFA) NumStates() int {
	return len(d.accept)
}

// Start returns q0.
func (d *DFA) Start() StateID {
	return d.start
}

// States returns every state id, 0..|Q|-1, in order.
func (d *DFA) States() []StateID {
	states := make([]StateID, d.NumStates())
	for i := range states {
		states[i] = StateID(i)
	}
	return states
}

// IsAccepting reports whether q ∈ F.
func (d *DFA) IsAccepting(q StateID) bool {
	return d.accept[q]
}

// Label returns the canonical access string chosen for q, if the DFA was
// built with labels (table.ToDFA always supplies them); otherwise "".
func (d *DFA) Label(q StateID) string {
	if int(q) >= len(d.labels) {
		return ""
	}
	return d.labels[q]
}

// Transition returns δ(q, symbol). Panics if symbol ∉ Σ, mirroring the
// invariant that δ is only ever evaluated with alphabet-valid symbols.
func (d *DFA) Transition(q StateID, symbol string) StateID {
	idx := d.symbolIndex(symbol)
	return d.delta[int(q)*d.alphabetLen+idx]
}

// TransitionByIndex returns δ(q, Σ[symbolIdx]) without a symbol lookup,
// used by the counterexample search's hot loop.
func (d *DFA) TransitionByIndex(q StateID, symbolIdx int) StateID {
	return d.delta[int(q)*d.alphabetLen+symbolIdx]
}

func (d *DFA) symbolIndex(symbol string) int {
	for i, s := range d.symbols {
		if s == symbol {
			return i
		}
	}
	panic(fmt.Sprintf("automaton: symbol %q not in Σ", symbol))
}

// Accepts evaluates the DFA over w, a sequence of Σ symbols, starting at
// q0. Time is Θ(|w|).
func (d *DFA) Accepts(w []string) bool {
	q := d.start
	for _, sym := range w {
		q = d.Transition(q, sym)
	}
	return d.accept[q]
}

// Iterate traverses w starting from state q and returns the end state,
// without consulting F. Used by the counterexample search to evaluate
// incrementally, one symbol at a time, instead of re-running Accepts from
// q0 for every candidate prefix.
func (d *DFA) Iterate(q StateID, w []string) StateID {
	for _, sym := range w {
		q = d.Transition(q, sym)
	}
	return q
}

// String renders a deterministic textual dump of the DFA: start state,
// then every state's transitions in Σ order, states sorted by id. This is
// diagnostic output only — rendering/visualization is an external
// collaborator per spec.
func (d *DFA) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "DFA(start=%d, states=%d)", d.start, d.NumStates())

	ids := make([]int, d.NumStates())
	for i := range ids {
		ids[i] = i
	}
	sort.Ints(ids)

	for _, id := range ids {
		q := StateID(id)
		marker := " "
		if d.accept[q] {
			marker = "*"
		}
		label := d.Label(q)
		if label == "" {
			label = "ε"
		}
		fmt.Fprintf(&sb, "\n %s%d [%s]:", marker, q, label)
		for i, sym := range d.symbols {
			next := d.TransitionByIndex(q, i)
			fmt.Fprintf(&sb, " %s->%d", sym, next)
		}
	}
	return sb.String()
}

// AlphabetLen returns |Σ| as used by δ's flat layout.
func (d *DFA) AlphabetLen() int {
	return d.alphabetLen
}
