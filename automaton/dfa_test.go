package automaton

import "testing"

// buildEvenEvenDFA builds the classic 4-state "even #a and even #b" DFA
// over Σ={a,b}, used as a fixture across several tests (mirrors scenario
// S1 of the learner's end-to-end suite).
func buildEvenEvenDFA() *DFA {
	symbols := []string{"a", "b"}
	// states: 0=(even,even) start+accept, 1=(odd,even), 2=(even,odd), 3=(odd,odd)
	// a toggles #a parity, b toggles #b parity
	delta := []StateID{
		1, 2, // state 0: a->1, b->2
		0, 3, // state 1: a->0, b->3
		3, 0, // state 2: a->3, b->0
		2, 1, // state 3: a->2, b->1
	}
	accept := []bool{true, false, false, false}
	labels := []string{"", "a", "b", "ab"}
	return New(symbols, 4, 0, accept, delta, labels)
}

func TestDFA_Accepts(t *testing.T) {
	d := buildEvenEvenDFA()

	tests := []struct {
		w    []string
		want bool
	}{
		{[]string{}, true},
		{[]string{"a"}, false},
		{[]string{"a", "a"}, true},
		{[]string{"a", "a", "b", "b"}, true},
		{[]string{"a", "b", "b"}, false},
	}

	for _, tt := range tests {
		if got := d.Accepts(tt.w); got != tt.want {
			t.Errorf("Accepts(%v) = %v, want %v", tt.w, got, tt.want)
		}
	}
}

func TestDFA_Iterate(t *testing.T) {
	d := buildEvenEvenDFA()

	mid := d.Iterate(d.Start(), []string{"a"})
	if mid != 1 {
		t.Fatalf("Iterate(q0, [a]) = %d, want 1", mid)
	}
	end := d.Iterate(mid, []string{"a"})
	if end != 0 {
		t.Fatalf("Iterate(1, [a]) = %d, want 0", end)
	}

	// Incremental iteration must agree with a from-scratch Accepts call.
	full := d.Iterate(d.Start(), []string{"a", "a", "b", "b"})
	if d.IsAccepting(full) != d.Accepts([]string{"a", "a", "b", "b"}) {
		t.Error("incremental Iterate disagrees with Accepts")
	}
}

func TestDFA_TotalAndReachable(t *testing.T) {
	d := buildEvenEvenDFA()

	// P3: δ total over Q x Σ, every state reachable from q0.
	reached := map[StateID]bool{d.Start(): true}
	frontier := []StateID{d.Start()}
	for len(frontier) > 0 {
		q := frontier[0]
		frontier = frontier[1:]
		for i := range d.symbols {
			next := d.TransitionByIndex(q, i)
			if next == InvalidState {
				t.Fatalf("δ not total: state %d has no transition on symbol index %d", q, i)
			}
			if !reached[next] {
				reached[next] = true
				frontier = append(frontier, next)
			}
		}
	}
	for q := 0; q < d.NumStates(); q++ {
		if !reached[StateID(q)] {
			t.Errorf("state %d not reachable from start", q)
		}
	}
}

func TestDFA_TransitionPanicsOnUnknownSymbol(t *testing.T) {
	d := buildEvenEvenDFA()
	defer func() {
		if recover() == nil {
			t.Error("Transition with unknown symbol should panic")
		}
	}()
	d.Transition(d.Start(), "z")
}

func TestDFA_String(t *testing.T) {
	d := buildEvenEvenDFA()
	s := d.String()
	if s == "" {
		t.Error("String() must not be empty")
	}
	// deterministic: calling twice yields identical output
	if s != d.String() {
		t.Error("String() must be deterministic")
	}
}
