package table

import (
	"errors"

	"github.com/coregx/lstar/alphabet"
	"github.com/coregx/lstar/automaton"
	"github.com/coregx/lstar/internal/conv"
)

// ErrNotClosed is returned by ToDFA when the table is not closed.
var ErrNotClosed = errors.New("table: not closed")

// ErrNotConsistent is returned by ToDFA when the table is not consistent.
var ErrNotConsistent = errors.New("table: not consistent")

// groupInfo is one row-equivalence class discovered while extracting a
// DFA: its interned id, canonical representative access string, and
// whether that class accepts.
type groupInfo struct {
	id        uint32
	repr      []string
	accepting bool
}

// ToDFA implements spec §4.3 to_dfa(): extracts the hypothesis DFA from a
// closed, consistent table. Q is built by grouping S by row vector; each
// group's canonical representative is its shortest, then
// lexicographically least, member. δ(row(s), a) locates the group whose
// row equals row(s·a), which closedness guarantees exists and consistency
// guarantees is independent of which representative of row(s) was used.
func (t *Table) ToDFA() (*automaton.DFA, error) {
	if closed, _ := t.IsClosed(); !closed {
		return nil, ErrNotClosed
	}
	if consistent, _ := t.IsConsistent(); !consistent {
		return nil, ErrNotConsistent
	}

	groups := make(map[uint32][]string) // group id -> member access-string keys
	for _, key := range t.sKeys {
		id := t.groupOf[key]
		groups[id] = append(groups[id], key)
	}

	infos := make([]groupInfo, 0, len(groups))
	for id, keys := range groups {
		var repr []string
		for _, k := range keys {
			w := t.words[k]
			if repr == nil || t.alpha.Less(w, repr) {
				repr = w
			}
		}
		// eWords[0] is always ε: it is added once at New() and E only ever
		// grows by append, so its index never changes.
		accepting := t.r[alphabet.Join(repr)][0]
		infos = append(infos, groupInfo{id: id, repr: repr, accepting: accepting})
	}
	// Deterministic state numbering: sort groups by their canonical
	// representative's length-then-lex order. ε is always its own group's
	// representative (it is the unique shortest string) and always sorts
	// first, so the start state is always state 0.
	sortGroupInfos(t.alpha, infos)

	idToState := make(map[uint32]int, len(infos))
	for i, info := range infos {
		idToState[info.id] = i
	}

	numStates := len(infos)
	delta := make([]automaton.StateID, numStates*t.alpha.Len())
	accept := make([]bool, numStates)
	labels := make([]string, numStates)

	for i, info := range infos {
		accept[i] = info.accepting
		labels[i] = alphabet.Join(info.repr)
		for a := 0; a < t.alpha.Len(); a++ {
			border := alphabet.Concat(info.repr, []string{t.alpha.Symbol(a)})
			row := t.r[alphabet.Join(border)]
			gid := t.groupID(row)
			target, ok := idToState[gid]
			if !ok {
				// Unreachable given the IsClosed() check above; surfaced
				// as an invariant violation rather than silently ignored.
				return nil, ErrNotClosed
			}
			delta[i*t.alpha.Len()+a] = automaton.StateID(conv.IntToUint32(target))
		}
	}

	startID := t.groupOf[alphabet.Join([]string{})]
	start := automaton.StateID(conv.IntToUint32(idToState[startID]))

	return automaton.New(t.alpha.Symbols(), numStates, start, accept, delta, labels), nil
}

func sortGroupInfos(alpha alphabet.Alphabet, infos []groupInfo) {
	for i := 1; i < len(infos); i++ {
		j := i
		for j > 0 && alpha.Less(infos[j].repr, infos[j-1].repr) {
			infos[j], infos[j-1] = infos[j-1], infos[j]
			j--
		}
	}
}
