// Package alphabet represents the finite symbol set Σ a learning session
// operates over.
//
// The order symbols appear in is semantically significant: it fixes the
// length-then-lexicographic total order the observation table and the
// counterexample search use for every deterministic tie-break (witness
// selection, experiment selection, enumeration order).
package alphabet

import (
	"fmt"
	"sort"
)

// Alphabet is an ordered, duplicate-free finite set of symbols.
//
// Symbols are opaque strings from the caller's perspective (a "symbol"
// need not be a single character; callers that want single-byte alphabets
// just use one-rune strings, e.g. "a", "b"). Alphabet only assigns each
// symbol a stable index and exposes the order for enumeration.
type Alphabet struct {
	symbols []string
	index   map[string]int
}

// New builds an Alphabet from an ordered, duplicate-free symbol sequence.
// Returns an error if symbols is empty or contains a duplicate.
func New(symbols []string) (Alphabet, error) {
	if len(symbols) == 0 {
		return Alphabet{}, fmt.Errorf("alphabet: empty symbol set")
	}

	index := make(map[string]int, len(symbols))
	for i, sym := range symbols {
		if _, dup := index[sym]; dup {
			return Alphabet{}, fmt.Errorf("alphabet: duplicate symbol %q", sym)
		}
		index[sym] = i
	}

	cp := make([]string, len(symbols))
	copy(cp, symbols)

	return Alphabet{symbols: cp, index: index}, nil
}

// Len returns |Σ|.
func (a Alphabet) Len() int {
	return len(a.symbols)
}

// Symbol returns the symbol at position i in the fixed order, i.e. Σ[i].
func (a Alphabet) Symbol(i int) string {
	return a.symbols[i]
}

// IndexOf returns the stable index of sym, and false if sym ∉ Σ.
func (a Alphabet) IndexOf(sym string) (int, bool) {
	i, ok := a.index[sym]
	return i, ok
}

// Symbols returns the symbols in their fixed order. The returned slice must
// not be mutated by the caller.
func (a Alphabet) Symbols() []string {
	return a.symbols
}

// Less reports whether string u orders before string v under the
// length-then-lexicographic order induced by Σ's symbol order: shorter
// strings first, then symbol-by-symbol comparison using each symbol's
// index in Σ.
//
// u and v must be sequences of Σ symbols (e.g. table access strings or
// search candidates); behavior is undefined otherwise.
func (a Alphabet) Less(u, v []string) bool {
	if len(u) != len(v) {
		return len(u) < len(v)
	}
	for i := range u {
		iu, ju := a.index[u[i]], a.index[v[i]]
		if iu != ju {
			return iu < ju
		}
	}
	return false
}

// SortWords sorts a slice of symbol-sequences in place using Σ's
// length-then-lexicographic order.
func (a Alphabet) SortWords(words [][]string) {
	sort.SliceStable(words, func(i, j int) bool {
		return a.Less(words[i], words[j])
	})
}

// Join builds the canonical map key for a symbol sequence (an access
// string, an experiment, or a full query word). A unit separator (0x1F)
// keeps multi-character symbols unambiguous while leaving single-character
// alphabets ("a","b",...) visually unchanged when printed; ε joins to "".
//
// Table and Search use Join(word) as the only place a sequence's identity
// is compared, so two symbol sequences are the same table key iff their
// Join results are equal.
func Join(symbols []string) string {
	if len(symbols) == 0 {
		return ""
	}
	out := symbols[0]
	for _, s := range symbols[1:] {
		out += "\x1f" + s
	}
	return out
}

// Concat returns a new symbol sequence equal to u followed by v, without
// mutating either argument.
func Concat(u, v []string) []string {
	out := make([]string, 0, len(u)+len(v))
	out = append(out, u...)
	out = append(out, v...)
	return out
}
