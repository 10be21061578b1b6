// Package table implements the L* observation table (S, E, R) described in
// spec §3-§4.3: the prefix-closed access-string set S, the suffix-closed
// experiment set E, and the observation map R, together with the
// closedness/consistency checks and the hypothesis-DFA extraction that
// drive Angluin's refinement loop.
//
// The design mirrors coregex's lazy DFA (dfa/lazy): a growable structure
// that fills cells on demand (builder.go's staged construction), backed
// here by an oracle.Adapter instead of an NFA determinizer.
package table

import (
	"github.com/coregx/lstar/alphabet"
	"github.com/coregx/lstar/internal/sparse"
	"github.com/coregx/lstar/oracle"
)

// Table is the observation table (S, E, R) for a single learning session.
// It owns no oracle calls of its own; all membership queries go through
// the supplied Adapter, so the at-most-once guarantee (P4) holds across
// the whole session regardless of how many times the table refills cells.
type Table struct {
	alpha  alphabet.Alphabet
	oracle *oracle.Adapter

	sWords [][]string      // access strings, in the order they were added
	sKeys  []string        // alphabet.Join(sWords[i]) == sKeys[i]
	sSet   map[string]bool // sKeys membership, O(1)

	eWords [][]string // experiments, in the order they were added
	eKeys  []string

	words   map[string][]string // any known key (S ∪ S·Σ ∪ E) -> decoded word
	rowKeys []string            // every known row key, in the deterministic order first seen
	r       map[string][]bool   // key -> row vector, aligned with eWords order

	rowGroupID  map[string]uint32  // row-vector signature -> interned group id
	nextGroupID uint32
	groupsInS   *sparse.SparseSet   // group ids currently represented by some s ∈ S
	groupOf     map[string]uint32   // access-string key -> its group id (only for keys in S)
}

// New initializes a table for the given alphabet and oracle: S := {ε},
// E := {ε}, and R is filled over (S ∪ S·Σ) × E (spec §4.3 init).
func New(alpha alphabet.Alphabet, adapter *oracle.Adapter) *Table {
	t := &Table{
		alpha:      alpha,
		oracle:     adapter,
		sSet:       make(map[string]bool),
		words:      make(map[string][]string),
		r:          make(map[string][]bool),
		rowGroupID: make(map[string]uint32),
		groupsInS:  sparse.NewSparseSet(8),
		groupOf:    make(map[string]uint32),
	}

	t.addExperiment([]string{})
	t.addAccessString([]string{})
	return t
}

// Alphabet returns the Σ this table was built over.
func (t *Table) Alphabet() alphabet.Alphabet {
	return t.alpha
}

// S returns the current access-string set, in insertion order. The
// returned slices must not be mutated.
func (t *Table) S() [][]string {
	return t.sWords
}

// E returns the current experiment set, in insertion order. The returned
// slices must not be mutated.
func (t *Table) E() [][]string {
	return t.eWords
}

// Row returns the row vector for word (which must be a known key — some
// s ∈ S, some s·a border extension, or ε), aligned with E()'s order.
func (t *Table) Row(word []string) []bool {
	return t.r[alphabet.Join(word)]
}

// addExperiment appends e to E (assumed not already present) and extends
// every currently-known row by one bit, querying the oracle for each.
// Rows are extended in the deterministic order their keys were first seen
// (not map iteration order), keeping the session's query order a function
// of the refinement history alone (spec §5 "Ordering").
func (t *Table) addExperiment(e []string) {
	key := alphabet.Join(e)
	t.eWords = append(t.eWords, e)
	t.eKeys = append(t.eKeys, key)

	for _, uKey := range t.rowKeys {
		uWord := t.words[uKey]
		row := t.r[uKey]
		if len(row) == len(t.eWords) {
			continue // already has this column
		}
		q := alphabet.Join(alphabet.Concat(uWord, e))
		t.r[uKey] = append(row, t.oracle.Query(q))
	}
	// e's own row is filled against every column, not just the new one.
	t.fillRow(e)

	// Every row grew by one bit, so the group of each s ∈ S is re-interned.
	t.groupsInS.Clear()
	for _, sKey := range t.sKeys {
		t.registerGroup(sKey)
	}
}

// registerWord records word under key if it isn't already a known row,
// seeding an empty row vector and appending it to the deterministic
// rowKeys order.
func (t *Table) registerWord(key string, word []string) {
	if _, ok := t.words[key]; ok {
		return
	}
	t.words[key] = word
	t.r[key] = make([]bool, 0, len(t.eWords))
	t.rowKeys = append(t.rowKeys, key)
}

// addAccessString registers s as a known row (assumed not already in S)
// and fills rows for s and its |Σ| one-symbol border extensions s·a,
// against every current experiment in E.
func (t *Table) addAccessString(s []string) {
	key := alphabet.Join(s)
	t.sWords = append(t.sWords, s)
	t.sKeys = append(t.sKeys, key)
	t.sSet[key] = true

	t.fillRow(s)
	for i := 0; i < t.alpha.Len(); i++ {
		border := alphabet.Concat(s, []string{t.alpha.Symbol(i)})
		t.fillRow(border)
	}

	t.registerGroup(key)
}

// fillRow ensures word's row is present and fully populated against every
// experiment currently in E, querying the oracle for any missing cell.
func (t *Table) fillRow(word []string) {
	key := alphabet.Join(word)
	t.registerWord(key, word)
	row := t.r[key]
	for i := len(row); i < len(t.eWords); i++ {
		q := alphabet.Join(alphabet.Concat(word, t.eWords[i]))
		row = append(row, t.oracle.Query(q))
	}
	t.r[key] = row
}

// rowSignature returns a stable string encoding of a row vector, used to
// intern row-equivalence-class ids.
func rowSignature(row []bool) string {
	buf := make([]byte, len(row))
	for i, b := range row {
		if b {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

// groupID interns the row-equivalence-class id for the given row vector,
// assigning a new id the first time a signature is seen.
func (t *Table) groupID(row []bool) uint32 {
	sig := rowSignature(row)
	if id, ok := t.rowGroupID[sig]; ok {
		return id
	}
	id := t.nextGroupID
	t.nextGroupID++
	t.rowGroupID[sig] = id
	return id
}

// registerGroup records that key (which must already have a filled row)
// is an S-member of its row's equivalence class.
func (t *Table) registerGroup(key string) {
	id := t.groupID(t.r[key])
	t.groupOf[key] = id
	t.groupsInS.Insert(id)
}

// inS reports whether word is currently an access string.
func (t *Table) inS(word []string) bool {
	return t.sSet[alphabet.Join(word)]
}

// sortedS returns S sorted by the alphabet's length-then-lexicographic
// order, used to make every witness/experiment selection deterministic
// (spec §4.3 "Ordering and tie-breaks").
func (t *Table) sortedS() [][]string {
	cp := make([][]string, len(t.sWords))
	copy(cp, t.sWords)
	t.alpha.SortWords(cp)
	return cp
}

func (t *Table) String() string {
	return renderTable(t)
}
