// Package lstar implements Angluin's L* active-learning algorithm: given a
// finite alphabet Σ and a membership oracle T : Σ* -> {accept, reject},
// Learn constructs the minimal DFA recognizing the same language as T,
// using a bounded counterexample search in place of a true equivalence
// oracle.
//
// Basic usage:
//
//	result, err := lstar.Learn([]string{"a", "b"}, func(w string) bool {
//	    return strings.Count(w, "a")%2 == 0
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.DFA.Accepts([]string{"a", "a"})) // true
//
// Advanced usage:
//
//	config := lstar.DefaultConfig()
//	config.MaxCESearches = 1_000_000
//	result, err := lstar.LearnWithConfig([]string{"a", "b"}, membership, config)
package lstar

import (
	"github.com/coregx/lstar/alphabet"
	"github.com/coregx/lstar/automaton"
	"github.com/coregx/lstar/learner"
	"github.com/coregx/lstar/oracle"
	"github.com/coregx/lstar/table"
)

// Membership is the caller-supplied oracle T : Σ* -> {accept, reject}.
// w is the flat string produced by alphabet.Join over a symbol sequence —
// the same canonical form the table and search packages use internally.
// T must be total, deterministic, and free of observable side effects from
// the learner's point of view (spec §4.1, §6).
type Membership = oracle.Membership

// Result is what a learning session returns: the learned hypothesis DFA,
// the final observation table for diagnostic use (spec §6 "plus optionally
// the final Observation Table"), and the oracle's query statistics.
type Result struct {
	DFA   *automaton.DFA
	Table *table.Table
	Stats oracle.Stats
}

// Learn runs L* with DefaultConfig's budget. See LearnWithConfig.
func Learn(symbols []string, membership Membership) (Result, error) {
	return LearnWithConfig(symbols, membership, DefaultConfig())
}

// MustLearn is like Learn but panics instead of returning an error. Useful
// for alphabets and budgets known to be valid at call time.
func MustLearn(symbols []string, membership Membership) Result {
	result, err := Learn(symbols, membership)
	if err != nil {
		panic("lstar: Learn: " + err.Error())
	}
	return result
}

// LearnWithConfig runs Angluin's L* algorithm to termination and returns
// the learned hypothesis DFA.
//
// Error taxonomy (spec §7):
//  1. Invalid alphabet (empty or duplicate symbols): reported here, before
//     config is even validated, since it is the more fundamental of the
//     two "reported at entry" categories.
//  2. Invalid budgets: config.Validate() is called next, still before any
//     oracle query, and its error is returned unchanged.
//  3. Oracle failure: a panicking membership function propagates out of
//     this call verbatim; LearnWithConfig re-panics with the same value.
//  4. Budget exhaustion is not an error: the returned Result holds the
//     current closed-and-consistent DFA, which may not equal the true
//     target language if the budget was too small.
//  5. Internal invariant violations surface as a LearnError with Kind
//     InvariantViolation rather than a raw panic string.
func LearnWithConfig(symbols []string, membership Membership, config Config) (result Result, err error) {
	alpha, aerr := alphabet.New(symbols)
	if aerr != nil {
		return Result{}, &LearnError{Kind: InvalidAlphabet, Message: "invalid alphabet", Cause: aerr}
	}
	if verr := config.Validate(); verr != nil {
		return Result{}, verr
	}

	defer func() {
		if r := recover(); r != nil {
			if msg, ok := r.(string); ok && isInvariantPanic(msg) {
				err = &LearnError{Kind: InvariantViolation, Message: msg}
				return
			}
			panic(r)
		}
	}()

	lr := learner.Learn(alpha, membership, config.MaxCELen, config.MaxCESearches)
	return Result{DFA: lr.DFA, Table: lr.Table, Stats: lr.Stats}, nil
}

func isInvariantPanic(msg string) bool {
	const prefix = "learner: "
	return len(msg) >= len(prefix) && msg[:len(prefix)] == prefix
}
