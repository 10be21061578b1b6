// Package learner implements the L* Learner Driver (spec §4.5): it owns
// one observation Table and one oracle Adapter, and drives the
// closure/consistency refinement loop to termination, simulating the
// missing equivalence oracle with a bounded counterexample Search.
//
// The orchestration shape mirrors coregex's meta.Engine
// (meta/engine.go)/meta.Compile (meta/compile.go): validate inputs, then
// loop building and refining a candidate until a termination condition is
// met, handing back an immutable result by value.
package learner

import (
	"github.com/coregx/lstar/alphabet"
	"github.com/coregx/lstar/automaton"
	"github.com/coregx/lstar/oracle"
	"github.com/coregx/lstar/search"
	"github.com/coregx/lstar/table"
)

// Result is what a learning session hands back: the hypothesis DFA and,
// for diagnostic use, the final observation table and query statistics
// (spec §6 "plus optionally the final Observation Table").
type Result struct {
	DFA   *automaton.DFA
	Table *table.Table
	Stats oracle.Stats
}

// Learn runs Angluin's L* refinement loop (spec §4.3 "Refinement
// algorithm") to termination: it alternates restoring closedness and
// consistency, extracts a candidate DFA, and asks Search for a
// counterexample against the oracle. A counterexample's prefixes are
// absorbed into the table and the loop repeats; once Search is exhausted
// the current (closed, consistent) DFA is returned.
//
// Callers are expected to have already validated alpha/maxCELen/maxCESearches
// (the root package's Learn does this before calling in); this function
// assumes its inputs are valid, matching spec §7's "surfaced before any
// oracle call" error categories living at the public entry point, not here.
func Learn(alpha alphabet.Alphabet, membership oracle.Membership, maxCELen, maxCESearches int) Result {
	adapter := oracle.New(membership)
	tbl := table.New(alpha, adapter)
	finder := search.New(alpha, adapter, maxCELen, maxCESearches)

	for {
		restoreInvariants(tbl)

		hypothesis, err := tbl.ToDFA()
		if err != nil {
			// Unreachable once restoreInvariants has converged; surfaced
			// as a panic since it indicates a bug in the refinement loop,
			// not a caller error (spec §7 category 5).
			panic("learner: table not closed/consistent after restoreInvariants: " + err.Error())
		}

		found, counterexample := finder.Find(hypothesis)
		if !found {
			return Result{DFA: hypothesis, Table: tbl, Stats: adapter.Stats()}
		}

		tbl.AbsorbCounterexample(counterexample)
	}
}

// restoreInvariants repeatedly closes and makes the table consistent
// until both hold simultaneously (spec §4.3 step 2): closing can surface
// a new inconsistency and making the table consistent can re-open
// closedness, so the two checks are re-run in a loop until neither finds
// a witness.
func restoreInvariants(tbl *table.Table) {
	for {
		if closed, witness := tbl.IsClosed(); !closed {
			tbl.Close(witness)
			continue
		}
		if consistent, experiment := tbl.IsConsistent(); !consistent {
			tbl.MakeConsistent(experiment)
			continue
		}
		return
	}
}
