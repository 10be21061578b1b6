package lstar

import "fmt"

// ErrorKind classifies a LearnError into the spec's error taxonomy (§7).
type ErrorKind uint8

const (
	// InvalidAlphabet: Σ is empty or contains a duplicate symbol.
	InvalidAlphabet ErrorKind = iota

	// InvalidBudget: a MaxCELen other than 0 that is below 2, or a
	// non-positive MaxCESearches, was supplied.
	InvalidBudget

	// OracleFailure: T panicked during a learning session. lstar does not
	// construct this kind itself — a panicking T propagates verbatim, per
	// §7's "propagated unchanged" policy — but it is named here so a
	// caller that wraps T with its own recover() can report consistently.
	OracleFailure

	// InvariantViolation: the refinement loop produced a table that is
	// not closed/consistent after restoreInvariants converged. Should be
	// unreachable; indicates a bug in this module, not in the caller or T.
	InvariantViolation
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case InvalidAlphabet:
		return "InvalidAlphabet"
	case InvalidBudget:
		return "InvalidBudget"
	case OracleFailure:
		return "OracleFailure"
	case InvariantViolation:
		return "InvariantViolation"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", k)
	}
}

// LearnError represents an error surfaced by Learn/LearnWithConfig, either
// from input validation (categories 1-2 of spec §7) or from an internal
// invariant violation (category 5).
type LearnError struct {
	Kind    ErrorKind
	Message string
	Cause   error // optional underlying error, e.g. from alphabet.New
}

// Error implements the error interface.
func (e *LearnError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("lstar: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("lstar: %s", e.Message)
}

// Unwrap returns the underlying error, for errors.Is/As.
func (e *LearnError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison for errors.Is, matching by Kind alone
// (mirroring coregex's DFAError.Is).
func (e *LearnError) Is(target error) bool {
	t, ok := target.(*LearnError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
