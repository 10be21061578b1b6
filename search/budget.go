package search

// EffectiveMaxLen computes L_eff per spec §4.4/§9: the largest counterexample
// length the search will actually enumerate up to, given the caller's
// budget.
//
// If maxCELen is supplied (> 0), the shorter of maxCELen and the bound
// derived from maxCESearches wins (spec §9 "the shorter of the two
// dominates"). If maxCELen is 0 (not supplied), only the derived bound
// applies.
//
// The derived bound is the largest L such that
// Σ_{ℓ=2..L} |Σ|^ℓ <= maxCESearches, found by direct iteration rather than
// a closed-form logarithm: Σ is always small enough in practice (the
// budget itself caps how far the sum can grow) that iterating term by
// term is simpler and exact, where a log-based formula would need its own
// rounding correction anyway (spec §9 explicitly leaves this bound's exact
// shape to the implementer).
func EffectiveMaxLen(alphabetLen, maxCELen, maxCESearches int) int {
	computed := computeBoundFromSearches(alphabetLen, maxCESearches)
	if maxCELen > 0 && maxCELen < computed {
		return maxCELen
	}
	return computed
}

func computeBoundFromSearches(alphabetLen, maxCESearches int) int {
	if alphabetLen <= 0 {
		return 2
	}
	sum := 0
	length := 1
	for {
		next := length + 1
		term := intPow(alphabetLen, next)
		if term < 0 || sum+term > maxCESearches {
			break
		}
		sum += term
		length = next
	}
	if length < 2 {
		length = 2 // ℓ always starts at 2; Find's own counter enforces the
		// budget if even length 2 cannot be fully enumerated.
	}
	return length
}

// intPow returns base^exp, or -1 if the result would overflow a positive
// int (treated by the caller as "exceeds any realistic budget").
func intPow(base, exp int) int {
	if base <= 0 {
		return 0
	}
	const maxInt = int(^uint(0) >> 1)
	result := 1
	for i := 0; i < exp; i++ {
		if result > maxInt/base {
			return -1
		}
		result *= base
	}
	return result
}
