// Package oracle wraps a caller-supplied membership predicate T with
// memoization, guaranteeing at-most-one invocation of T per distinct
// string within a learning session (spec §4.1, property P4).
package oracle

// Membership is the caller-supplied oracle T: Σ* -> {accept, reject}.
// It is assumed total, deterministic, and free of observable side effects
// from the learner's point of view; undefined behavior otherwise (spec
// §4.1, §6, §7 category 3).
//
// w is passed as the flat string produced by alphabet.Join, the same
// canonical key the table and search packages use for identity.
type Membership func(w string) bool

// Stats reports how an Adapter has been used during a session, mirroring
// the statistics coregex's meta.Engine tracks for its own strategies
// (meta.Stats) — here, for diagnosing how close a session came to
// exhausting its query budget.
type Stats struct {
	// Queries counts distinct strings that reached the underlying T.
	Queries uint64
	// Hits counts lookups served from the cache instead of calling T.
	Hits uint64
}

// Adapter memoizes calls to an underlying Membership oracle.
type Adapter struct {
	oracle Membership
	cache  map[string]bool
	stats  Stats
}

// New wraps oracle with a fresh, empty cache.
func New(oracle Membership) *Adapter {
	return &Adapter{
		oracle: oracle,
		cache:  make(map[string]bool),
	}
}

// Query returns T(w), consulting the cache first. At most one invocation
// of the underlying oracle ever occurs for a given w within this
// Adapter's lifetime.
func (a *Adapter) Query(w string) bool {
	if v, ok := a.cache[w]; ok {
		a.stats.Hits++
		return v
	}
	v := a.oracle(w)
	a.cache[w] = v
	a.stats.Queries++
	return v
}

// Stats returns a snapshot of this Adapter's query statistics.
func (a *Adapter) Stats() Stats {
	return a.stats
}

// Len returns the number of distinct strings memoized so far.
func (a *Adapter) Len() int {
	return len(a.cache)
}
