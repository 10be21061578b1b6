package lstar

// Config controls the budget the counterexample Search operates under
// (spec §4.4/§6). MaxCELen is optional: zero means "derive it from
// MaxCESearches". MaxCESearches must always be positive. LearnWithConfig
// checks both with Validate before learning starts.
type Config struct {
	// MaxCELen caps the length of words the counterexample search
	// enumerates. Zero means "derive the bound from MaxCESearches"
	// (spec §4.4's L_eff computation). If set, must be >= 2.
	// Default: 0 (derived).
	MaxCELen int

	// MaxCESearches caps the number of oracle queries the counterexample
	// search may issue before giving up and returning the current
	// closed-and-consistent hypothesis (spec §7 category 4, budget
	// exhaustion — not an error).
	// Default: 100000.
	MaxCESearches int
}

// DefaultConfig returns the spec's default budget: no explicit length cap
// (derived from the search budget) and 100,000 max counterexample searches
// (spec §4.5 "Default max_ce_searches = 100 000").
func DefaultConfig() Config {
	return Config{
		MaxCELen:      0,
		MaxCESearches: 100_000,
	}
}

// Validate checks that the configuration's budgets are well-formed
// (spec §7 category 2: "non-positive max_ce_len or max_ce_searches").
// MaxCELen of 0 is accepted (it means "not supplied"); any other
// non-positive value, or a value below 2, is rejected since no
// counterexample search ever looks at words shorter than 2 (spec §4.4).
func (c Config) Validate() error {
	if c.MaxCELen != 0 && c.MaxCELen < 2 {
		return &LearnError{
			Kind:    InvalidBudget,
			Message: "MaxCELen must be 0 (derived) or >= 2",
		}
	}
	if c.MaxCESearches <= 0 {
		return &LearnError{
			Kind:    InvalidBudget,
			Message: "MaxCESearches must be a positive integer",
		}
	}
	return nil
}
