package matroid

import "errors"

// Sentinel errors for matroid construction. All constructors return these
// (possibly wrapped); callers match via errors.Is.
var (
	// ErrEmptyGroundset indicates a matroid was requested over no elements.
	ErrEmptyGroundset = errors.New("matroid: empty groundset")

	// ErrNoBases indicates a basis matroid was requested with no bases.
	ErrNoBases = errors.New("matroid: no bases given")

	// ErrBasisSize indicates the given bases do not all share one cardinality.
	ErrBasisSize = errors.New("matroid: bases differ in cardinality")

	// ErrBasisNotSubset indicates a basis uses labels outside the groundset.
	ErrBasisNotSubset = errors.New("matroid: basis not contained in groundset")

	// ErrBadUniform indicates Uniform was called with k ≤ 0, k > n, or n > 15.
	ErrBadUniform = errors.New("matroid: invalid uniform parameters")
)
