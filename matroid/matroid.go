package matroid

// Matroid is the read-only contract the Chow ring core consumes.
//
// Implementations must be immutable after construction: Groundset, Rank
// and Flats are pure and may be called in any order, any number of times.
//
// Rank must be the rank function of an actual matroid (monotone,
// submodular, unit-increase); Flats(r) must return exactly the closed
// sets of rank r, sorted under Compare. The core validates consistency
// between the two at ideal construction and rejects implementations that
// disagree.
type Matroid interface {
	// Name returns a short human-readable identifier used in display
	// strings, e.g. "U(2, 3)".
	Name() string

	// Groundset returns the full element set E.
	Groundset() Set

	// Rank returns the rank of an arbitrary subset of the groundset.
	// Labels outside the groundset simply never occur in independent
	// sets and therefore do not contribute.
	Rank(s Set) int

	// Flats returns the flats of rank r, sorted under Compare.
	// Out-of-range ranks yield an empty slice.
	Flats(r int) []Set
}
