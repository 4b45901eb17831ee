// Package chow constructs Chow ring ideals of matroids in three
// presentations and computes their distinguished Gröbner bases from the
// combinatorics of the lattice of flats.
//
// The three presentations, selected by the Presentation tag at
// construction:
//
//   - NonAugmented: one indeterminate per proper non-empty flat.
//     Generators: x_F·x_G for every incomparable pair of flats, and
//     Σ_{F∋a} x_F − Σ_{F∋b} x_F for every pair of groundset elements.
//
//   - AugmentedFY (Feitchner–Yuzvinsky): one indeterminate per groundset
//     element plus one per proper flat. Generators: the same quadratics
//     over flats, and y_a − Σ_{F∌a} x_F per element.
//
//   - AugmentedAtomFree: flats only; the groundset constraints are
//     encoded by (Σ_{F∋a} x_F)² per element and x_F·Σ_{F'∋a} x_{F'} for
//     every flat F avoiding a.
//
// Construction is one atomic step: NewIdeal materializes the flat lattice
// view, the variable registry and the full generator sequence before it
// returns, and the Ideal is immutable afterwards. The Gröbner basis is
// the one lazily computed operation: per call, uncached, never mutating.
//
// GroebnerBasis takes an explicit Algorithm selector: Combinatorial runs
// the presentation's specialized engine (chain/antichain enumeration over
// flat subsets, exponential in the number of flats, see engine.go);
// Fallback reruns the generic Buchberger procedure of package poly on the
// generator sequence and returns its result. Any other selector is
// ErrUnknownAlgorithm.
//
// Failure modes are few and synchronous: ErrInvalidMatroid at
// construction (rank ≤ 0 or an inconsistent flats enumeration) and
// ErrUnknownAlgorithm at basis computation. A matroid of rank 1 is valid
// and yields the trivial ideal: no proper flats, no generators.
package chow
