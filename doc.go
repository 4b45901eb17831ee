// Package chowring builds Chow ring ideals of matroids and computes their
// distinguished Gröbner bases directly from the combinatorics of the
// lattice of flats.
//
// 🧭 What is chowring?
//
//	A small, exact-arithmetic library with three layers:
//		• matroid/ : groundset, rank oracle and flats enumeration
//		  (basis matroids, uniform matroids, deterministic label order)
//		• poly/    : multivariate polynomials over ℚ with a lex term order,
//		  polynomial reduction and a generic Buchberger fallback
//		• chow/    : the core: flat lattice view, variable registry, the
//		  three ideal presentations and their combinatorial Gröbner engines
//
// Three presentations of the Chow ring ideal are supported:
//
//   - Non-augmented: one indeterminate per proper non-empty flat;
//     quadratic relations for incomparable flats, linear relations for
//     element pairs.
//   - Augmented, Feitchner–Yuzvinsky: one extra indeterminate per
//     groundset element, with one linear relation per element.
//   - Augmented, atom-free: flats only, with squared atom-sum relations
//     standing in for the missing groundset variables.
//
// Each presentation carries a specialized Gröbner engine that enumerates
// chains and antichains of flats instead of running general elimination;
// the generic Buchberger procedure remains available as an explicit
// fallback. Enumeration is exponential in the number of flats; this is
// inherent to the construction, so keep matroids small (a few dozen flats
// at most).
//
// Quick sketch:
//
//	m, _ := matroid.FromChars("abc", "ab", "ac")
//	ideal, _ := chow.NewIdeal(m, chow.NonAugmented)
//	basis, _ := ideal.GroebnerBasis(chow.Combinatorial)
//
// See chow/doc.go for the presentation contracts and cmd/chowring for a
// small inspection CLI.
package chowring
