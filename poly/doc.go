// Package poly is the polynomial-ring/ideal substrate behind the Chow
// ring core: multivariate polynomials with exact rational coefficients
// (math/big.Rat) in a ring of named variables, under the lexicographic
// term order (variable 0 strongest).
//
// The package supplies exactly what the core consumes and nothing more:
//
//   - NewRing(names): a ring over ℚ with one indeterminate per name;
//     Zero(), One(), Gens(), Var(i)
//   - Poly arithmetic: Add, Sub, Neg, Mul, Pow, IsZero, Equal, String
//   - Reduce(f, basis): multivariate division remainder
//   - GroebnerBasis(gens): generic Buchberger with inter-reduction,
//     the fallback oracle for ideals whose combinatorial basis is not
//     wanted (or not trusted)
//   - IsGroebner(seq): S-polynomial verifier, used by tests
//
// Polynomials are immutable values: every operation returns a fresh Poly
// and coefficients are never shared mutably. All renderings and basis
// orderings are deterministic (terms descending under the lex order).
//
// This is not a computer-algebra system: no factorization, no elimination
// orders, no sparse tricks. Buchberger here is the textbook procedure and
// is meant for the small ideals that arise from small matroids.
package poly
