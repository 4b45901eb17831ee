// Package matroid provides the minimal matroid abstraction the Chow ring
// core consumes: a finite groundset of string labels, a rank oracle over
// label sets, and an enumerator of flats by rank.
//
// The package deliberately implements no deep matroid theory (no circuits,
// no duality, no minors). Its one concrete implementation, BasisMatroid,
// is defined by an explicit list of bases and derives rank and flats from
// them, which is exact and entirely sufficient for the small groundsets
// the Chow ring construction can handle anyway.
//
// Determinism:
//   - Set stores its labels sorted under the package's fixed total order
//     (lexicographic on label strings), so Elements(), Key() and String()
//     are reproducible across runs.
//   - Flats(r) returns flats sorted by (cardinality, Key), never in map
//     iteration order.
//
// Complexity:
//   - Rank(S) is O(|bases| · |S|).
//   - Flats(r) enumerates all 2^|E| subsets; fine for |E| ≲ 20, which is
//     far beyond what downstream Gröbner enumeration tolerates anyway.
package matroid
