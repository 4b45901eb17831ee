package chow

import "github.com/katalvlaran/chowring/poly"

// Augmented Feitchner–Yuzvinsky presentation: one variable per groundset
// element (the A-block) plus one per proper flat (the B-block), in one
// ring with the element block first.

// buildFYGens returns the defining generators:
//
//   - quadratic: x_F·x_G for every unordered pair of incomparable
//     proper flats (same rule as the non-augmented presentation)
//   - linear:    y_a − Σ_{F∌a} x_F for every groundset element a
//
// Eliminating the element variables along the linear block recovers the
// non-augmented relation variety in the flat coordinates.
func buildFYGens(lat *Lattice, reg *registry) []poly.Poly {
	n := lat.Len()
	if n == 0 {
		return nil // rank ≤ 1: trivial ideal
	}
	var gens []poly.Poly
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if lat.Incomparable(i, j) {
				gens = append(gens, reg.flatVars[i].Mul(reg.flatVars[j]))
			}
		}
	}
	for _, x := range lat.Ground() {
		gens = append(gens, reg.elemVars[x].Sub(complementSum(lat, reg, x)))
	}
	return gens
}

// groebnerFY is the specialized engine for the FY presentation.
//
// The element block is triangular by construction: each linear generator
// y_a − Σ_{F∌a} x_F has leading term y_a under the ring's lex order
// (element variables precede flat variables), the y_a are pairwise
// distinct, and the quadratic generators are monomials in the flat
// block. Every S-polynomial of the combined set therefore reduces to
// zero: the generator sequence, ordered linear block first, is already
// a Gröbner basis of the ideal. No subset enumeration is needed here;
// the chain/antichain work happens entirely inside the incomparability
// scan.
func groebnerFY(lat *Lattice, reg *registry) []poly.Poly {
	n := lat.Len()
	if n == 0 {
		return nil
	}
	var gb []poly.Poly
	for _, x := range lat.Ground() {
		lin := reg.elemVars[x].Sub(complementSum(lat, reg, x))
		if lin.IsZero() {
			continue // cannot happen (y_a survives), kept for symmetry
		}
		gb = append(gb, lin)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if lat.Incomparable(i, j) {
				gb = append(gb, reg.flatVars[i].Mul(reg.flatVars[j]))
			}
		}
	}
	return gb
}

// complementSum returns Σ_{F ∌ x} x_F over lattice flats.
func complementSum(lat *Lattice, reg *registry, label string) poly.Poly {
	sum := reg.ring.Zero()
	for i := 0; i < lat.Len(); i++ {
		if !lat.Flat(i).Contains(label) {
			sum = sum.Add(reg.flatVars[i])
		}
	}
	return sum
}
