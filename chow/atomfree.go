package chow

import "github.com/katalvlaran/chowring/poly"

// Augmented atom-free presentation: flat variables only; the groundset
// constraints ride on atom sums Σ_{F∋a} x_F instead of element
// variables.

// buildAtomFreeGens returns the defining generators:
//
//   - quadratic: x_F·x_G for every unordered pair of incomparable flats
//   - per element a: (Σ_{F∋a} x_F)², making each virtual atom nilpotent of
//     order 2 in the quotient
//   - per (flat F, element a) with a ∉ F: x_F · Σ_{F'∋a} x_{F'}
//
// Zero-valued candidates (an element contained in no proper flat) are
// skipped.
func buildAtomFreeGens(lat *Lattice, reg *registry) []poly.Poly {
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
		sum := atomSum(lat, reg, x)
		if sum.IsZero() {
			continue
		}
		gens = append(gens, sum.Pow(2))
	}
	for f := 0; f < n; f++ {
		for _, x := range lat.Ground() {
			if lat.Flat(f).Contains(x) {
				continue
			}
			sum := atomSum(lat, reg, x)
			if sum.IsZero() {
				continue
			}
			gens = append(gens, reg.flatVars[f].Mul(sum))
		}
	}
	return gens
}

// groebnerAtomFree is the specialized engine: the same subset
// enumeration as the non-augmented engine, with the augmented term
// rules.
//
//   - A subset containing an incomparable pair contributes the plain
//     product of its indeterminates.
//   - The empty subset contributes, per flat F, Σ_{G⊇F} x_G raised to
//     rank(F) + 1, one higher than the non-augmented engine, because
//     the augmented quotient has top degree rank(M) rather than
//     rank(M) − 1.
//   - A chain subset contributes, for every flat F properly above its
//     join (= its largest member), the chain product times Σ_{G⊇F} x_G
//     raised to rank(F) − rank(top).
//
// Would-be zero terms are skipped silently.
func groebnerAtomFree(lat *Lattice, reg *registry) []poly.Poly {
	n := lat.Len()
	if n == 0 {
		return nil
	}
	var gb []poly.Poly
	buf := make([]int, 0, n)
	for mask := 0; mask < 1<<n; mask++ {
		idx := maskIndices(mask, n, buf)

		if mask == 0 {
			for f := 0; f < n; f++ {
				up := upperSum(lat, reg, f)
				if up.IsZero() {
					continue
				}
				gb = append(gb, up.Pow(lat.RankOf(f)+1))
			}
			continue
		}

		if !lat.IsChain(idx) {
			if p := productOf(reg, idx); !p.IsZero() {
				gb = append(gb, p)
			}
			continue
		}

		sorted := bySizeAscending(lat, idx)
		top := sorted[len(sorted)-1]
		for f := 0; f < n; f++ {
			if !lat.Flat(top).ProperSubsetOf(lat.Flat(f)) {
				continue
			}
			up := upperSum(lat, reg, f)
			if up.IsZero() {
				continue
			}
			term := productOf(reg, idx).Mul(up.Pow(lat.RankOf(f) - lat.RankOf(top)))
			if term.IsZero() {
				continue
			}
			gb = append(gb, term)
		}
	}
	return gb
}
