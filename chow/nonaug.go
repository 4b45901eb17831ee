package chow

import "github.com/katalvlaran/chowring/poly"

// Non-augmented presentation: variables indexed by proper non-empty
// flats only.

// buildNonAugGens returns the defining generators:
//
//   - quadratic: x_F·x_G for every unordered pair of incomparable flats
//   - linear:    Σ_{F∋a} x_F − Σ_{F∋b} x_F for every unordered pair of
//     distinct groundset elements a, b
//
// The linear block has exactly C(|E|, 2) entries; many are dependent (or
// outright zero, for parallel elements) and are kept anyway; the
// sequence mirrors the definition.
func buildNonAugGens(lat *Lattice, reg *registry) []poly.Poly {
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
	ground := lat.Ground()
	for a := 0; a < len(ground); a++ {
		for b := a + 1; b < len(ground); b++ {
			diff := atomSum(lat, reg, ground[a]).Sub(atomSum(lat, reg, ground[b]))
			gens = append(gens, diff)
		}
	}
	return gens
}

// groebnerNonAug is the specialized engine: one pass over every subset
// of the flat sequence, classified by genuine chain structure (pairwise
// comparability; flat cardinality is no substitute, since equal-rank
// flats can differ in size once parallel elements exist).
//
//   - The empty subset contributes, per flat F, the rank(F)-th power of
//     Σ_{G⊇F} x_G.
//   - A subset containing an incomparable pair contributes the plain
//     product of its indeterminates. The output is a Gröbner basis, not
//     a minimal one.
//   - A chain subset contributes, for every flat F properly above its
//     top (= its largest member, which equals the chain's union), the
//     chain product times Σ_{G⊇F} x_G raised to rank(F) − rank(top).
//
// Would-be zero terms are skipped silently throughout.
func groebnerNonAug(lat *Lattice, reg *registry) []poly.Poly {
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
				gb = append(gb, up.Pow(lat.RankOf(f)))
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
