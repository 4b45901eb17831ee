package chow

import (
	"sort"

	"github.com/katalvlaran/chowring/poly"
)

// Shared skeleton of the specialized Gröbner engines.
//
// All three engines enumerate subsets of the flat sequence as bitmasks
// 0..2^n−1 over integer indices; no subset collections are ever
// materialized beyond one index slice per mask. The enumeration is
// exponential in the number of flats; that is a property of the
// construction itself, so there is no incremental or streaming variant,
// and callers needing bounded latency must bound the matroid instead.

// maskIndices expands a bitmask into ascending flat indices, reusing buf.
func maskIndices(mask, n int, buf []int) []int {
	idx := buf[:0]
	for i := 0; i < n; i++ {
		if mask&(1<<i) != 0 {
			idx = append(idx, i)
		}
	}
	return idx
}

// bySizeAscending returns the indices ordered by flat cardinality,
// ascending, stable on lattice order for equal sizes (the deterministic
// tie-break of the chain classification).
func bySizeAscending(lat *Lattice, idx []int) []int {
	sorted := make([]int, len(idx))
	copy(sorted, idx)
	sort.SliceStable(sorted, func(a, b int) bool {
		return lat.Flat(sorted[a]).Len() < lat.Flat(sorted[b]).Len()
	})
	return sorted
}

// productOf multiplies the indeterminates of the flats at idx.
func productOf(reg *registry, idx []int) poly.Poly {
	out := reg.ring.One()
	for _, i := range idx {
		out = out.Mul(reg.flatVars[i])
	}
	return out
}

// upperSum returns Σ_{G ⊇ F_f} x_G over lattice flats G.
func upperSum(lat *Lattice, reg *registry, f int) poly.Poly {
	sum := reg.ring.Zero()
	for g := 0; g < lat.Len(); g++ {
		if lat.Flat(f).SubsetOf(lat.Flat(g)) {
			sum = sum.Add(reg.flatVars[g])
		}
	}
	return sum
}

// atomSum returns Σ_{F ∋ x} x_F over lattice flats.
func atomSum(lat *Lattice, reg *registry, label string) poly.Poly {
	sum := reg.ring.Zero()
	for _, i := range lat.FlatsContaining(label) {
		sum = sum.Add(reg.flatVars[i])
	}
	return sum
}
