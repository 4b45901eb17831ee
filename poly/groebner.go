package poly

import "sort"

// GroebnerBasis computes the reduced Gröbner basis of the ideal
// generated by gens, under the ring's lex order, using the textbook
// Buchberger procedure followed by minimalization and inter-reduction.
//
// Returned basis elements are monic, mutually reduced, and sorted by
// leading monomial descending, so the result is canonical for the
// ideal. An all-zero (or empty) generator list yields an empty basis.
//
// Cost is the usual Buchberger worst case; this is the generic fallback
// of the library, intended for small ideals and for cross-checking the
// combinatorial engines.
func GroebnerBasis(gens []Poly) ([]Poly, error) {
	var ring *Ring
	basis := make([]Poly, 0, len(gens))
	for _, g := range gens {
		if g.ring == nil || g.IsZero() {
			continue
		}
		if ring == nil {
			ring = g.ring
		} else if g.ring != ring {
			return nil, ErrRingMismatch
		}
		basis = append(basis, g)
	}
	if len(basis) == 0 {
		return nil, nil
	}

	// --- 1. Buchberger: saturate with reduced S-polynomials ---
	type pair struct{ i, j int }
	var queue []pair
	for i := range basis {
		for j := i + 1; j < len(basis); j++ {
			queue = append(queue, pair{i, j})
		}
	}
	for len(queue) > 0 {
		pr := queue[0]
		queue = queue[1:]
		f, g := basis[pr.i], basis[pr.j]
		// first Buchberger criterion: coprime leading monomials
		if coprime(f.lt().exp, g.lt().exp) {
			continue
		}
		r := reduce(sPoly(f, g), basis)
		if r.IsZero() {
			continue
		}
		basis = append(basis, r)
		for i := 0; i < len(basis)-1; i++ {
			queue = append(queue, pair{i, len(basis) - 1})
		}
	}

	// --- 2. Minimalize: drop elements with redundant leading terms ---
	sort.SliceStable(basis, func(i, j int) bool {
		return expCmp(basis[i].lt().exp, basis[j].lt().exp) < 0
	})
	minimal := make([]Poly, 0, len(basis))
	for _, g := range basis {
		redundant := false
		for _, h := range minimal {
			if expSub(g.lt().exp, h.lt().exp) != nil {
				redundant = true
				break
			}
		}
		if !redundant {
			minimal = append(minimal, g)
		}
	}

	// --- 3. Inter-reduce and normalize to monic ---
	reduced := make([]Poly, len(minimal))
	for i, g := range minimal {
		others := make([]Poly, 0, len(minimal)-1)
		others = append(others, minimal[:i]...)
		others = append(others, minimal[i+1:]...)
		reduced[i] = reduce(g, others).monic()
	}
	sort.SliceStable(reduced, func(i, j int) bool {
		return expCmp(reduced[i].lt().exp, reduced[j].lt().exp) > 0
	})
	return reduced, nil
}

// IsGroebner reports whether seq is a Gröbner basis of the ideal it
// generates: every S-polynomial of a pair of elements must reduce to
// zero modulo the whole sequence. Zero elements are ignored; an empty
// sequence is vacuously a Gröbner basis.
func IsGroebner(seq []Poly) (bool, error) {
	var ring *Ring
	var G []Poly
	for _, g := range seq {
		if g.ring == nil || g.IsZero() {
			continue
		}
		if ring == nil {
			ring = g.ring
		} else if g.ring != ring {
			return false, ErrRingMismatch
		}
		G = append(G, g)
	}
	for i := range G {
		for j := i + 1; j < len(G); j++ {
			if reduce(sPoly(G[i], G[j]), G).IsZero() {
				continue
			}
			return false, nil
		}
	}
	return true, nil
}

// coprime reports whether two monomials share no variable.
func coprime(a, b []int) bool {
	for i := range a {
		if a[i] > 0 && b[i] > 0 {
			return false
		}
	}
	return true
}
