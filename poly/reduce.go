package poly

import "math/big"

// Reduce computes the remainder of f under multivariate division by
// basis (the classical division algorithm, full reduction: every term of
// the remainder is irreducible by every basis element's leading term).
//
// Zero basis elements are skipped. All polynomials must share f's ring;
// otherwise ErrRingMismatch.
//
// The remainder is canonical when basis is a Gröbner basis; for an
// arbitrary basis it depends on basis order, like every division
// algorithm.
func Reduce(f Poly, basis []Poly) (Poly, error) {
	for _, g := range basis {
		if g.ring != nil && g.ring != f.ring {
			return Poly{}, ErrRingMismatch
		}
	}
	return reduce(f, basis), nil
}

// reduce is the unchecked core of Reduce; basis zeros are skipped.
func reduce(f Poly, basis []Poly) Poly {
	p := f
	rem := f.ring.Zero()
	for !p.IsZero() {
		lead := p.lt()
		divided := false
		for _, g := range basis {
			if g.IsZero() {
				continue
			}
			q := expSub(lead.exp, g.lt().exp)
			if q == nil {
				continue
			}
			// p -= (lc(p)/lc(g)) · x^q · g, cancelling p's leading term
			c := new(big.Rat).Quo(lead.c, g.lt().c)
			p = p.Sub(g.mulMonomial(q, c))
			divided = true
			break
		}
		if !divided {
			// leading term irreducible: move it to the remainder
			rem = rem.addTermLow(lead)
			p = p.dropLT()
		}
	}
	return rem
}

// sPoly returns the S-polynomial of two nonzero polynomials.
func sPoly(f, g Poly) Poly {
	l := expLCM(f.lt().exp, g.lt().exp)
	cf := new(big.Rat).Inv(f.lt().c)
	cg := new(big.Rat).Inv(g.lt().c)
	a := f.mulMonomial(mustExpSub(l, f.lt().exp), cf)
	b := g.mulMonomial(mustExpSub(l, g.lt().exp), cg)
	return a.Sub(b)
}

// mustExpSub is expSub for exponents known to divide (lcm construction).
func mustExpSub(a, b []int) []int {
	q := expSub(a, b)
	if q == nil {
		panic("poly: lcm quotient underflow")
	}
	return q
}
