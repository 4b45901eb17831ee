package poly

import (
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// term is one monomial with coefficient: c · ∏ x_i^exp[i].
// Invariant: c != 0 and len(exp) == ring.NumVars().
type term struct {
	exp []int
	c   *big.Rat
}

// Poly is an immutable multivariate polynomial.
//
// Invariants:
//   - terms are sorted strictly descending under the lex order
//   - no term has a zero coefficient
//   - the zero polynomial has no terms
//
// The zero value of Poly (nil ring) is unusable; obtain polynomials from
// a Ring.
type Poly struct {
	ring  *Ring
	terms []term
}

// Ring returns the ring the polynomial lives in.
func (p Poly) Ring() *Ring { return p.ring }

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool { return len(p.terms) == 0 }

// IsOne reports whether p is the constant 1.
func (p Poly) IsOne() bool {
	return len(p.terms) == 1 && expIsZero(p.terms[0].exp) &&
		p.terms[0].c.Cmp(big.NewRat(1, 1)) == 0
}

// Equal reports whether p and q are identical polynomials of one ring.
func (p Poly) Equal(q Poly) bool {
	if p.ring != q.ring || len(p.terms) != len(q.terms) {
		return false
	}
	for i := range p.terms {
		if expCmp(p.terms[i].exp, q.terms[i].exp) != 0 ||
			p.terms[i].c.Cmp(q.terms[i].c) != 0 {
			return false
		}
	}
	return true
}

// sameRing panics on cross-ring arithmetic; mixing rings is a programmer
// error, analogous to indexing with a foreign index type.
func (p Poly) sameRing(q Poly) {
	if p.ring != q.ring {
		panic(ErrRingMismatch)
	}
}

// Add returns p + q.
func (p Poly) Add(q Poly) Poly {
	p.sameRing(q)
	merged := make([]term, 0, len(p.terms)+len(q.terms))
	i, j := 0, 0
	for i < len(p.terms) && j < len(q.terms) {
		switch expCmp(p.terms[i].exp, q.terms[j].exp) {
		case 1: // p's term is larger
			merged = append(merged, p.terms[i].clone())
			i++
		case -1:
			merged = append(merged, q.terms[j].clone())
			j++
		default:
			c := new(big.Rat).Add(p.terms[i].c, q.terms[j].c)
			if c.Sign() != 0 {
				merged = append(merged, term{exp: expClone(p.terms[i].exp), c: c})
			}
			i++
			j++
		}
	}
	for ; i < len(p.terms); i++ {
		merged = append(merged, p.terms[i].clone())
	}
	for ; j < len(q.terms); j++ {
		merged = append(merged, q.terms[j].clone())
	}
	return Poly{ring: p.ring, terms: merged}
}

// Neg returns -p.
func (p Poly) Neg() Poly {
	out := make([]term, len(p.terms))
	for i, t := range p.terms {
		out[i] = term{exp: expClone(t.exp), c: new(big.Rat).Neg(t.c)}
	}
	return Poly{ring: p.ring, terms: out}
}

// Sub returns p - q.
func (p Poly) Sub(q Poly) Poly { return p.Add(q.Neg()) }

// Mul returns p · q.
func (p Poly) Mul(q Poly) Poly {
	p.sameRing(q)
	if p.IsZero() || q.IsZero() {
		return p.ring.Zero()
	}
	acc := make(map[string]term, len(p.terms)*len(q.terms))
	for _, a := range p.terms {
		for _, b := range q.terms {
			exp := expAdd(a.exp, b.exp)
			key := expKey(exp)
			if t, ok := acc[key]; ok {
				t.c.Add(t.c, new(big.Rat).Mul(a.c, b.c))
				acc[key] = t
			} else {
				acc[key] = term{exp: exp, c: new(big.Rat).Mul(a.c, b.c)}
			}
		}
	}
	out := make([]term, 0, len(acc))
	for _, t := range acc {
		if t.c.Sign() != 0 {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return expCmp(out[i].exp, out[j].exp) > 0 })
	return Poly{ring: p.ring, terms: out}
}

// Pow returns p^k for k ≥ 0 (p^0 == 1); negative k panics with
// ErrNegativeExponent.
func (p Poly) Pow(k int) Poly {
	if k < 0 {
		panic(ErrNegativeExponent)
	}
	out := p.ring.One()
	base := p
	for ; k > 0; k >>= 1 {
		if k&1 == 1 {
			out = out.Mul(base)
		}
		if k > 1 {
			base = base.Mul(base)
		}
	}
	return out
}

// mulMonomial returns p scaled by c · x^exp (internal fast path of the
// division algorithm).
func (p Poly) mulMonomial(exp []int, c *big.Rat) Poly {
	out := make([]term, 0, len(p.terms))
	for _, t := range p.terms {
		nc := new(big.Rat).Mul(t.c, c)
		if nc.Sign() == 0 {
			continue
		}
		out = append(out, term{exp: expAdd(t.exp, exp), c: nc})
	}
	// multiplying by a monomial preserves the strict descending order
	return Poly{ring: p.ring, terms: out}
}

// monic returns p scaled so that its leading coefficient is 1.
func (p Poly) monic() Poly {
	if p.IsZero() {
		return p
	}
	inv := new(big.Rat).Inv(p.terms[0].c)
	return p.mulMonomial(make([]int, p.ring.NumVars()), inv)
}

// lt returns the leading term; caller must ensure p is nonzero.
func (p Poly) lt() term { return p.terms[0] }

// dropLT returns p without its leading term.
func (p Poly) dropLT() Poly {
	out := make([]term, len(p.terms)-1)
	for i, t := range p.terms[1:] {
		out[i] = t.clone()
	}
	return Poly{ring: p.ring, terms: out}
}

// addTermLow appends a term strictly smaller than every term of p.
// Used by the division algorithm, which emits remainder terms in
// descending order.
func (p Poly) addTermLow(t term) Poly {
	out := make([]term, 0, len(p.terms)+1)
	out = append(out, p.terms...)
	out = append(out, t.clone())
	return Poly{ring: p.ring, terms: out}
}

// String renders p deterministically: terms descending, "-" for negative
// coefficients, unit coefficients omitted, e.g. "Aa*Abc - 2/3*Abc^2".
// The zero polynomial renders as "0".
func (p Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	for i, t := range p.terms {
		neg := t.c.Sign() < 0
		abs := new(big.Rat).Abs(t.c)
		switch {
		case i == 0 && neg:
			b.WriteString("-")
		case i > 0 && neg:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}
		mono := monoString(p.ring, t.exp)
		one := abs.Cmp(big.NewRat(1, 1)) == 0
		switch {
		case mono == "":
			b.WriteString(abs.RatString())
		case one:
			b.WriteString(mono)
		default:
			b.WriteString(abs.RatString())
			b.WriteString("*")
			b.WriteString(mono)
		}
	}
	return b.String()
}

// monoString renders the variable part of a term ("" for constants).
func monoString(r *Ring, exp []int) string {
	var parts []string
	for i, e := range exp {
		switch {
		case e == 1:
			parts = append(parts, r.names[i])
		case e > 1:
			parts = append(parts, r.names[i]+"^"+strconv.Itoa(e))
		}
	}
	return strings.Join(parts, "*")
}

func (t term) clone() term {
	return term{exp: expClone(t.exp), c: new(big.Rat).Set(t.c)}
}

// --- exponent-vector helpers (lex order, variable 0 strongest) ---

func expCmp(a, b []int) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] > b[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

func expIsZero(a []int) bool {
	for _, e := range a {
		if e != 0 {
			return false
		}
	}
	return true
}

func expClone(a []int) []int {
	cp := make([]int, len(a))
	copy(cp, a)
	return cp
}

func expAdd(a, b []int) []int {
	out := make([]int, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}

// expSub returns a-b, or nil when b does not divide a.
func expSub(a, b []int) []int {
	out := make([]int, len(a))
	for i := range a {
		if a[i] < b[i] {
			return nil
		}
		out[i] = a[i] - b[i]
	}
	return out
}

func expLCM(a, b []int) []int {
	out := make([]int, len(a))
	for i := range a {
		if a[i] > b[i] {
			out[i] = a[i]
		} else {
			out[i] = b[i]
		}
	}
	return out
}

// expKey encodes an exponent vector as a map key.
func expKey(a []int) string {
	var b strings.Builder
	for _, e := range a {
		b.WriteString(strconv.Itoa(e))
		b.WriteByte(',')
	}
	return b.String()
}
