package poly

import (
	"fmt"
	"math/big"
)

// Ring is a polynomial ring ℚ[x_0, ..., x_{n-1}] with named variables.
//
// A Ring is immutable after NewRing returns. Two polynomials interoperate
// only if they share the same *Ring; identity of the pointer is the
// identity of the ring.
//
// The ring with zero variables is valid: its polynomials are the rational
// constants. It arises naturally from matroids of rank ≤ 1, whose proper
// flat set is empty.
type Ring struct {
	names []string
}

// NewRing constructs a ring with one variable per name, in the given
// order. The order matters: it is the term order's variable precedence
// (earlier names are lexicographically stronger).
//
// Every name must be a valid identifier ([A-Za-z_][A-Za-z0-9_]*) and the
// names must be pairwise distinct; otherwise ErrBadVarNames is returned.
func NewRing(names []string) (*Ring, error) {
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if !validName(n) {
			return nil, fmt.Errorf("name %q: %w", n, ErrBadVarNames)
		}
		if _, dup := seen[n]; dup {
			return nil, fmt.Errorf("duplicate name %q: %w", n, ErrBadVarNames)
		}
		seen[n] = struct{}{}
	}
	cp := make([]string, len(names))
	copy(cp, names)
	return &Ring{names: cp}, nil
}

// validName reports whether s is a plain ASCII identifier.
func validName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// NumVars returns the number of variables.
func (r *Ring) NumVars() int { return len(r.names) }

// Names returns the variable names in ring order (a copy).
func (r *Ring) Names() []string {
	cp := make([]string, len(r.names))
	copy(cp, r.names)
	return cp
}

// Zero returns the zero polynomial.
func (r *Ring) Zero() Poly { return Poly{ring: r} }

// One returns the constant polynomial 1.
func (r *Ring) One() Poly { return r.Const(big.NewRat(1, 1)) }

// Const returns the constant polynomial with the given value.
func (r *Ring) Const(c *big.Rat) Poly {
	if c.Sign() == 0 {
		return r.Zero()
	}
	return Poly{ring: r, terms: []term{{exp: make([]int, len(r.names)), c: new(big.Rat).Set(c)}}}
}

// Var returns the i-th indeterminate, or ErrOutOfRange.
func (r *Ring) Var(i int) (Poly, error) {
	if i < 0 || i >= len(r.names) {
		return Poly{}, fmt.Errorf("var %d of %d: %w", i, len(r.names), ErrOutOfRange)
	}
	exp := make([]int, len(r.names))
	exp[i] = 1
	return Poly{ring: r, terms: []term{{exp: exp, c: big.NewRat(1, 1)}}}, nil
}

// Gens returns all indeterminates in ring order.
func (r *Ring) Gens() []Poly {
	gens := make([]Poly, len(r.names))
	for i := range r.names {
		gens[i], _ = r.Var(i)
	}
	return gens
}
