package poly_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/chowring/poly"
	"github.com/stretchr/testify/require"
)

// xyz builds the three-variable test ring and its generators.
func xyz(t *testing.T) (*poly.Ring, poly.Poly, poly.Poly, poly.Poly) {
	t.Helper()
	r, err := poly.NewRing([]string{"x", "y", "z"})
	require.NoError(t, err)
	g := r.Gens()
	return r, g[0], g[1], g[2]
}

func TestPoly_AddSub(t *testing.T) {
	r, x, y, _ := xyz(t)

	sum := x.Add(y)
	require.Equal(t, "x + y", sum.String())
	require.True(t, sum.Sub(sum).IsZero())
	require.Equal(t, "x - y", x.Sub(y).String())

	// cancellation down to zero
	require.True(t, x.Add(x.Neg()).IsZero())
	require.True(t, r.Zero().Add(r.Zero()).IsZero())
}

func TestPoly_MulAndPow(t *testing.T) {
	_, x, y, z := xyz(t)

	p := x.Add(y).Mul(x.Sub(y)) // x² - y²
	require.Equal(t, "x^2 - y^2", p.String())

	sq := x.Add(y).Pow(2)
	require.Equal(t, "x^2 + 2*x*y + y^2", sq.String())

	require.True(t, x.Pow(0).IsOne())
	require.Equal(t, "x*y*z", x.Mul(y).Mul(z).String())
	require.Panics(t, func() { x.Pow(-1) })
}

func TestPoly_LexTermOrder(t *testing.T) {
	// y³ sorts below x under lex, whatever its degree
	_, x, y, _ := xyz(t)
	p := y.Pow(3).Add(x)
	require.Equal(t, "x + y^3", p.String())
}

func TestPoly_StringCoefficients(t *testing.T) {
	r, x, _, _ := xyz(t)
	half := r.Const(big.NewRat(1, 2))
	p := half.Mul(x).Sub(r.One())
	require.Equal(t, "1/2*x - 1", p.String())
	require.Equal(t, "-x", x.Neg().String())
	require.Equal(t, "0", r.Zero().String())
}

func TestPoly_EqualAndImmutability(t *testing.T) {
	_, x, y, _ := xyz(t)
	p := x.Add(y)
	q := y.Add(x)
	require.True(t, p.Equal(q))

	// arithmetic never mutates operands
	_ = p.Mul(p)
	_ = p.Neg()
	require.Equal(t, "x + y", p.String())
}

func TestPoly_CrossRingPanics(t *testing.T) {
	r1, err := poly.NewRing([]string{"x"})
	require.NoError(t, err)
	r2, err := poly.NewRing([]string{"x"})
	require.NoError(t, err)
	require.Panics(t, func() { r1.Gens()[0].Add(r2.Gens()[0]) })
}
