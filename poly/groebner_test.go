package poly_test

import (
	"testing"

	"github.com/katalvlaran/chowring/poly"
	"github.com/stretchr/testify/require"
)

func TestReduce_MonomialBasis(t *testing.T) {
	_, x, y, _ := xyz(t)

	r, err := poly.Reduce(x.Pow(2).Mul(y).Add(x), []poly.Poly{x})
	require.NoError(t, err)
	require.True(t, r.IsZero())

	// remainder keeps the irreducible tail
	r, err = poly.Reduce(x.Pow(2).Add(y), []poly.Poly{x})
	require.NoError(t, err)
	require.Equal(t, "y", r.String())
}

func TestReduce_FullReduction(t *testing.T) {
	// x² - y mod (x - y): x² → xy → y², remainder y² - y
	_, x, y, _ := xyz(t)
	r, err := poly.Reduce(x.Pow(2).Sub(y), []poly.Poly{x.Sub(y)})
	require.NoError(t, err)
	require.True(t, r.Equal(y.Pow(2).Sub(y)))
}

func TestGroebnerBasis_LinearPair(t *testing.T) {
	_, x, y, _ := xyz(t)
	gb, err := poly.GroebnerBasis([]poly.Poly{x.Add(y), x.Sub(y)})
	require.NoError(t, err)
	require.Len(t, gb, 2)
	require.Equal(t, "x", gb[0].String())
	require.Equal(t, "y", gb[1].String())
}

func TestGroebnerBasis_ProductAndDifference(t *testing.T) {
	// the shape of a rank-2 Chow ideal: (a·b, a - b) → {a - b, b²}
	ring, err := poly.NewRing([]string{"a", "b"})
	require.NoError(t, err)
	a, b := ring.Gens()[0], ring.Gens()[1]

	gb, err := poly.GroebnerBasis([]poly.Poly{a.Mul(b), a.Sub(b)})
	require.NoError(t, err)
	require.Len(t, gb, 2)
	require.Equal(t, "a - b", gb[0].String())
	require.Equal(t, "b^2", gb[1].String())

	ok, err := poly.IsGroebner(gb)
	require.NoError(t, err)
	require.True(t, ok)

	// a alone is NOT in the ideal: the quotient still has a degree-1 part
	r, err := poly.Reduce(a, gb)
	require.NoError(t, err)
	require.False(t, r.IsZero())
}

func TestGroebnerBasis_DegenerateInputs(t *testing.T) {
	ring, err := poly.NewRing([]string{"x"})
	require.NoError(t, err)

	gb, err := poly.GroebnerBasis(nil)
	require.NoError(t, err)
	require.Empty(t, gb)

	gb, err = poly.GroebnerBasis([]poly.Poly{ring.Zero(), ring.Zero()})
	require.NoError(t, err)
	require.Empty(t, gb)

	other, err := poly.NewRing([]string{"x"})
	require.NoError(t, err)
	_, err = poly.GroebnerBasis([]poly.Poly{ring.Gens()[0], other.Gens()[0]})
	require.ErrorIs(t, err, poly.ErrRingMismatch)
}

func TestIsGroebner(t *testing.T) {
	_, x, y, _ := xyz(t)

	// {xy - 1, y² - 1} is not a Gröbner basis: S-poly leaves x - y
	ok, err := poly.IsGroebner([]poly.Poly{
		x.Mul(y).Sub(x.Ring().One()),
		y.Pow(2).Sub(x.Ring().One()),
	})
	require.NoError(t, err)
	require.False(t, ok)

	// ...but its Buchberger completion is
	gb, err := poly.GroebnerBasis([]poly.Poly{
		x.Mul(y).Sub(x.Ring().One()),
		y.Pow(2).Sub(x.Ring().One()),
	})
	require.NoError(t, err)
	ok, err = poly.IsGroebner(gb)
	require.NoError(t, err)
	require.True(t, ok)

	// monomial sequences are always Gröbner
	ok, err = poly.IsGroebner([]poly.Poly{x, y, x.Mul(y)})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = poly.IsGroebner(nil)
	require.NoError(t, err)
	require.True(t, ok)
}
