package chow_test

import (
	"testing"

	"github.com/katalvlaran/chowring/chow"
	"github.com/katalvlaran/chowring/matroid"
	"github.com/katalvlaran/chowring/poly"
	"github.com/stretchr/testify/require"
)

// polyStrings renders a basis for compact comparisons.
func polyStrings(ps []poly.Poly) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}
	return out
}

// requireAllReduceToZero asserts every polynomial of gens lies in the
// ideal spanned by basis (remainder zero under division).
func requireAllReduceToZero(t *testing.T, gens, basis []poly.Poly) {
	t.Helper()
	for k, g := range gens {
		r, err := poly.Reduce(g, basis)
		require.NoError(t, err)
		require.True(t, r.IsZero(), "generator %d (%s) leaves remainder %s", k, g, r)
	}
}

func TestNonAug_GeneratorsScenarioA(t *testing.T) {
	i, err := chow.NewIdeal(scenarioA(t), chow.NonAugmented)
	require.NoError(t, err)

	// 1 incomparable pair + C(3,2) element pairs (kept even when
	// dependent or zero; the sequence mirrors the definition)
	gens := i.Generators()
	require.Len(t, gens, 4)
	require.Equal(t, "Aa*Abc", gens[0].String())
	require.Equal(t, "Aa - Abc", gens[1].String()) // pair (a, b)
	require.Equal(t, "Aa - Abc", gens[2].String()) // pair (a, c)
	require.Equal(t, "0", gens[3].String())        // pair (b, c): parallel
}

func TestNonAug_QuadraticCountMatchesBruteForce(t *testing.T) {
	for _, tc := range []struct {
		name string
		k, n int
	}{
		{"U(3,3)", 3, 3},
		{"U(2,4)", 2, 4},
		{"U(3,4)", 3, 4},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matroid.Uniform(tc.k, tc.n)
			require.NoError(t, err)
			i, err := chow.NewIdeal(m, chow.NonAugmented)
			require.NoError(t, err)

			lat := i.Lattice()
			incomparable := 0
			for a := 0; a < lat.Len(); a++ {
				for b := a + 1; b < lat.Len(); b++ {
					if lat.Incomparable(a, b) {
						incomparable++
					}
				}
			}
			elems := len(lat.Ground())
			linear := elems * (elems - 1) / 2
			require.Len(t, i.Generators(), incomparable+linear)
		})
	}
}

func TestNonAug_GroebnerScenarioA(t *testing.T) {
	// bases {ab, ac}: the two atoms from the empty-subset pass, plus the
	// redundant product of the one incomparable pair
	i, err := chow.NewIdeal(scenarioA(t), chow.NonAugmented)
	require.NoError(t, err)

	gb, err := i.GroebnerBasis(chow.Combinatorial)
	require.NoError(t, err)
	require.Equal(t, []string{"Aa", "Abc", "Aa*Abc"}, polyStrings(gb))

	ok, err := poly.IsGroebner(gb)
	require.NoError(t, err)
	require.True(t, ok)

	// the defining generators all lie in the span of the engine basis
	requireAllReduceToZero(t, i.Generators(), gb)
}

func TestNonAug_GroebnerScenarioB(t *testing.T) {
	// graphic matroid of the 3-cycle ≅ U(2, 3): three rank-1 atoms,
	// no proper rank-2 flats, 7 basis elements
	m, err := matroid.Uniform(2, 3)
	require.NoError(t, err)
	i, err := chow.NewIdeal(m, chow.NonAugmented)
	require.NoError(t, err)

	gb, err := i.GroebnerBasis(chow.Combinatorial)
	require.NoError(t, err)
	require.Equal(t, []string{
		"A0", "A1", "A2",
		"A0*A1", "A0*A2", "A1*A2",
		"A0*A1*A2",
	}, polyStrings(gb))

	ok, err := poly.IsGroebner(gb)
	require.NoError(t, err)
	require.True(t, ok)

	requireAllReduceToZero(t, i.Generators(), gb)
}

func TestNonAug_GroebnerBoolean(t *testing.T) {
	// rank 3 exercises the chain and rank-power branches
	m, err := matroid.Uniform(3, 3)
	require.NoError(t, err)
	i, err := chow.NewIdeal(m, chow.NonAugmented)
	require.NoError(t, err)

	gb, err := i.GroebnerBasis(chow.Combinatorial)
	require.NoError(t, err)
	require.NotEmpty(t, gb)
	for _, g := range gb {
		require.False(t, g.IsZero(), "engines must suppress zero terms")
	}

	ok, err := poly.IsGroebner(gb)
	require.NoError(t, err)
	require.True(t, ok)
	requireAllReduceToZero(t, i.Generators(), gb)
}

func TestNonAug_GroebnerParallelRankThree(t *testing.T) {
	// bases {abc, abd}: c and d are parallel, so the rank-1 flat {c,d}
	// has two elements while {a} and {b} have one. Chain classification
	// must come from comparability, not cardinality: {a} and {c,d} are
	// an incomparable pair of different sizes and their product belongs
	// in the basis.
	m, err := matroid.FromChars("abcd", "abc", "abd")
	require.NoError(t, err)
	i, err := chow.NewIdeal(m, chow.NonAugmented)
	require.NoError(t, err)
	require.Equal(t, []string{"Aa", "Ab", "Acd", "Aab", "Aacd", "Abcd"},
		i.Ring().Names())

	gb, err := i.GroebnerBasis(chow.Combinatorial)
	require.NoError(t, err)
	require.Contains(t, polyStrings(gb), "Aa*Acd")
	require.Contains(t, polyStrings(gb), "Ab*Acd")

	ok, err := poly.IsGroebner(gb)
	require.NoError(t, err)
	require.True(t, ok)
	requireAllReduceToZero(t, i.Generators(), gb)
}

func TestNonAug_FallbackReturnsGenericBasis(t *testing.T) {
	i, err := chow.NewIdeal(scenarioA(t), chow.NonAugmented)
	require.NoError(t, err)

	gb, err := i.GroebnerBasis(chow.Fallback)
	require.NoError(t, err)
	// reduced basis of (Aa·Abc, Aa − Abc): {Aa − Abc, Abc²}
	require.Equal(t, []string{"Aa - Abc", "Abc^2"}, polyStrings(gb))

	ok, err := poly.IsGroebner(gb)
	require.NoError(t, err)
	require.True(t, ok)
	requireAllReduceToZero(t, i.Generators(), gb)
}
