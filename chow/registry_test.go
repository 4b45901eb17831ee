package chow_test

import (
	"testing"

	"github.com/katalvlaran/chowring/chow"
	"github.com/katalvlaran/chowring/matroid"
	"github.com/stretchr/testify/require"
)

func TestNaming_NonAugmented(t *testing.T) {
	i, err := chow.NewIdeal(scenarioA(t), chow.NonAugmented)
	require.NoError(t, err)
	require.Equal(t, []string{"Aa", "Abc"}, i.Ring().Names())
}

func TestNaming_AugmentedFY(t *testing.T) {
	i, err := chow.NewIdeal(scenarioA(t), chow.AugmentedFY)
	require.NoError(t, err)
	// element block first, flats second; this order carries the
	// triangular structure of the FY basis
	require.Equal(t, []string{"Aa", "Ab", "Ac", "Ba", "Bbc"}, i.Ring().Names())

	ya, ok := i.ElementVar("a")
	require.True(t, ok)
	require.Equal(t, "Aa", ya.String())
	_, ok = i.ElementVar("zz")
	require.False(t, ok)

	xf, ok := i.FlatVar(matroid.Chars("bc"))
	require.True(t, ok)
	require.Equal(t, "Bbc", xf.String())
}

func TestNaming_Deterministic(t *testing.T) {
	// same matroid, same label order: identical names, twice
	a, err := chow.NewIdeal(scenarioA(t), chow.NonAugmented)
	require.NoError(t, err)
	b, err := chow.NewIdeal(scenarioA(t), chow.NonAugmented)
	require.NoError(t, err)
	require.Equal(t, a.Ring().Names(), b.Ring().Names())

	fy1, err := chow.NewIdeal(scenarioA(t), chow.AugmentedFY)
	require.NoError(t, err)
	fy2, err := chow.NewIdeal(scenarioA(t), chow.AugmentedFY)
	require.NoError(t, err)
	require.Equal(t, fy1.Ring().Names(), fy2.Ring().Names())
}

func TestNaming_CollisionFallsBackToPositional(t *testing.T) {
	// groundset {a, b, ab}: the flats {ab} and {a,b} both pretty-print
	// as "Aab", so the registry must regenerate positional names while
	// keeping the bijection
	ground := matroid.NewSet("a", "b", "ab")
	bases := []matroid.Set{matroid.NewSet("a", "ab"), matroid.NewSet("b", "ab")}
	m, err := matroid.New(ground, bases)
	require.NoError(t, err)

	i, err := chow.NewIdeal(m, chow.NonAugmented)
	require.NoError(t, err)
	require.Equal(t, []string{"A0", "A1"}, i.Ring().Names())

	// bijection intact: distinct flats ↦ distinct indeterminates
	v0, ok := i.FlatVar(matroid.NewSet("ab"))
	require.True(t, ok)
	v1, ok := i.FlatVar(matroid.NewSet("a", "b"))
	require.True(t, ok)
	require.Equal(t, "A0", v0.String())
	require.Equal(t, "A1", v1.String())
}

func TestNaming_BadIdentifierFallsBackToPositional(t *testing.T) {
	// a "-" label cannot appear in a variable name
	ground := matroid.NewSet("-", "a", "b")
	bases := []matroid.Set{matroid.NewSet("-", "a"), matroid.NewSet("-", "b")}
	m, err := matroid.New(ground, bases)
	require.NoError(t, err)

	i, err := chow.NewIdeal(m, chow.NonAugmented)
	require.NoError(t, err)
	require.Equal(t, []string{"A0", "A1"}, i.Ring().Names())
}

func TestFlatsGenerator_Keys(t *testing.T) {
	i, err := chow.NewIdeal(scenarioA(t), chow.NonAugmented)
	require.NoError(t, err)
	gen := i.FlatsGenerator()
	require.Len(t, gen, 2)
	require.Equal(t, "Aa", gen["{a}"].String())
	require.Equal(t, "Abc", gen["{b,c}"].String())

	fy, err := chow.NewIdeal(scenarioA(t), chow.AugmentedFY)
	require.NoError(t, err)
	gen = fy.FlatsGenerator()
	require.Len(t, gen, 5) // 3 elements + 2 flats
	require.Equal(t, "Ab", gen["b"].String())
	require.Equal(t, "Ba", gen["{a}"].String())
}
