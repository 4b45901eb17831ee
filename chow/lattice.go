package chow

import (
	"fmt"

	"github.com/katalvlaran/chowring/matroid"
)

// Lattice is the flat lattice view of a matroid: the proper non-empty
// flats (rank 1 through matroid rank − 1), in a fixed deterministic
// order (rank ascending, then cardinality, then label-lexicographic),
// plus the containment indexes the ideal builders and Gröbner engines
// query.
//
// Flats are addressed by index into this fixed order everywhere in the
// package; the sets themselves are only materialized for containment
// tests. A Lattice is immutable after NewLattice returns.
type Lattice struct {
	m          matroid.Matroid
	mrank      int
	ground     []string // sorted groundset labels
	flats      []matroid.Set
	ranks      []int            // ranks[i] = rank of flats[i]
	containing map[string][]int // element label → indices of flats containing it
}

// NewLattice derives the flat lattice view, validating the collaborator
// on the way (fail-fast, before anything downstream runs):
//
//   - nil matroid, empty groundset, or rank ≤ 0  → ErrInvalidMatroid
//   - a flat outside the groundset, an empty proper flat, or a flat F
//     with Rank(F) different from its slice rank → ErrInvalidMatroid
//
// A matroid of rank exactly 1 is fine: the lattice is simply empty.
func NewLattice(m matroid.Matroid) (*Lattice, error) {
	if m == nil {
		return nil, fmt.Errorf("nil matroid: %w", ErrInvalidMatroid)
	}
	ground := m.Groundset()
	if ground.IsEmpty() {
		return nil, fmt.Errorf("empty groundset: %w", ErrInvalidMatroid)
	}
	mrank := m.Rank(ground)
	if mrank <= 0 {
		return nil, fmt.Errorf("matroid rank %d: %w", mrank, ErrInvalidMatroid)
	}

	lat := &Lattice{
		m:          m,
		mrank:      mrank,
		ground:     ground.Elements(),
		containing: make(map[string][]int, ground.Len()),
	}
	for r := 1; r < mrank; r++ {
		slice := m.Flats(r)
		matroid.SortSets(slice) // do not trust collaborator ordering
		for _, f := range slice {
			if f.IsEmpty() {
				return nil, fmt.Errorf("empty flat at rank %d: %w", r, ErrInvalidMatroid)
			}
			if !f.SubsetOf(ground) {
				return nil, fmt.Errorf("flat %s outside groundset: %w", f, ErrInvalidMatroid)
			}
			if got := m.Rank(f); got != r {
				return nil, fmt.Errorf("flat %s: rank %d in slice %d: %w",
					f, got, r, ErrInvalidMatroid)
			}
			lat.flats = append(lat.flats, f)
			lat.ranks = append(lat.ranks, r)
		}
	}
	for i, f := range lat.flats {
		for _, x := range f.Elements() {
			lat.containing[x] = append(lat.containing[x], i)
		}
	}
	return lat, nil
}

// Len returns the number of proper non-empty flats.
func (l *Lattice) Len() int { return len(l.flats) }

// Flat returns the i-th flat in lattice order.
func (l *Lattice) Flat(i int) matroid.Set { return l.flats[i] }

// Flats returns all proper non-empty flats in lattice order (a copy).
func (l *Lattice) Flats() []matroid.Set {
	cp := make([]matroid.Set, len(l.flats))
	copy(cp, l.flats)
	return cp
}

// RankOf returns the rank of the i-th flat.
func (l *Lattice) RankOf(i int) int { return l.ranks[i] }

// MatroidRank returns the rank of the underlying matroid.
func (l *Lattice) MatroidRank() int { return l.mrank }

// Ground returns the sorted groundset labels (a copy).
func (l *Lattice) Ground() []string {
	cp := make([]string, len(l.ground))
	copy(cp, l.ground)
	return cp
}

// Incomparable reports whether flats i and j are incomparable: neither
// contains the other. A flat is comparable with itself.
func (l *Lattice) Incomparable(i, j int) bool {
	return !l.flats[i].SubsetOf(l.flats[j]) && !l.flats[j].SubsetOf(l.flats[i])
}

// FlatsContaining returns the indices of flats containing the element
// (a copy; empty for unknown labels).
func (l *Lattice) FlatsContaining(label string) []int {
	src := l.containing[label]
	cp := make([]int, len(src))
	copy(cp, src)
	return cp
}

// IsChain reports whether the flats at the given indices are pairwise
// comparable. Empty and single-element subsets are chains.
func (l *Lattice) IsChain(idx []int) bool {
	for a := 0; a < len(idx); a++ {
		for b := a + 1; b < len(idx); b++ {
			if l.Incomparable(idx[a], idx[b]) {
				return false
			}
		}
	}
	return true
}

// IsAntichain reports whether the flats at the given indices are
// pairwise incomparable (and distinct). Empty and single-element
// subsets are antichains.
func (l *Lattice) IsAntichain(idx []int) bool {
	for a := 0; a < len(idx); a++ {
		for b := a + 1; b < len(idx); b++ {
			if !l.Incomparable(idx[a], idx[b]) {
				return false
			}
		}
	}
	return true
}
