package matroid

import "fmt"

// BasisMatroid is a matroid given by the explicit list of its bases.
//
// Rank is derived directly from the basis list: for any S ⊆ E,
// rank(S) = max over bases B of |B ∩ S|. Flats are derived from the rank
// function by the closure test (S is closed iff adjoining any outside
// element raises the rank). Both derivations are exact for every matroid;
// they are just not fast, which is fine at the groundset sizes the Chow
// ring construction tolerates.
//
// BasisMatroid is immutable after New returns.
type BasisMatroid struct {
	name   string
	ground Set
	bases  []Set
	rank   int // common cardinality of the bases
}

// Option configures a BasisMatroid before construction.
type Option func(*BasisMatroid)

// WithName overrides the display name (default "M(|bases| bases on E)").
func WithName(name string) Option {
	return func(m *BasisMatroid) { m.name = name }
}

// New builds a BasisMatroid over ground from the given bases.
//
// Validation (fail-fast, sentinel errors):
//   - ground must be non-empty            → ErrEmptyGroundset
//   - at least one basis                  → ErrNoBases
//   - every basis ⊆ ground               → ErrBasisNotSubset
//   - all bases share one cardinality     → ErrBasisSize
//
// New does not verify the basis-exchange axiom; callers are expected to
// supply genuine matroid bases, as with any matroid software taking a
// basis list.
func New(ground Set, bases []Set, opts ...Option) (*BasisMatroid, error) {
	if ground.IsEmpty() {
		return nil, ErrEmptyGroundset
	}
	if len(bases) == 0 {
		return nil, ErrNoBases
	}
	cp := make([]Set, len(bases))
	copy(cp, bases)
	SortSets(cp)
	rank := cp[0].Len()
	for _, b := range cp {
		if !b.SubsetOf(ground) {
			return nil, fmt.Errorf("basis %s: %w", b, ErrBasisNotSubset)
		}
		if b.Len() != rank {
			return nil, fmt.Errorf("basis %s has %d elements, want %d: %w",
				b, b.Len(), rank, ErrBasisSize)
		}
	}
	m := &BasisMatroid{
		name:   fmt.Sprintf("M(%d bases on %s)", len(cp), ground),
		ground: ground,
		bases:  cp,
		rank:   rank,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// FromChars builds a BasisMatroid from single-character labels:
// FromChars("abc", "ab", "ac") is the rank-2 matroid on {a,b,c} with
// bases {a,b} and {a,c}. Mirrors the groundset='abc', bases=['ab','ac']
// shorthand common in the literature.
func FromChars(ground string, bases ...string) (*BasisMatroid, error) {
	bs := make([]Set, 0, len(bases))
	for _, b := range bases {
		bs = append(bs, Chars(b))
	}
	return New(Chars(ground), bs)
}

// Name implements Matroid.
func (m *BasisMatroid) Name() string { return m.name }

// Groundset implements Matroid.
func (m *BasisMatroid) Groundset() Set { return m.ground }

// Rank implements Matroid: rank(S) = max over bases |B ∩ S|.
func (m *BasisMatroid) Rank(s Set) int {
	best := 0
	for _, b := range m.bases {
		if n := b.InterSize(s); n > best {
			best = n
		}
	}
	return best
}

// Flats implements Matroid by full subset enumeration: a subset S is a
// flat of rank r iff rank(S) == r and rank(S ∪ {e}) > rank(S) for every
// element e outside S. O(2^|E| · |E| · |bases|), acceptable for the
// small groundsets this library targets.
func (m *BasisMatroid) Flats(r int) []Set {
	if r < 0 || r > m.rank {
		return nil
	}
	elems := m.ground.Elements()
	n := len(elems)
	var flats []Set
	for mask := 0; mask < 1<<n; mask++ {
		sub := subsetOf(elems, mask)
		if m.Rank(sub) != r {
			continue
		}
		if m.isClosed(sub, elems, r) {
			flats = append(flats, sub)
		}
	}
	SortSets(flats)
	return flats
}

// isClosed reports whether adjoining any outside element raises the rank
// above r (the closure test).
func (m *BasisMatroid) isClosed(s Set, elems []string, r int) bool {
	for _, e := range elems {
		if s.Contains(e) {
			continue
		}
		if m.Rank(s.Union(NewSet(e))) == r {
			return false
		}
	}
	return true
}

// subsetOf materializes the subset of elems selected by the bitmask.
func subsetOf(elems []string, mask int) Set {
	picked := make([]string, 0, len(elems))
	for i, e := range elems {
		if mask&(1<<i) != 0 {
			picked = append(picked, e)
		}
	}
	return NewSet(picked...)
}
