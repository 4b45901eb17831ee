package chow

import (
	"fmt"

	"github.com/katalvlaran/chowring/matroid"
	"github.com/katalvlaran/chowring/poly"
)

// Presentation is the closed set of Chow ring ideal presentations.
type Presentation int

const (
	// NonAugmented indexes variables by proper non-empty flats only.
	NonAugmented Presentation = iota
	// AugmentedFY adds one variable per groundset element
	// (Feitchner–Yuzvinsky presentation).
	AugmentedFY
	// AugmentedAtomFree keeps flat variables only and encodes the
	// groundset constraints through atom-sum relations.
	AugmentedAtomFree
)

// String implements fmt.Stringer.
func (p Presentation) String() string {
	switch p {
	case NonAugmented:
		return "non-augmented"
	case AugmentedFY:
		return "augmented (Feitchner–Yuzvinsky)"
	case AugmentedAtomFree:
		return "augmented (atom-free)"
	default:
		return fmt.Sprintf("presentation(%d)", int(p))
	}
}

// Algorithm selects how GroebnerBasis computes.
type Algorithm string

const (
	// Combinatorial runs the presentation's specialized engine.
	Combinatorial Algorithm = "combinatorial"
	// Fallback reruns generic Buchberger on the generator sequence.
	Fallback Algorithm = "fallback"
)

// Ideal is a Chow ring ideal of a matroid in one of the three
// presentations.
//
// An Ideal is built atomically by NewIdeal (flat lattice, variable
// registry and the generator sequence are fully materialized before the
// constructor returns) and is immutable afterwards. Every accessor
// returns copies; GroebnerBasis recomputes per call and never mutates.
type Ideal struct {
	pres Presentation
	m    matroid.Matroid
	lat  *Lattice
	reg  *registry
	gens []poly.Poly
}

// NewIdeal constructs the Chow ring ideal of m in the given
// presentation (coefficients are the substrate's exact rationals).
//
// Errors: ErrUnknownPresentation for a tag outside the three defined
// ones; ErrInvalidMatroid (wrapped, from NewLattice) for a broken
// collaborator. A rank-1 matroid is accepted and yields the trivial
// ideal: no proper flats, empty generator sequence.
func NewIdeal(m matroid.Matroid, pres Presentation) (*Ideal, error) {
	switch pres {
	case NonAugmented, AugmentedFY, AugmentedAtomFree:
	default:
		return nil, fmt.Errorf("%v: %w", pres, ErrUnknownPresentation)
	}
	lat, err := NewLattice(m)
	if err != nil {
		return nil, err
	}
	reg := newRegistry(lat, pres)

	var gens []poly.Poly
	switch pres {
	case NonAugmented:
		gens = buildNonAugGens(lat, reg)
	case AugmentedFY:
		gens = buildFYGens(lat, reg)
	case AugmentedAtomFree:
		gens = buildAtomFreeGens(lat, reg)
	}
	return &Ideal{pres: pres, m: m, lat: lat, reg: reg, gens: gens}, nil
}

// Matroid returns the underlying matroid.
func (i *Ideal) Matroid() matroid.Matroid { return i.m }

// Presentation returns the ideal's presentation tag.
func (i *Ideal) Presentation() Presentation { return i.pres }

// Ring returns the polynomial ring the ideal lives in.
func (i *Ideal) Ring() *poly.Ring { return i.reg.ring }

// Lattice returns the flat lattice view the ideal was built from.
func (i *Ideal) Lattice() *Lattice { return i.lat }

// Generators returns the defining generator sequence, in construction
// order (a copy). Redundant generators are preserved on purpose: the
// sequence mirrors the presentation's definition, not a reduced set;
// ask GroebnerBasis for reduction.
func (i *Ideal) Generators() []poly.Poly {
	cp := make([]poly.Poly, len(i.gens))
	copy(cp, i.gens)
	return cp
}

// FlatsGenerator returns the flat/element → indeterminate mapping.
// Flats are keyed by their canonical Set.Key(); groundset elements (FY
// presentation only) by their bare label.
func (i *Ideal) FlatsGenerator() map[string]poly.Poly {
	return i.reg.generatorMap(i.lat)
}

// FlatVar returns the indeterminate of a flat, if f is one of the
// lattice's proper flats.
func (i *Ideal) FlatVar(f matroid.Set) (poly.Poly, bool) {
	for j := 0; j < i.lat.Len(); j++ {
		if i.lat.Flat(j).Equal(f) {
			return i.reg.flatVars[j], true
		}
	}
	return poly.Poly{}, false
}

// ElementVar returns the indeterminate of a groundset element; only the
// AugmentedFY presentation has element variables.
func (i *Ideal) ElementVar(label string) (poly.Poly, bool) {
	v, ok := i.reg.elemVars[label]
	return v, ok
}

// DisplayName renders the ideal for humans, e.g.
// "Augmented Chow ring ideal of U(2, 3) (atom-free presentation)".
func (i *Ideal) DisplayName() string {
	switch i.pres {
	case AugmentedFY:
		return fmt.Sprintf("Augmented Chow ring ideal of %s (Feitchner–Yuzvinsky presentation)", i.m.Name())
	case AugmentedAtomFree:
		return fmt.Sprintf("Augmented Chow ring ideal of %s (atom-free presentation)", i.m.Name())
	default:
		return fmt.Sprintf("Chow ring ideal of %s (non-augmented)", i.m.Name())
	}
}

// GroebnerBasis computes a Gröbner basis of the ideal.
//
// Combinatorial dispatches to the presentation's specialized engine
// (exponential subset enumeration; see engine.go). Fallback rebuilds the
// ideal from the generator sequence and returns the generic Buchberger
// basis, the full generic result rather than a shortcut. Any other selector
// fails with ErrUnknownAlgorithm.
//
// The computation is lazy and uncached: every call recomputes, and the
// Ideal itself is never mutated.
func (i *Ideal) GroebnerBasis(algorithm Algorithm) ([]poly.Poly, error) {
	switch algorithm {
	case Fallback:
		return poly.GroebnerBasis(i.gens)
	case Combinatorial:
		switch i.pres {
		case AugmentedFY:
			return groebnerFY(i.lat, i.reg), nil
		case AugmentedAtomFree:
			return groebnerAtomFree(i.lat, i.reg), nil
		default:
			return groebnerNonAug(i.lat, i.reg), nil
		}
	default:
		return nil, fmt.Errorf("algorithm %q: %w", string(algorithm), ErrUnknownAlgorithm)
	}
}
