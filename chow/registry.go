package chow

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/chowring/poly"
)

// registry is the bijection from flats (and, for the FY presentation,
// groundset elements) to the indeterminates of one shared polynomial
// ring.
//
// Naming is validate-then-construct: the human-readable candidate names
// (prefix + concatenated sorted element labels) are built first and the
// ring construction is attempted with them; if any candidate is not a
// usable identifier, or two candidates collide, the whole ring is
// rebuilt with positional names A0..An−1. Either way the label ↔
// indeterminate bijection is the same, and the outcome is deterministic
// for a fixed matroid and label order. A failed pretty-naming attempt is
// expected control flow, never an error.
//
// Variable order is load-bearing: for the FY presentation the groundset
// block comes first, which is exactly what makes the specialized FY
// Gröbner basis triangular in the element variables under the ring's
// lex order.
type registry struct {
	ring     *poly.Ring
	flatVars []poly.Poly          // aligned with lattice flat order
	elemVars map[string]poly.Poly // FY only; nil otherwise
}

// newRegistry issues one indeterminate per flat (and per element for
// AugmentedFY) of the lattice.
func newRegistry(lat *Lattice, pres Presentation) *registry {
	augmented := pres == AugmentedFY

	// --- 1. Candidate human-readable names ---
	var names []string
	if augmented {
		for _, x := range lat.Ground() {
			names = append(names, "A"+x)
		}
	}
	flatPrefix := "A"
	if augmented {
		flatPrefix = "B"
	}
	for _, f := range lat.Flats() {
		names = append(names, flatPrefix+strings.Join(f.Elements(), ""))
	}

	// --- 2. Validate-then-construct, positional fallback on failure ---
	ring, err := poly.NewRing(names)
	if err != nil {
		for i := range names {
			names[i] = fmt.Sprintf("A%d", i)
		}
		ring, err = poly.NewRing(names)
		if err != nil {
			// positional names are always valid identifiers
			panic(fmt.Sprintf("chow: positional naming failed: %v", err))
		}
	}

	// --- 3. Fix the bijection: element block first, then flats ---
	gens := ring.Gens()
	reg := &registry{ring: ring}
	offset := 0
	if augmented {
		reg.elemVars = make(map[string]poly.Poly, len(lat.Ground()))
		for i, x := range lat.Ground() {
			reg.elemVars[x] = gens[i]
		}
		offset = len(lat.Ground())
	}
	reg.flatVars = gens[offset:]
	return reg
}

// generatorMap exposes the bijection keyed by flat Key() and bare
// element label (the two key spaces cannot collide: flat keys are
// brace-wrapped).
func (r *registry) generatorMap(lat *Lattice) map[string]poly.Poly {
	out := make(map[string]poly.Poly, len(r.flatVars)+len(r.elemVars))
	for i, v := range r.flatVars {
		out[lat.Flat(i).Key()] = v
	}
	for x, v := range r.elemVars {
		out[x] = v
	}
	return out
}
