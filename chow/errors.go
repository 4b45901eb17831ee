package chow

import "errors"

// Sentinel errors of the Chow ring core. Matched via errors.Is.
var (
	// ErrInvalidMatroid indicates the matroid collaborator is unusable:
	// nil, rank ≤ 0, or a flats enumeration that disagrees with the rank
	// oracle. Surfaced by NewIdeal before any generator is built.
	ErrInvalidMatroid = errors.New("chow: invalid matroid")

	// ErrUnknownPresentation indicates a Presentation value outside the
	// three defined tags.
	ErrUnknownPresentation = errors.New("chow: unknown presentation")

	// ErrUnknownAlgorithm indicates a Gröbner algorithm selector other
	// than Combinatorial or Fallback.
	ErrUnknownAlgorithm = errors.New("chow: unknown groebner algorithm")
)
