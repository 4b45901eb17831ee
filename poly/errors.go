package poly

import "errors"

// Sentinel errors for the polynomial substrate. Matched via errors.Is.
var (
	// ErrBadVarNames indicates NewRing was given a duplicate, empty or
	// non-identifier variable name.
	ErrBadVarNames = errors.New("poly: invalid variable names")

	// ErrRingMismatch indicates an operation mixed polynomials from two
	// different rings. Binary Poly methods panic with this error (mixing
	// rings is a programmer error); package-level functions return it.
	ErrRingMismatch = errors.New("poly: polynomials from different rings")

	// ErrOutOfRange indicates a variable index outside the ring.
	ErrOutOfRange = errors.New("poly: variable index out of range")

	// ErrNegativeExponent indicates Pow was called with a negative power.
	ErrNegativeExponent = errors.New("poly: negative exponent")
)
