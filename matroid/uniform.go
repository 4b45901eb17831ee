package matroid

import "fmt"

// Uniform returns the uniform matroid U(k, n): groundset {"0", ..., n-1}
// (decimal labels), every k-subset a basis.
//
// Returns ErrBadUniform unless 0 < k ≤ n and n ≤ 15 (the basis list is
// C(n, k) sets; beyond n = 15 downstream flat enumeration is hopeless
// anyway).
func Uniform(k, n int) (*BasisMatroid, error) {
	if k <= 0 || k > n || n > 15 {
		return nil, fmt.Errorf("U(%d, %d): %w", k, n, ErrBadUniform)
	}
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("%d", i)
	}
	var bases []Set
	for mask := 0; mask < 1<<n; mask++ {
		if popcount(mask) != k {
			continue
		}
		bases = append(bases, subsetOf(labels, mask))
	}
	return New(NewSet(labels...), bases, WithName(fmt.Sprintf("U(%d, %d)", k, n)))
}

func popcount(x int) int {
	n := 0
	for ; x != 0; x &= x - 1 {
		n++
	}
	return n
}
