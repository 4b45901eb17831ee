package matroid

import (
	"sort"
	"strings"
)

// Set is an immutable, sorted set of string labels.
//
// The zero value is the empty set. Sets are value types: every operation
// returns a fresh Set and never aliases the receiver's backing slice, so
// a Set handed to a consumer stays stable for its whole lifetime.
//
// Ordering of labels is the package's fixed total order: plain
// lexicographic comparison of the label strings. This order is what makes
// variable naming downstream reproducible.
type Set struct {
	elems []string // sorted, deduplicated
}

// NewSet builds a Set from the given labels, sorting and deduplicating.
func NewSet(labels ...string) Set {
	if len(labels) == 0 {
		return Set{}
	}
	cp := make([]string, len(labels))
	copy(cp, labels)
	sort.Strings(cp)
	// in-place dedup on the private copy
	out := cp[:1]
	for _, l := range cp[1:] {
		if l != out[len(out)-1] {
			out = append(out, l)
		}
	}
	return Set{elems: out}
}

// Chars builds a Set treating every rune of s as a one-character label.
// Chars("abc") == NewSet("a", "b", "c"). Convenient for the classic
// single-letter groundsets of the matroid literature.
func Chars(s string) Set {
	labels := make([]string, 0, len(s))
	for _, r := range s {
		labels = append(labels, string(r))
	}
	return NewSet(labels...)
}

// Len returns the number of elements.
func (s Set) Len() int { return len(s.elems) }

// IsEmpty reports whether the set has no elements.
func (s Set) IsEmpty() bool { return len(s.elems) == 0 }

// Elements returns the labels in sorted order. The returned slice is a
// copy; mutating it does not affect the Set.
func (s Set) Elements() []string {
	cp := make([]string, len(s.elems))
	copy(cp, s.elems)
	return cp
}

// Contains reports whether label is an element of s. O(log n).
func (s Set) Contains(label string) bool {
	i := sort.SearchStrings(s.elems, label)
	return i < len(s.elems) && s.elems[i] == label
}

// SubsetOf reports s ⊆ t. O(|s| + |t|) merge scan.
func (s Set) SubsetOf(t Set) bool {
	i, j := 0, 0
	for i < len(s.elems) && j < len(t.elems) {
		switch {
		case s.elems[i] == t.elems[j]:
			i++
			j++
		case s.elems[i] > t.elems[j]:
			j++
		default:
			return false // element of s absent from t
		}
	}
	return i == len(s.elems)
}

// ProperSubsetOf reports s ⊊ t.
func (s Set) ProperSubsetOf(t Set) bool {
	return len(s.elems) < len(t.elems) && s.SubsetOf(t)
}

// Equal reports element-wise equality.
func (s Set) Equal(t Set) bool {
	if len(s.elems) != len(t.elems) {
		return false
	}
	for i := range s.elems {
		if s.elems[i] != t.elems[i] {
			return false
		}
	}
	return true
}

// Union returns s ∪ t as a new Set.
func (s Set) Union(t Set) Set {
	merged := make([]string, 0, len(s.elems)+len(t.elems))
	merged = append(merged, s.elems...)
	merged = append(merged, t.elems...)
	return NewSet(merged...)
}

// InterSize returns |s ∩ t| without materializing the intersection;
// this is the hot path of BasisMatroid.Rank.
func (s Set) InterSize(t Set) int {
	i, j, n := 0, 0, 0
	for i < len(s.elems) && j < len(t.elems) {
		switch {
		case s.elems[i] == t.elems[j]:
			n++
			i++
			j++
		case s.elems[i] < t.elems[j]:
			i++
		default:
			j++
		}
	}
	return n
}

// Key returns a canonical string form usable as a map key. Distinct sets
// always produce distinct keys; single-element sets never collide with a
// bare element label because of the surrounding braces.
func (s Set) Key() string {
	return "{" + strings.Join(s.elems, ",") + "}"
}

// String renders the set for display, e.g. {a, bc, d}.
func (s Set) String() string {
	return "{" + strings.Join(s.elems, ", ") + "}"
}

// Compare orders sets by (cardinality, then lexicographic on elements).
// Returns -1, 0, or +1. This is the order used wherever a deterministic
// sequence of flats is required.
func Compare(a, b Set) int {
	if d := len(a.elems) - len(b.elems); d != 0 {
		if d < 0 {
			return -1
		}
		return 1
	}
	for i := range a.elems {
		if a.elems[i] != b.elems[i] {
			if a.elems[i] < b.elems[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// SortSets sorts the slice in place under Compare.
func SortSets(sets []Set) {
	sort.Slice(sets, func(i, j int) bool { return Compare(sets[i], sets[j]) < 0 })
}
