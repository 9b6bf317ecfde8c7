// Package compact removes duplicates from sorted slices in place.
package compact

// Compact deduplicates a non-decreasing sorted slice in place and
// returns the number of distinct values. After the call the first
// count positions of s hold the distinct values in their original
// order; the tail beyond count keeps stale values.
//
// Compact does a single O(len(s)) pass with no allocation. Input that
// is not sorted is a caller bug: the result then only reflects the
// adjacent comparisons actually made.
func Compact[T comparable](s []T) int {
	if len(s) == 0 {
		return 0
	}
	w := 0
	for i := 1; i < len(s); i++ {
		if s[i] != s[w] {
			w++
			s[w] = s[i]
		}
	}
	return w + 1
}

// CompactFunc is Compact with a caller-supplied equality. eq must be
// consistent with the order the slice was sorted by.
func CompactFunc[T any](s []T, eq func(a, b T) bool) int {
	if len(s) == 0 {
		return 0
	}
	w := 0
	for i := 1; i < len(s); i++ {
		if !eq(s[i], s[w]) {
			w++
			s[w] = s[i]
		}
	}
	return w + 1
}
