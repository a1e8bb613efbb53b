package sortbench

import "cmp"

// InsertionSort sorts s in place and returns it.
func InsertionSort[T cmp.Ordered](s []T) []T {
	return InsertionSortFunc(s, cmp.Less[T])
}

// InsertionSortFunc is InsertionSort ordered by less. Only elements strictly
// greater than the key are shifted, so equal elements never pass each other.
func InsertionSortFunc[T any](s []T, less func(a, b T) bool) []T {
	for i := 1; i < len(s); i++ {
		key := s[i]
		j := i - 1
		for j >= 0 && less(key, s[j]) {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = key
	}
	return s
}
