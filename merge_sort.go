package sortbench

import "cmp"

// MergeSort returns a new slice holding s in non-decreasing order. s is left
// untouched unless it has fewer than two elements, in which case it is
// returned as is.
func MergeSort[T cmp.Ordered](s []T) []T {
	return MergeSortFunc(s, cmp.Less[T])
}

// MergeSortFunc is MergeSort ordered by less, which must be a strict weak
// ordering. Elements that compare equal keep their original order.
func MergeSortFunc[T any](s []T, less func(a, b T) bool) []T {
	if len(s) <= 1 {
		return s
	}
	mid := len(s) / 2
	return merge(MergeSortFunc(s[:mid], less), MergeSortFunc(s[mid:], less), less)
}

// merge interleaves two sorted runs. On a tie the left run wins.
func merge[T any](left, right []T, less func(a, b T) bool) []T {
	merged := make([]T, 0, len(left)+len(right))
	l, r := 0, 0
	for l < len(left) && r < len(right) {
		if less(right[r], left[l]) {
			merged = append(merged, right[r])
			r++
		} else {
			merged = append(merged, left[l])
			l++
		}
	}
	merged = append(merged, left[l:]...)
	return append(merged, right[r:]...)
}
