package sortbench

import (
	"fmt"
)

// A Verification grades one sort output against the sample it came from.
// Set fidelity is the share of the input multiset found in the output and
// sortedness is derived from the inversion count of the output. Both are in
// [0, 100].
type Verification struct {
	SetFidelity byte
	Sortedness  byte
	Inversions  uint64
	InputLen    int
	OutputLen   int
}

// Verify compares output with input. Neither slice is modified.
func Verify(input, output []int) *Verification {
	v := &Verification{
		InputLen:  len(input),
		OutputLen: len(output),
	}

	counts := make(map[int]int, len(input))
	for _, x := range input {
		counts[x]++
	}
	matched := 0
	for _, x := range output {
		if counts[x] > 0 {
			counts[x]--
			matched++
		}
	}
	total := max(len(input), len(output))
	if total == 0 {
		v.SetFidelity = 100
	} else {
		v.SetFidelity = byte(matched * 100 / total)
	}

	scratch := make([]int, len(output))
	copy(scratch, output)
	v.Inversions = countInversions(scratch)
	maxInversions := uint64(len(output)) * uint64(max(len(output)-1, 0)) / 2

	if maxInversions == 0 {
		v.Sortedness = 100
	} else {
		v.Sortedness = byte(100 - v.Inversions*100/maxInversions)
	}

	if DEBUG {
		Log.Debugf("Inversions: %v Max Inversions: %v", v.Inversions, maxInversions)
	}

	return v
}

// OK reports whether the output was a sorted permutation of the input.
func (v *Verification) OK() bool {
	return v.InputLen == v.OutputLen && v.SetFidelity == 100 && v.Inversions == 0
}

func (v *Verification) Err(algorithm string) error {
	if v.OK() {
		return nil
	}
	return fmt.Errorf("%w: [%s] returned %d of %d elements, set fidelity [%d], sortedness [%d], inversions [%d]",
		ErrVerificationFailed, algorithm, v.OutputLen, v.InputLen, v.SetFidelity, v.Sortedness, v.Inversions)
}

// countInversions sorts a and returns the number of pairs i < j with
// a[i] > a[j] in its original order.
func countInversions(a []int) uint64 {
	if len(a) < 2 {
		return 0
	}
	mid := len(a) / 2
	inversions := countInversions(a[:mid]) + countInversions(a[mid:])

	merged := make([]int, 0, len(a))
	l, r := 0, mid
	for l < mid && r < len(a) {
		if a[r] < a[l] {
			merged = append(merged, a[r])
			r++
			inversions += uint64(mid - l)
		} else {
			merged = append(merged, a[l])
			l++
		}
	}
	merged = append(merged, a[l:mid]...)
	merged = append(merged, a[r:]...)
	copy(a, merged)

	return inversions
}
