package sortbench

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/xrash/smetrics"
)

// SortFunc sorts its argument, either in place or into a new slice, and
// returns the sorted result. The Runner always hands it a private copy.
type SortFunc func([]int) []int

type Algorithm struct {
	Name string
	Sort SortFunc
}

// ReferenceSort sorts s in place with the standard library and returns it.
// It is the baseline the other algorithms are measured against.
func ReferenceSort[T cmp.Ordered](s []T) []T {
	slices.Sort(s)
	return s
}

// DefaultAlgorithms returns the full algorithm set in registration order.
func DefaultAlgorithms() []Algorithm {
	return []Algorithm{
		{Name: MergeSortName, Sort: MergeSort[int]},
		{Name: InsertionSortName, Sort: InsertionSort[int]},
		{Name: ReferenceSortName, Sort: ReferenceSort[int]},
	}
}

// AlgorithmNames lists the names of algorithms in order.
func AlgorithmNames(algorithms []Algorithm) []string {
	names := make([]string, len(algorithms))
	for i, a := range algorithms {
		names[i] = a.Name
	}
	return names
}

// SelectAlgorithms picks algorithms from the registered set by name, in the
// order given. Names match case-insensitively. An empty list selects the whole
// set.
func SelectAlgorithms(names []string) ([]Algorithm, error) {
	registered := DefaultAlgorithms()
	if len(names) == 0 {
		return registered, nil
	}

	selected := make([]Algorithm, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		i := slices.IndexFunc(registered, func(a Algorithm) bool {
			return strings.EqualFold(a.Name, strings.TrimSpace(name))
		})
		if i < 0 {
			return nil, fmt.Errorf("%w: [%s], did you mean [%s]?", ErrUnknownAlgorithm, name,
				closestName(name, AlgorithmNames(registered)))
		}
		if seen[registered[i].Name] {
			return nil, fmt.Errorf("%w: algorithm [%s] is listed more than once", ErrInvalidConfig, registered[i].Name)
		}
		seen[registered[i].Name] = true
		selected = append(selected, registered[i])
	}
	return selected, nil
}

// closestName returns the candidate with the smallest edit distance to name.
func closestName(name string, candidates []string) string {
	best, bestDistance := "", -1
	for _, c := range candidates {
		d := smetrics.WagnerFischer(strings.ToLower(name), strings.ToLower(c), 1, 1, 2)
		if bestDistance < 0 || d < bestDistance {
			best, bestDistance = c, d
		}
	}
	return best
}
