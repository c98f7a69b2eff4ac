package algorithms

import (
	"fmt"
	"sort"

	"k8s.io/apimachinery/pkg/util/validation/field"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
)

// Fronts is a ranked partition of a population. Ranks start at 1 (the
// non-dominated front).
type Fronts struct {
	// Ranks[i] is the front rank of individual i.
	Ranks []int
	// Members[k] lists, in ascending index order, the individuals of rank k+1.
	Members [][]int
}

// Len returns the number of fronts.
func (f *Fronts) Len() int {
	return len(f.Members)
}

// Size returns the number of ranked individuals.
func (f *Fronts) Size() int {
	return len(f.Ranks)
}

// Rank returns the front rank of individual i.
func (f *Fronts) Rank(i int) int {
	return f.Ranks[i]
}

// Front returns the members of the given rank, or nil when the rank does not exist.
func (f *Fronts) Front(rank int) []int {
	if rank < 1 || rank > len(f.Members) {
		return nil
	}
	return f.Members[rank-1]
}

// newFrontsFromRanks builds the per-front member lists from a rank array.
func newFrontsFromRanks(ranks []int) *Fronts {
	numFronts := 0
	for _, r := range ranks {
		numFronts = max(numFronts, r)
	}
	members := make([][]int, numFronts)
	for i, r := range ranks {
		members[r-1] = append(members[r-1], i)
	}
	return &Fronts{Ranks: ranks, Members: members}
}

// FlattenFronts converts a rank-keyed assignment (rank -> member indices)
// over n individuals into a rank array. The iteration order of the map does
// not affect the result. The assignment must be a partition of [0, n) into
// non-empty fronts ranked 1..K.
func FlattenFronts(n int, assignment map[int][]int) ([]int, error) {
	ranks := make([]int, n)
	seen := make([]int, n)

	keys := make([]int, 0, len(assignment))
	for rank := range assignment {
		keys = append(keys, rank)
	}
	sort.Ints(keys)

	var allErrs field.ErrorList
	for _, rank := range keys {
		fldPath := field.NewPath("fronts").Key(fmt.Sprint(rank))
		if rank < 1 {
			allErrs = append(allErrs, field.Invalid(fldPath, rank, "front ranks start at 1"))
			continue
		}
		for _, idx := range assignment[rank] {
			if idx < 0 || idx >= n {
				allErrs = append(allErrs, field.Invalid(fldPath, idx, fmt.Sprintf("index out of range [0, %d)", n)))
				continue
			}
			ranks[idx] = rank
			seen[idx]++
		}
	}
	if len(keys) > 0 {
		for rank := 1; rank <= keys[len(keys)-1]; rank++ {
			if len(assignment[rank]) == 0 {
				allErrs = append(allErrs, field.Invalid(field.NewPath("fronts").Key(fmt.Sprint(rank)), rank, "front ranks must be contiguous from 1"))
			}
		}
	}
	if err := framework.ValidationError(allErrs); err != nil {
		return nil, err
	}
	if err := checkPartition(seen); err != nil {
		return nil, err
	}
	return ranks, nil
}

// checkPartition verifies that every index was assigned exactly once.
// counts[i] is the number of fronts individual i was placed in.
func checkPartition(counts []int) error {
	var unassigned, duplicated []int
	for i, c := range counts {
		switch {
		case c == 0:
			unassigned = append(unassigned, i)
		case c > 1:
			duplicated = append(duplicated, i)
		}
	}
	if len(unassigned) == 0 && len(duplicated) == 0 {
		return nil
	}
	err := &framework.InvariantError{
		Size:       len(counts),
		Unassigned: unassigned,
		Duplicated: duplicated,
	}
	klog.ErrorS(err, "Front assignment is not a partition", "size", len(counts), "unassigned", unassigned, "duplicated", duplicated)
	return err
}
