package algorithms

import (
	"gonum.org/v1/gonum/mat"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
)

// NonDominatedSort performs fast non-dominated sorting on an N×M objective
// matrix and returns the ranked fronts. Individuals with equal or mutually
// non-dominating objective vectors share a front.
//
// The pairwise phase is O(N²·M). An *framework.InvariantError is returned if
// the resulting fronts do not cover every individual exactly once.
func NonDominatedSort(objectives mat.Matrix) (*Fronts, error) {
	n, _ := objectives.Dims()
	if n == 0 {
		return &Fronts{Ranks: []int{}}, nil
	}

	points := rows(objectives)
	dominated := make([][]int, n)
	domCount := make([]int, n)

	// Calculate domination for each individual
	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			if p == q {
				continue
			}
			if framework.Dominates(points[p], points[q]) {
				dominated[p] = append(dominated[p], q)
			} else if framework.Dominates(points[q], points[p]) {
				domCount[p]++
			}
		}
	}

	ranks := make([]int, n)
	assigned := make([]int, n)

	// Find first front
	var current []int
	for i := 0; i < n; i++ {
		if domCount[i] == 0 {
			current = append(current, i)
		}
	}

	// Find subsequent fronts
	rank := 1
	for len(current) > 0 {
		var next []int
		for _, idx := range current {
			ranks[idx] = rank
			assigned[idx]++
			for _, dominatedIdx := range dominated[idx] {
				domCount[dominatedIdx]--
				if domCount[dominatedIdx] == 0 {
					next = append(next, dominatedIdx)
				}
			}
		}
		rank++
		current = next
	}

	if err := checkPartition(assigned); err != nil {
		return nil, err
	}
	return newFrontsFromRanks(ranks), nil
}

// rows copies every row of m into its own slice.
func rows(m mat.Matrix) [][]float64 {
	r, _ := m.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = mat.Row(nil, i, m)
	}
	return out
}
