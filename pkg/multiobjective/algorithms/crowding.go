package algorithms

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
)

// CrowdingDistance calculates the crowding distance of every row of an N×M
// objective matrix, treating all rows as one front. The two extreme
// individuals of each objective get +Inf, interior individuals accumulate
// the normalized gap between their sorted neighbours, summed over objectives.
//
// An objective whose values are all equal, or whose range is not finite,
// contributes nothing to interior distances; its extremes are still set to +Inf.
func CrowdingDistance(objectives mat.Matrix) []float64 {
	n, m := objectives.Dims()
	distance := make([]float64, n)
	if n <= 2 {
		for i := range distance {
			distance[i] = math.Inf(1)
		}
		return distance
	}

	order := make([]int, n)
	values := make([]float64, n)
	for obj := 0; obj < m; obj++ {
		mat.Col(values, obj, objectives)
		for i := range order {
			order[i] = i
		}
		// Sort by each objective
		sort.SliceStable(order, func(i, j int) bool {
			return values[order[i]] < values[order[j]]
		})

		// Set boundary points to infinity
		distance[order[0]] = math.Inf(1)
		distance[order[n-1]] = math.Inf(1)

		objectiveRange := floats.Max(values) - floats.Min(values)
		if objectiveRange == 0 || math.IsInf(objectiveRange, 0) || math.IsNaN(objectiveRange) {
			continue
		}

		// Calculate distance for intermediate points
		for i := 1; i < n-1; i++ {
			distance[order[i]] += (values[order[i+1]] - values[order[i-1]]) / objectiveRange
		}
	}
	return distance
}

// CrowdingDistanceByFront computes crowding distances independently inside
// each front and stores them in one array indexed by population index.
// fronts must rank exactly the rows of objectives.
func CrowdingDistanceByFront(objectives mat.Matrix, fronts *Fronts) ([]float64, error) {
	n, m := objectives.Dims()
	if fronts == nil {
		return nil, framework.ValidationError(field.ErrorList{field.Required(field.NewPath("fronts"), "")})
	}
	if fronts.Size() != n {
		return nil, framework.ValidationError(field.ErrorList{
			field.Invalid(field.NewPath("fronts"), fronts.Size(), fmt.Sprintf("must rank one individual per objective row (%d)", n)),
		})
	}
	var allErrs field.ErrorList
	for k, members := range fronts.Members {
		for _, idx := range members {
			if idx < 0 || idx >= n {
				allErrs = append(allErrs, field.Invalid(field.NewPath("fronts").Index(k), idx, fmt.Sprintf("index out of range [0, %d)", n)))
			}
		}
	}
	if err := framework.ValidationError(allErrs); err != nil {
		return nil, err
	}

	distance := make([]float64, n)
	for _, members := range fronts.Members {
		if len(members) == 0 {
			continue
		}
		sub := mat.NewDense(len(members), m, nil)
		for k, idx := range members {
			for j := 0; j < m; j++ {
				sub.Set(k, j, objectives.At(idx, j))
			}
		}
		for k, d := range CrowdingDistance(sub) {
			distance[members[k]] = d
		}
	}
	return distance, nil
}
