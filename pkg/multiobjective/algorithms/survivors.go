package algorithms

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
)

// SelectSurvivors reduces a (typically parents + offspring) population to
// size individuals. Whole fronts are taken in rank order while they fit; the
// first front that does not fit is truncated by descending crowding
// distance. It returns the surviving rows and their indices in the input.
func SelectSurvivors(objectives, population mat.Matrix, size int) (*mat.Dense, []int, error) {
	total, numVars := population.Dims()
	objRows, _ := objectives.Dims()
	var allErrs field.ErrorList
	if objRows != total {
		allErrs = append(allErrs, field.Invalid(field.NewPath("objectives"), objRows, fmt.Sprintf("must have one row per individual (%d)", total)))
	}
	if size <= 0 || size > total {
		allErrs = append(allErrs, field.Invalid(field.NewPath("size"), size, fmt.Sprintf("must be in [1, %d]", total)))
	}
	if err := framework.ValidationError(allErrs); err != nil {
		return nil, nil, err
	}

	fronts, err := NonDominatedSort(objectives)
	if err != nil {
		return nil, nil, err
	}
	distances, err := CrowdingDistanceByFront(objectives, fronts)
	if err != nil {
		return nil, nil, err
	}

	selected := make([]int, 0, size)
	for _, members := range fronts.Members {
		if len(selected)+len(members) <= size {
			selected = append(selected, members...)
			continue
		}
		// If needed, add remaining individuals based on crowding distance
		last := append([]int(nil), members...)
		sort.SliceStable(last, func(i, j int) bool {
			return distances[last[i]] > distances[last[j]]
		})
		selected = append(selected, last[:size-len(selected)]...)
		break
	}

	survivors := mat.NewDense(size, numVars, nil)
	row := make([]float64, numVars)
	for i, idx := range selected {
		mat.Row(row, idx, population)
		survivors.SetRow(i, row)
	}
	return survivors, selected, nil
}
