package algorithms

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
)

// CreatePopulation creates a size×D population, D = len(bounds), with each
// variable drawn uniformly from its bounds. Values are filled row by row.
func (n *NSGAII) CreatePopulation(size int, bounds []framework.Bounds) (*mat.Dense, error) {
	allErrs := framework.ValidateBounds(bounds, field.NewPath("bounds"))
	if size <= 0 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("size"), size, "must be positive"))
	}
	if err := framework.ValidationError(allErrs); err != nil {
		return nil, err
	}

	dists := make([]distuv.Uniform, len(bounds))
	for j, b := range bounds {
		dists[j] = distuv.Uniform{Min: b.L, Max: b.H, Src: n.rng}
	}

	population := mat.NewDense(size, len(bounds), nil)
	for i := 0; i < size; i++ {
		for j := range dists {
			population.Set(i, j, dists[j].Rand())
		}
	}
	n.logger.V(5).Info("Created population", "size", size, "variables", len(bounds))
	return population, nil
}

// Evaluate applies every objective function to the N×D population and
// concatenates the resulting columns into an N×M objective matrix. Every
// value must be finite.
func Evaluate(population mat.Matrix, funcs []framework.ObjectiveFunc) (*mat.Dense, error) {
	rows, _ := population.Dims()
	var allErrs field.ErrorList
	if rows == 0 {
		allErrs = append(allErrs, field.Required(field.NewPath("population"), "population must not be empty"))
	}
	if len(funcs) == 0 {
		allErrs = append(allErrs, field.Required(field.NewPath("objectives"), "at least one objective function is required"))
	}
	if err := framework.ValidationError(allErrs); err != nil {
		return nil, err
	}

	objectives := mat.NewDense(rows, len(funcs), nil)
	for j, f := range funcs {
		fldPath := field.NewPath("objectives").Index(j)
		column := f(population)
		if column.Len() != rows {
			allErrs = append(allErrs, field.Invalid(fldPath, column.Len(), fmt.Sprintf("objective must return %d values", rows)))
			continue
		}
		for i := 0; i < rows; i++ {
			v := column.AtVec(i)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				allErrs = append(allErrs, field.Invalid(fldPath.Index(i), v, "objective value must be finite"))
				continue
			}
			objectives.Set(i, j, v)
		}
	}
	if err := framework.ValidationError(allErrs); err != nil {
		return nil, err
	}
	return objectives, nil
}
