package algorithms

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
)

// SBX performs Simulated Binary Crossover of two parents of equal length.
// One uniform draw is consumed per variable. Children are not clipped to
// any bounds.
func (n *NSGAII) SBX(parent1, parent2 []float64) ([]float64, []float64, error) {
	if len(parent1) != len(parent2) {
		return nil, nil, framework.ValidationError(field.ErrorList{
			field.Invalid(field.NewPath("parent2"), len(parent2), fmt.Sprintf("must have the same length as parent1 (%d)", len(parent1))),
		})
	}
	child1, child2 := n.sbx(parent1, parent2)
	return child1, child2, nil
}

func (n *NSGAII) sbx(parent1, parent2 []float64) ([]float64, []float64) {
	child1 := make([]float64, len(parent1))
	child2 := make([]float64, len(parent2))
	exp := 1.0 / (n.SBXDistributionIndex + 1)

	for i := range parent1 {
		u := n.rng.Float64()
		var beta float64
		if u <= 0.5 {
			beta = math.Pow(2*u, exp)
		} else {
			beta = math.Pow(1.0/(2*(1.0-u)), exp)
		}

		// Both terms scale the same value; copy it so rounding cannot drift.
		if parent1[i] == parent2[i] {
			child1[i], child2[i] = parent1[i], parent2[i]
			continue
		}
		child1[i] = 0.5 * ((1+beta)*parent1[i] + (1-beta)*parent2[i])
		child2[i] = 0.5 * ((1-beta)*parent1[i] + (1+beta)*parent2[i])
	}
	return child1, child2
}

// PolynomialMutation perturbs every variable of x by a polynomially
// distributed step scaled to its bounds range, then clips the result to
// [L, H]. One uniform draw is consumed per variable. x is left untouched.
func (n *NSGAII) PolynomialMutation(x []float64, bounds []framework.Bounds) ([]float64, error) {
	var allErrs field.ErrorList
	if len(bounds) != len(x) {
		allErrs = append(allErrs, field.Invalid(field.NewPath("bounds"), len(bounds), fmt.Sprintf("must have one entry per variable (%d)", len(x))))
	}
	allErrs = append(allErrs, framework.ValidateBounds(bounds, field.NewPath("bounds"))...)
	if err := framework.ValidationError(allErrs); err != nil {
		return nil, err
	}
	return n.polynomialMutation(x, bounds), nil
}

func (n *NSGAII) polynomialMutation(x []float64, bounds []framework.Bounds) []float64 {
	mutated := make([]float64, len(x))
	exp := 1.0 / (1 + n.MutationDistributionIndex)

	for i := range x {
		u := n.rng.Float64()
		var delta float64
		if u < 0.5 {
			delta = math.Pow(2*u, exp) - 1
		} else {
			delta = 1 - math.Pow(2*(1-u), exp)
		}

		b := bounds[i]
		mutated[i] = clip(x[i]+delta*(b.H-b.L), b)
	}
	return mutated
}

// ClipToBounds clips every row of population to bounds in place. Drivers
// call it on offspring before evaluation when the objectives are undefined
// outside the decision space.
func ClipToBounds(population *mat.Dense, bounds []framework.Bounds) error {
	_, numVars := population.Dims()
	var allErrs field.ErrorList
	if len(bounds) != numVars {
		allErrs = append(allErrs, field.Invalid(field.NewPath("bounds"), len(bounds), fmt.Sprintf("must have one entry per decision variable (%d)", numVars)))
	}
	allErrs = append(allErrs, framework.ValidateBounds(bounds, field.NewPath("bounds"))...)
	if err := framework.ValidationError(allErrs); err != nil {
		return err
	}

	population.Apply(func(_, j int, v float64) float64 {
		return clip(v, bounds[j])
	}, population)
	return nil
}

func clip(v float64, b framework.Bounds) float64 {
	return math.Max(b.L, math.Min(b.H, v))
}
