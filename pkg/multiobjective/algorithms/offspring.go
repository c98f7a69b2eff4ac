package algorithms

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
)

// GenerateOffspring builds a new N×D population from the current one.
//
// A mating pool of N indices is filled by independent binary tournaments and
// consecutive entries are paired. Each pair is recombined with SBX with
// probability SBXProbability (otherwise copied), then each child is
// independently mutated with probability MutationProbability. Only mutated
// children are clipped to bounds; an unmutated SBX child may lie outside them.
//
// N must be even. Random draws happen in a fixed order: the whole mating
// pool first, then per pair the crossover decision, the SBX draws and, for
// each child in turn, its mutation decision and mutation draws.
func (n *NSGAII) GenerateOffspring(objectives, population mat.Matrix, fronts *Fronts, distances []float64, bounds []framework.Bounds) (*mat.Dense, error) {
	if err := validateOffspringInput(objectives, population, fronts, distances, bounds); err != nil {
		return nil, err
	}
	size, numVars := population.Dims()

	pool := make([]int, size)
	for i := range pool {
		pool[i] = n.tournament(fronts, distances)
	}

	offspring := mat.NewDense(size, numVars, nil)
	crossed, mutated := 0, 0
	for i := 0; i < size; i += 2 {
		parent1 := mat.Row(nil, pool[i], population)
		parent2 := mat.Row(nil, pool[i+1], population)

		child1, child2 := parent1, parent2
		if n.rng.Float64() < n.SBXProbability {
			child1, child2 = n.sbx(parent1, parent2)
			crossed++
		}
		if n.rng.Float64() < n.MutationProbability {
			child1 = n.polynomialMutation(child1, bounds)
			mutated++
		}
		if n.rng.Float64() < n.MutationProbability {
			child2 = n.polynomialMutation(child2, bounds)
			mutated++
		}

		offspring.SetRow(i, child1)
		offspring.SetRow(i+1, child2)
	}

	n.logger.V(5).Info("Generated offspring", "size", size, "crossedPairs", crossed, "mutatedChildren", mutated)
	return offspring, nil
}

func validateOffspringInput(objectives, population mat.Matrix, fronts *Fronts, distances []float64, bounds []framework.Bounds) error {
	if err := validateRanking(fronts, distances); err != nil {
		return err
	}

	var allErrs field.ErrorList
	size, numVars := population.Dims()
	objRows, _ := objectives.Dims()
	if size != fronts.Size() {
		allErrs = append(allErrs, field.Invalid(field.NewPath("population"), size, fmt.Sprintf("must have one row per ranked individual (%d)", fronts.Size())))
	}
	if objRows != size {
		allErrs = append(allErrs, field.Invalid(field.NewPath("objectives"), objRows, fmt.Sprintf("must have one row per individual (%d)", size)))
	}
	if size%2 != 0 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("population"), size, "population size must be even to form mating pairs"))
	}
	if len(bounds) != numVars {
		allErrs = append(allErrs, field.Invalid(field.NewPath("bounds"), len(bounds), fmt.Sprintf("must have one entry per decision variable (%d)", numVars)))
	}
	allErrs = append(allErrs, framework.ValidateBounds(bounds, field.NewPath("bounds"))...)
	return framework.ValidationError(allErrs)
}
