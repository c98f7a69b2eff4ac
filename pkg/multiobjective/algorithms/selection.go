package algorithms

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
)

// TournamentSelect runs a binary tournament: two distinct individuals are
// drawn uniformly from the whole population and the one with the lower front
// rank wins. Within the same front the larger crowding distance wins; on a
// complete tie the first drawn individual is returned.
func (n *NSGAII) TournamentSelect(fronts *Fronts, distances []float64) (int, error) {
	if err := validateRanking(fronts, distances); err != nil {
		return 0, err
	}
	return n.tournament(fronts, distances), nil
}

// TournamentSelectObjectives is TournamentSelect returning the winner's
// objective vector instead of its index.
func (n *NSGAII) TournamentSelectObjectives(objectives mat.Matrix, fronts *Fronts, distances []float64) ([]float64, error) {
	if err := validateRanking(fronts, distances); err != nil {
		return nil, err
	}
	if r, _ := objectives.Dims(); r != fronts.Size() {
		return nil, framework.ValidationError(field.ErrorList{
			field.Invalid(field.NewPath("objectives"), r, fmt.Sprintf("must have %d rows", fronts.Size())),
		})
	}
	winner := n.tournament(fronts, distances)
	return mat.Row(nil, winner, objectives), nil
}

func (n *NSGAII) tournament(fronts *Fronts, distances []float64) int {
	size := fronts.Size()
	a := n.rng.Intn(size)
	b := n.rng.Intn(size - 1)
	if b >= a {
		b++
	}
	if better(b, a, fronts, distances) {
		return b
	}
	return a
}

// better reports whether individual i is preferred over j by
// (rank ascending, crowding distance descending).
func better(i, j int, fronts *Fronts, distances []float64) bool {
	ri, rj := fronts.Rank(i), fronts.Rank(j)
	if ri != rj {
		return ri < rj
	}
	return distances[i] > distances[j]
}

func validateRanking(fronts *Fronts, distances []float64) error {
	var allErrs field.ErrorList
	if fronts == nil {
		allErrs = append(allErrs, field.Required(field.NewPath("fronts"), ""))
		return framework.ValidationError(allErrs)
	}
	if fronts.Size() < 2 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("fronts"), fronts.Size(), "a tournament needs at least 2 individuals"))
	}
	if len(distances) != fronts.Size() {
		allErrs = append(allErrs, field.Invalid(field.NewPath("distances"), len(distances), fmt.Sprintf("must have one entry per individual (%d)", fronts.Size())))
	}
	return framework.ValidationError(allErrs)
}
