package framework

import (
	"gonum.org/v1/gonum/mat"
)

// Bounds holds the inclusive lower (L) and upper (H) limit of a single
// decision variable.
type Bounds struct {
	L float64
	H float64
}

// UniformBounds returns numVars copies of the same [l, h] bounds.
func UniformBounds(numVars int, l, h float64) []Bounds {
	b := make([]Bounds, numVars)
	for i := range b {
		b[i] = Bounds{L: l, H: h}
	}
	return b
}

// ObjectiveFunc maps an N×D decision matrix to a column vector of length N,
// one objective value per individual. All objectives are minimized.
type ObjectiveFunc func(population mat.Matrix) mat.Vector

// PerIndividual adapts a function over a single decision vector into an
// ObjectiveFunc that is applied row by row.
func PerIndividual(f func(x []float64) float64) ObjectiveFunc {
	return func(population mat.Matrix) mat.Vector {
		rows, cols := population.Dims()
		if rows == 0 {
			return &mat.VecDense{}
		}
		out := mat.NewVecDense(rows, nil)
		x := make([]float64, cols)
		for i := 0; i < rows; i++ {
			mat.Row(x, i, population)
			out.SetVec(i, f(x))
		}
		return out
	}
}

// ObjectiveSpacePoint represents an N-dimensional point in the objective space.
// As an example, for a problem with 2 objective functions f1 and f2, a point
// in the objective space could be [f1(x'), f2(x')], for the input of x'.
type ObjectiveSpacePoint []float64

// Problem describes the contract a specific multi-objective problem needs to implement.
type Problem interface {
	Name() string

	NumVariables() int
	Bounds() []Bounds
	ObjectiveFuncs() []ObjectiveFunc

	// TrueParetoFront is optional due to the difficulty of finding the true front
	// in some types of problems. When there isn't a way to find the true front,
	// just return nil.
	TrueParetoFront(int) []ObjectiveSpacePoint
}
