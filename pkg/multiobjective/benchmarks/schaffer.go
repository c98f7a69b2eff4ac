package benchmarks

import (
	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
)

// Schaffer is Schaffer's function N. 1, a single variable problem with
// f1 = x² and f2 = (x-2)². Its Pareto set is x in [0, 2].
type Schaffer struct {
	bound float64
}

// NewSchaffer searches x in [-bound, bound]. Schaffer used a bound of 10.
func NewSchaffer(bound float64) *Schaffer {
	return &Schaffer{bound: bound}
}

func (p *Schaffer) Name() string {
	return "SCH"
}

func (p *Schaffer) NumVariables() int {
	return 1
}

func (p *Schaffer) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{
		framework.PerIndividual(func(x []float64) float64 { return x[0] * x[0] }),
		framework.PerIndividual(func(x []float64) float64 { return (x[0] - 2) * (x[0] - 2) }),
	}
}

func (p *Schaffer) Bounds() []framework.Bounds {
	return framework.UniformBounds(1, -p.bound, p.bound)
}

func (p *Schaffer) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	front := sampleFront(numPoints, func(float64) float64 { return 0 })
	for _, point := range front {
		x := 2 * point[0]
		point[0], point[1] = x*x, (x-2)*(x-2)
	}
	return front
}
