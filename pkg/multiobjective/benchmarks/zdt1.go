package benchmarks

import (
	"math"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
)

// ZDT1 is a benchmark function used to test the correctness
// of multi-objective algorithms. For more details, check the article below:
// https://datacrayon.com/practical-evolutionary-algorithms/synthetic-objective-functions-and-zdt1/
type ZDT1 struct {
	numVars int
}

func NewZDT1(numVars int) *ZDT1 {
	return &ZDT1{
		numVars,
	}
}

func (p *ZDT1) Name() string {
	return "ZDT1"
}

func (p *ZDT1) NumVariables() int {
	return p.numVars
}

func (p *ZDT1) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{
		framework.PerIndividual(f1),
		framework.PerIndividual(p.f2),
	}
}

// f2 is the second ZDT1 benchmark objective
func (p *ZDT1) f2(x []float64) float64 {
	g := zdtG(x)
	return g * (1.0 - math.Sqrt(x[0]/g))
}

func (p *ZDT1) Bounds() []framework.Bounds {
	return framework.UniformBounds(p.numVars, 0, 1)
}

// TrueParetoFront generates numPoints points on the true Pareto front for ZDT1
func (p *ZDT1) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	return sampleFront(numPoints, func(x float64) float64 {
		return 1.0 - math.Sqrt(x)
	})
}

// f1 is the first objective shared by the ZDT family.
func f1(x []float64) float64 {
	return x[0]
}

func zdtG(x []float64) float64 {
	g := 1.0
	if len(x) < 2 {
		return g
	}
	for i := 1; i < len(x); i++ {
		g += 9.0 * x[i] / float64(len(x)-1)
	}
	return g
}

// sampleFront samples numPoints points (x, f(x)) for x evenly spaced in [0, 1].
func sampleFront(numPoints int, f func(float64) float64) []framework.ObjectiveSpacePoint {
	if numPoints < 2 {
		numPoints = 2
	}
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := 0; i < numPoints; i++ {
		x := float64(i) / float64(numPoints-1)
		points[i] = framework.ObjectiveSpacePoint{
			x, f(x),
		}
	}
	return points
}
