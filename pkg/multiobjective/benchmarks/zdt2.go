package benchmarks

import (
	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
)

// ZDT2 has a non-convex Pareto front
type ZDT2 struct {
	numVars int
}

func NewZDT2(numVars int) *ZDT2 {
	return &ZDT2{numVars: numVars}
}

func (p *ZDT2) Name() string {
	return "ZDT2"
}

func (p *ZDT2) NumVariables() int {
	return p.numVars
}

func (p *ZDT2) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{
		framework.PerIndividual(f1),
		framework.PerIndividual(p.f2),
	}
}

func (p *ZDT2) f2(x []float64) float64 {
	g := zdtG(x)
	r := x[0] / g
	// Note: ZDT2 uses (1 - (x1/g)^2) instead of sqrt
	return g * (1.0 - r*r)
}

func (p *ZDT2) Bounds() []framework.Bounds {
	return framework.UniformBounds(p.numVars, 0, 1)
}

func (p *ZDT2) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	return sampleFront(numPoints, func(x float64) float64 {
		return 1.0 - x*x
	})
}
