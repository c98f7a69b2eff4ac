package benchmarks

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
)

var registry = map[string]func(numVars int) framework.Problem{
	"zdt1": func(numVars int) framework.Problem { return NewZDT1(numVars) },
	"zdt2": func(numVars int) framework.Problem { return NewZDT2(numVars) },
	"sch":  func(int) framework.Problem { return NewSchaffer(10) },
}

// Names lists the problems known to Lookup.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named benchmark problem (case-insensitive). numVars is
// ignored by fixed-size problems.
func Lookup(name string, numVars int) (framework.Problem, error) {
	newProblem, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown problem %q, want one of %v", name, Names())
	}
	return newProblem(numVars), nil
}

// IGD computes the Inverted Generational Distance: the mean Euclidean
// distance from every point of the true front to its nearest obtained point.
// Lower is better; it returns +Inf when nothing was obtained.
func IGD(obtained, trueFront []framework.ObjectiveSpacePoint) float64 {
	if len(obtained) == 0 || len(trueFront) == 0 {
		return math.Inf(1)
	}
	igd := 0.0
	for _, truePoint := range trueFront {
		minDist := math.Inf(1)
		for _, obtPoint := range obtained {
			minDist = math.Min(minDist, floats.Distance(truePoint, obtPoint, 2))
		}
		igd += minDist
	}
	return igd / float64(len(trueFront))
}
