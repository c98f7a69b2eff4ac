package algorithms_test

import (
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective/algorithms"
	"github.com/mihai-snyk/nsga2/pkg/multiobjective/benchmarks"
	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
)

// evolve composes the building blocks into a simple generational loop. With
// elitist set, parents and offspring compete for survival; otherwise the
// offspring replace the parents wholesale.
func evolve(t *testing.T, nsga *algorithms.NSGAII, problem framework.Problem, popSize, generations int, elitist bool) (*mat.Dense, *mat.Dense) {
	t.Helper()
	bounds := problem.Bounds()
	funcs := problem.ObjectiveFuncs()

	population, err := nsga.CreatePopulation(popSize, bounds)
	require.NoError(t, err)
	objectives, err := algorithms.Evaluate(population, funcs)
	require.NoError(t, err)

	for gen := 0; gen < generations; gen++ {
		fronts, err := algorithms.NonDominatedSort(objectives)
		require.NoError(t, err)
		distances, err := algorithms.CrowdingDistanceByFront(objectives, fronts)
		require.NoError(t, err)

		offspring, err := nsga.GenerateOffspring(objectives, population, fronts, distances, bounds)
		require.NoError(t, err)
		require.NoError(t, algorithms.ClipToBounds(offspring, bounds))
		offspringObjectives, err := algorithms.Evaluate(offspring, funcs)
		require.NoError(t, err)

		if !elitist {
			population, objectives = offspring, offspringObjectives
			continue
		}

		combined := mat.NewDense(2*popSize, len(bounds), nil)
		combined.Stack(population, offspring)
		combinedObjectives := mat.NewDense(2*popSize, len(funcs), nil)
		combinedObjectives.Stack(objectives, offspringObjectives)

		var survivors []int
		population, survivors, err = algorithms.SelectSurvivors(combinedObjectives, combined, popSize)
		require.NoError(t, err)
		objectives = mat.NewDense(popSize, len(funcs), nil)
		for i, idx := range survivors {
			objectives.SetRow(i, combinedObjectives.RawRowView(idx))
		}
	}
	return population, objectives
}

func firstFront(t *testing.T, objectives *mat.Dense) []framework.ObjectiveSpacePoint {
	t.Helper()
	fronts, err := algorithms.NonDominatedSort(objectives)
	require.NoError(t, err)
	require.NotZero(t, fronts.Len(), "no fronts found in final population")

	var results []framework.ObjectiveSpacePoint
	for _, idx := range fronts.Front(1) {
		results = append(results, mat.Row(nil, idx, objectives))
	}
	return results
}

// Test problem: ZDT1 benchmark function
func TestNSGAIIWithZDT1(t *testing.T) {
	zdt1 := benchmarks.NewZDT1(10)
	nsga := algorithms.NewSeeded(algorithms.DefaultConfig(), 1).WithLogger(testr.New(t))

	population, objectives := evolve(t, nsga, zdt1, 100, 60, true)

	rows, cols := population.Dims()
	assert.Equal(t, 100, rows)
	assert.Equal(t, 10, cols)

	results := firstFront(t, objectives)
	// Check if first front is non-dominated
	for i := range results {
		for j := range results {
			if i != j && framework.Dominates(results[i], results[j]) {
				t.Error("First front contains dominated solutions")
			}
		}
	}
	t.Logf("ZDT1: %d solutions in first front, IGD = %.4f", len(results), benchmarks.IGD(results, zdt1.TrueParetoFront(200)))
}

func TestNSGAIIWithSchafferConverges(t *testing.T) {
	sch := benchmarks.NewSchaffer(10)
	nsga := algorithms.NewSeeded(algorithms.DefaultConfig(), 7)

	_, objectives := evolve(t, nsga, sch, 40, 80, true)

	results := firstFront(t, objectives)
	igd := benchmarks.IGD(results, sch.TrueParetoFront(100))
	t.Logf("SCH: %d solutions in first front, IGD = %.4f", len(results), igd)
	assert.Less(t, igd, 0.5)
}

func TestNSGAIIGenerationalReplacement(t *testing.T) {
	sch := benchmarks.NewSchaffer(10)
	nsga := algorithms.NewSeeded(algorithms.DefaultConfig(), 99)

	population, _ := evolve(t, nsga, sch, 20, 10, false)
	rows, cols := population.Dims()
	assert.Equal(t, 20, rows)
	assert.Equal(t, 1, cols)
}

func TestNSGAIIRunsAreReproducible(t *testing.T) {
	zdt2 := benchmarks.NewZDT2(4)
	run := func() *mat.Dense {
		population, _ := evolve(t, algorithms.NewSeeded(algorithms.DefaultConfig(), 555), zdt2, 24, 5, true)
		return population
	}
	assert.True(t, mat.Equal(run(), run()))
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, algorithms.DefaultConfig().Validate())

	cfg := algorithms.DefaultConfig()
	cfg.SBXProbability = 1.5
	cfg.MutationDistributionIndex = -1
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, framework.ErrInvalidInput)
	assert.Contains(t, err.Error(), "config.sbxProbability")
	assert.Contains(t, err.Error(), "config.mutationDistributionIndex")
}
