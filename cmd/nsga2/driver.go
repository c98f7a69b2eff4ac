package main

import (
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"k8s.io/klog/v2"
	"k8s.io/utils/ptr"

	"github.com/mihai-snyk/nsga2/apis/config/v1alpha1"
	"github.com/mihai-snyk/nsga2/pkg/multiobjective/algorithms"
	"github.com/mihai-snyk/nsga2/pkg/multiobjective/benchmarks"
	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
)

// runDriver evolves the configured benchmark problem for a fixed number of
// generations and reports the final non-dominated front.
func runDriver(args *v1alpha1.NSGAIIArgs) (*v1alpha1.ParetoFrontReport, error) {
	problem, err := benchmarks.Lookup(args.Problem, args.NumVariables)
	if err != nil {
		return nil, err
	}
	config := args.AlgorithmConfig()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	logger := klog.Background().WithValues("problem", problem.Name())
	nsga := algorithms.NewSeeded(config, args.Seed).WithLogger(logger)
	bounds := problem.Bounds()
	funcs := problem.ObjectiveFuncs()
	generations := ptr.Deref(args.Generations, v1alpha1.DefaultGenerations)

	logger.Info("Starting evolution",
		"populationSize", args.PopulationSize,
		"variables", len(bounds),
		"generations", generations,
		"sbxProbability", config.SBXProbability,
		"mutationProbability", config.MutationProbability,
		"elitist", args.Elitist,
		"seed", args.Seed,
	)
	start := time.Now()

	population, err := nsga.CreatePopulation(args.PopulationSize, bounds)
	if err != nil {
		return nil, err
	}
	objectives, err := algorithms.Evaluate(population, funcs)
	if err != nil {
		return nil, err
	}
	evaluations := args.PopulationSize

	for gen := 0; gen < generations; gen++ {
		fronts, err := algorithms.NonDominatedSort(objectives)
		if err != nil {
			return nil, err
		}
		distances, err := algorithms.CrowdingDistanceByFront(objectives, fronts)
		if err != nil {
			return nil, err
		}

		offspring, err := nsga.GenerateOffspring(objectives, population, fronts, distances, bounds)
		if err != nil {
			return nil, err
		}
		// Benchmark objectives are undefined outside the decision space.
		if err := algorithms.ClipToBounds(offspring, bounds); err != nil {
			return nil, err
		}
		offspringObjectives, err := algorithms.Evaluate(offspring, funcs)
		if err != nil {
			return nil, err
		}
		evaluations += args.PopulationSize

		if args.Elitist {
			population, objectives, err = survive(population, objectives, offspring, offspringObjectives)
			if err != nil {
				return nil, err
			}
		} else {
			population, objectives = offspring, offspringObjectives
		}

		if gen%10 == 0 {
			logger.V(2).Info("Generation complete", "generation", gen+1, "fronts", fronts.Len(), "firstFront", len(fronts.Front(1)))
		}
	}

	report, err := buildReport(problem, population, objectives)
	if err != nil {
		return nil, err
	}
	report.Generations = generations
	report.Evaluations = evaluations

	keysAndValues := []interface{}{
		"elapsed", time.Since(start),
		"evaluations", humanize.Comma(int64(evaluations)),
		"paretoSize", len(report.Solutions),
	}
	if report.IGD != nil {
		keysAndValues = append(keysAndValues, "igd", fmt.Sprintf("%.4f", *report.IGD))
	}
	logger.Info("Evolution complete", keysAndValues...)
	return report, nil
}

// survive keeps the best half of parents plus offspring.
func survive(population, objectives, offspring, offspringObjectives *mat.Dense) (*mat.Dense, *mat.Dense, error) {
	size, numVars := population.Dims()
	_, numObjs := objectives.Dims()

	combined := mat.NewDense(2*size, numVars, nil)
	combined.Stack(population, offspring)
	combinedObjectives := mat.NewDense(2*size, numObjs, nil)
	combinedObjectives.Stack(objectives, offspringObjectives)

	survivors, selected, err := algorithms.SelectSurvivors(combinedObjectives, combined, size)
	if err != nil {
		return nil, nil, err
	}
	survivorObjectives := mat.NewDense(size, numObjs, nil)
	for i, idx := range selected {
		survivorObjectives.SetRow(i, combinedObjectives.RawRowView(idx))
	}
	return survivors, survivorObjectives, nil
}

func buildReport(problem framework.Problem, population, objectives *mat.Dense) (*v1alpha1.ParetoFrontReport, error) {
	fronts, err := algorithms.NonDominatedSort(objectives)
	if err != nil {
		return nil, err
	}
	distances, err := algorithms.CrowdingDistanceByFront(objectives, fronts)
	if err != nil {
		return nil, err
	}

	report := &v1alpha1.ParetoFrontReport{
		Problem: problem.Name(),
	}
	report.APIVersion = v1alpha1.GroupVersion
	report.Kind = v1alpha1.KindParetoFrontReport

	front := fronts.Front(1)
	points := make([]framework.ObjectiveSpacePoint, 0, len(front))
	for _, idx := range front {
		sol := v1alpha1.Solution{
			Rank:       fronts.Rank(idx),
			Variables:  mat.Row(nil, idx, population),
			Objectives: mat.Row(nil, idx, objectives),
		}
		if d := distances[idx]; !math.IsInf(d, 1) {
			sol.CrowdingDistance = ptr.To(d)
		}
		report.Solutions = append(report.Solutions, sol)
		points = append(points, sol.Objectives)
	}

	_, numObjs := objectives.Dims()
	means := make([]float64, numObjs)
	for j := range means {
		column := make([]float64, len(points))
		for i, p := range points {
			column[i] = p[j]
		}
		means[j] = stat.Mean(column, nil)
	}
	klog.V(2).InfoS("First front summary", "problem", problem.Name(), "size", len(points), "meanObjectives", means)

	if trueFront := problem.TrueParetoFront(500); trueFront != nil {
		report.IGD = ptr.To(benchmarks.IGD(points, trueFront))
	}
	return report, nil
}
