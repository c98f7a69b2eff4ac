/*
Copyright 2024 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

const (
	// GroupVersion is the apiVersion expected in configuration files.
	GroupVersion = "nsga2.config/v1alpha1"

	// KindNSGAIIArgs is the kind of NSGAIIArgs documents.
	KindNSGAIIArgs = "NSGAIIArgs"

	// KindParetoFrontReport is the kind of ParetoFrontReport documents.
	KindParetoFrontReport = "ParetoFrontReport"
)

// NSGAIIArgs configures a run of the example NSGA-II driver.
type NSGAIIArgs struct {
	metav1.TypeMeta `json:",inline"`

	// Problem is the name of the benchmark problem to optimize (e.g. zdt1, zdt2, sch)
	Problem string `json:"problem,omitempty"`

	// NumVariables is the number of decision variables for scalable problems
	NumVariables int `json:"numVariables,omitempty"`

	// PopulationSize is the number of individuals per generation, must be even
	PopulationSize int `json:"populationSize,omitempty"`

	// Generations is the number of generations to evolve
	Generations *int `json:"generations,omitempty"`

	// Seed seeds the random stream shared by every stochastic operator
	Seed uint64 `json:"seed,omitempty"`

	// SBXProbability is the probability of recombining a mating pair
	SBXProbability *float64 `json:"sbxProbability,omitempty"`

	// MutationProbability is the per-child probability of polynomial mutation
	MutationProbability *float64 `json:"mutationProbability,omitempty"`

	// SBXDistributionIndex is the SBX distribution index (eta_c)
	SBXDistributionIndex *float64 `json:"sbxDistributionIndex,omitempty"`

	// MutationDistributionIndex is the polynomial mutation distribution index (eta_m)
	MutationDistributionIndex *float64 `json:"mutationDistributionIndex,omitempty"`

	// Elitist makes parents and offspring compete for survival instead of
	// replacing the population with the offspring every generation
	Elitist bool `json:"elitist,omitempty"`
}

// ParetoFrontReport is the outcome of a driver run.
type ParetoFrontReport struct {
	metav1.TypeMeta `json:",inline"`

	// Problem is the optimized benchmark problem
	Problem string `json:"problem"`

	// Generations is the number of generations that were evolved
	Generations int `json:"generations"`

	// Evaluations is the number of objective evaluations performed
	Evaluations int `json:"evaluations"`

	// IGD is the inverted generational distance to the true front, when known
	IGD *float64 `json:"igd,omitempty"`

	// Solutions contains the non-dominated solutions of the final population
	Solutions []Solution `json:"solutions"`
}

// Solution represents a single non-dominated solution
type Solution struct {
	// Rank is the solution rank in Pareto front (1 = best)
	Rank int `json:"rank"`

	// CrowdingDistance is the density estimate within its front, omitted when infinite
	CrowdingDistance *float64 `json:"crowdingDistance,omitempty"`

	// Variables contains the decision variables
	Variables []float64 `json:"variables"`

	// Objectives contains the objective values
	Objectives []float64 `json:"objectives"`
}
