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
	"k8s.io/klog/v2"
	"k8s.io/utils/ptr"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective/algorithms"
)

const (
	DefaultProblem        = "zdt1"
	DefaultNumVariables   = 30
	DefaultPopulationSize = 100
	DefaultGenerations    = 250
)

// SetDefaults_NSGAIIArgs fills every unset field of args.
func SetDefaults_NSGAIIArgs(args *NSGAIIArgs) {
	klog.V(5).InfoS("Setting defaults", "kind", KindNSGAIIArgs)

	if args.APIVersion == "" {
		args.APIVersion = GroupVersion
	}
	if args.Kind == "" {
		args.Kind = KindNSGAIIArgs
	}
	if args.Problem == "" {
		args.Problem = DefaultProblem
	}
	if args.NumVariables == 0 {
		args.NumVariables = DefaultNumVariables
	}
	if args.PopulationSize == 0 {
		args.PopulationSize = DefaultPopulationSize
	}
	if args.Generations == nil {
		args.Generations = ptr.To(DefaultGenerations)
	}
	if args.SBXProbability == nil {
		args.SBXProbability = ptr.To(algorithms.DefaultSBXProbability)
	}
	if args.MutationProbability == nil {
		args.MutationProbability = ptr.To(algorithms.DefaultMutationProbability)
	}
	if args.SBXDistributionIndex == nil {
		args.SBXDistributionIndex = ptr.To(algorithms.DefaultSBXDistributionIndex)
	}
	if args.MutationDistributionIndex == nil {
		args.MutationDistributionIndex = ptr.To(algorithms.DefaultMutationDistributionIndex)
	}
}

// AlgorithmConfig converts defaulted args into the operator configuration.
func (args *NSGAIIArgs) AlgorithmConfig() algorithms.Config {
	return algorithms.Config{
		SBXProbability:            ptr.Deref(args.SBXProbability, algorithms.DefaultSBXProbability),
		MutationProbability:       ptr.Deref(args.MutationProbability, algorithms.DefaultMutationProbability),
		SBXDistributionIndex:      ptr.Deref(args.SBXDistributionIndex, algorithms.DefaultSBXDistributionIndex),
		MutationDistributionIndex: ptr.Deref(args.MutationDistributionIndex, algorithms.DefaultMutationDistributionIndex),
	}
}
