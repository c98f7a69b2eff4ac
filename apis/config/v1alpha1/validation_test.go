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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective/algorithms"
	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
)

func TestLoadDefaults(t *testing.T) {
	args, err := Load([]byte(`
apiVersion: nsga2.config/v1alpha1
kind: NSGAIIArgs
problem: sch
seed: 42
`))
	require.NoError(t, err)

	assert.Equal(t, "sch", args.Problem)
	assert.Equal(t, uint64(42), args.Seed)
	assert.Equal(t, DefaultPopulationSize, args.PopulationSize)
	assert.Equal(t, DefaultGenerations, *args.Generations)
	if diff := cmp.Diff(algorithms.DefaultConfig(), args.AlgorithmConfig()); diff != "" {
		t.Errorf("AlgorithmConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadKeepsExplicitZeroes(t *testing.T) {
	args, err := Load([]byte(`
problem: zdt2
generations: 0
sbxProbability: 0
mutationProbability: 1
`))
	require.NoError(t, err)

	assert.Equal(t, GroupVersion, args.APIVersion)
	assert.Equal(t, KindNSGAIIArgs, args.Kind)
	assert.Equal(t, 0, *args.Generations)
	assert.Equal(t, 0.0, args.AlgorithmConfig().SBXProbability)
	assert.Equal(t, 1.0, args.AlgorithmConfig().MutationProbability)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load([]byte("populationSise: 10\n"))
	assert.Error(t, err)
}

func TestValidateNSGAIIArgs(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*NSGAIIArgs)
		wantField string
	}{
		{name: "odd population", mutate: func(a *NSGAIIArgs) { a.PopulationSize = 11 }, wantField: "populationSize"},
		{name: "tiny population", mutate: func(a *NSGAIIArgs) { a.PopulationSize = -2 }, wantField: "populationSize"},
		{name: "negative generations", mutate: func(a *NSGAIIArgs) { a.Generations = ptr.To(-1) }, wantField: "generations"},
		{name: "sbx probability", mutate: func(a *NSGAIIArgs) { a.SBXProbability = ptr.To(1.2) }, wantField: "sbxProbability"},
		{name: "mutation probability", mutate: func(a *NSGAIIArgs) { a.MutationProbability = ptr.To(-0.1) }, wantField: "mutationProbability"},
		{name: "sbx eta", mutate: func(a *NSGAIIArgs) { a.SBXDistributionIndex = ptr.To(-3.0) }, wantField: "sbxDistributionIndex"},
		{name: "mutation eta", mutate: func(a *NSGAIIArgs) { a.MutationDistributionIndex = ptr.To(-3.0) }, wantField: "mutationDistributionIndex"},
		{name: "variables", mutate: func(a *NSGAIIArgs) { a.NumVariables = -1 }, wantField: "numVariables"},
		{name: "kind", mutate: func(a *NSGAIIArgs) { a.Kind = "Other" }, wantField: "kind"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := &NSGAIIArgs{}
			SetDefaults_NSGAIIArgs(args)
			require.NoError(t, ValidateNSGAIIArgs(args))

			tt.mutate(args)
			err := ValidateNSGAIIArgs(args)
			require.Error(t, err)
			assert.ErrorIs(t, err, framework.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}
