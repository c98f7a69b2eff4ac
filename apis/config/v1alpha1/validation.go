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
	"fmt"

	"k8s.io/apimachinery/pkg/util/validation/field"
	"sigs.k8s.io/yaml"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
)

// ValidateNSGAIIArgs validates defaulted NSGAIIArgs
func ValidateNSGAIIArgs(args *NSGAIIArgs) error {
	var allErrs field.ErrorList

	if args.APIVersion != GroupVersion {
		allErrs = append(allErrs, field.NotSupported(field.NewPath("apiVersion"), args.APIVersion, []string{GroupVersion}))
	}
	if args.Kind != KindNSGAIIArgs {
		allErrs = append(allErrs, field.NotSupported(field.NewPath("kind"), args.Kind, []string{KindNSGAIIArgs}))
	}
	if args.NumVariables < 1 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("numVariables"), args.NumVariables, "must be positive"))
	}
	if args.PopulationSize < 2 || args.PopulationSize%2 != 0 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("populationSize"), args.PopulationSize, "must be an even number of at least 2"))
	}
	if args.Generations != nil && *args.Generations < 0 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("generations"), *args.Generations, "must be non-negative"))
	}
	allErrs = append(allErrs, validateProbability(field.NewPath("sbxProbability"), args.SBXProbability)...)
	allErrs = append(allErrs, validateProbability(field.NewPath("mutationProbability"), args.MutationProbability)...)
	allErrs = append(allErrs, validateDistributionIndex(field.NewPath("sbxDistributionIndex"), args.SBXDistributionIndex)...)
	allErrs = append(allErrs, validateDistributionIndex(field.NewPath("mutationDistributionIndex"), args.MutationDistributionIndex)...)

	return framework.ValidationError(allErrs)
}

func validateProbability(fldPath *field.Path, p *float64) field.ErrorList {
	if p == nil || (*p >= 0 && *p <= 1) {
		return nil
	}
	return field.ErrorList{field.Invalid(fldPath, *p, "must be between 0 and 1")}
}

func validateDistributionIndex(fldPath *field.Path, eta *float64) field.ErrorList {
	if eta == nil || *eta >= 0 {
		return nil
	}
	return field.ErrorList{field.Invalid(fldPath, *eta, "must be non-negative")}
}

// Load decodes a YAML (or JSON) NSGAIIArgs document, applies defaults and
// validates the result. Unknown fields are rejected.
func Load(data []byte) (*NSGAIIArgs, error) {
	args := &NSGAIIArgs{}
	if err := yaml.UnmarshalStrict(data, args); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", KindNSGAIIArgs, err)
	}
	SetDefaults_NSGAIIArgs(args)
	if err := ValidateNSGAIIArgs(args); err != nil {
		return nil, err
	}
	return args, nil
}
