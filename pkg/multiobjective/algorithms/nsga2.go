package algorithms

import (
	"github.com/go-logr/logr"
	"golang.org/x/exp/rand"
	"k8s.io/apimachinery/pkg/util/validation/field"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
)

const (
	Name = "NSGA-II"

	DefaultSBXProbability            = 0.9
	DefaultMutationProbability       = 0.05
	DefaultSBXDistributionIndex      = 20.0
	DefaultMutationDistributionIndex = 5.0
)

// Config holds the variation parameters of NSGA-II.
type Config struct {
	// SBXProbability is the chance that a mating pair is recombined with SBX
	// instead of being copied through.
	SBXProbability float64
	// MutationProbability is the chance, per child, of applying polynomial mutation.
	MutationProbability float64
	// SBXDistributionIndex (eta_c) controls how close SBX children stay to their parents.
	SBXDistributionIndex float64
	// MutationDistributionIndex (eta_m) controls the spread of mutation perturbations.
	MutationDistributionIndex float64
}

// DefaultConfig returns the parameters used when nothing else is configured.
func DefaultConfig() Config {
	return Config{
		SBXProbability:            DefaultSBXProbability,
		MutationProbability:       DefaultMutationProbability,
		SBXDistributionIndex:      DefaultSBXDistributionIndex,
		MutationDistributionIndex: DefaultMutationDistributionIndex,
	}
}

// Validate checks that probabilities are in [0, 1] and distribution indexes
// are non-negative.
func (c Config) Validate() error {
	var allErrs field.ErrorList
	root := field.NewPath("config")
	if c.SBXProbability < 0 || c.SBXProbability > 1 {
		allErrs = append(allErrs, field.Invalid(root.Child("sbxProbability"), c.SBXProbability, "must be between 0 and 1"))
	}
	if c.MutationProbability < 0 || c.MutationProbability > 1 {
		allErrs = append(allErrs, field.Invalid(root.Child("mutationProbability"), c.MutationProbability, "must be between 0 and 1"))
	}
	if c.SBXDistributionIndex < 0 {
		allErrs = append(allErrs, field.Invalid(root.Child("sbxDistributionIndex"), c.SBXDistributionIndex, "must be non-negative"))
	}
	if c.MutationDistributionIndex < 0 {
		allErrs = append(allErrs, field.Invalid(root.Child("mutationDistributionIndex"), c.MutationDistributionIndex, "must be non-negative"))
	}
	return framework.ValidationError(allErrs)
}

// NSGAII owns the random stream consumed by every stochastic building block
// (population init, tournament selection, crossover and mutation). Two
// instances built from equally seeded generators produce identical results
// when called in the same order.
//
// NSGAII is not safe for concurrent use.
type NSGAII struct {
	Config

	rng    *rand.Rand
	logger logr.Logger
}

// NewNSGAII creates a new instance of NSGA-II drawing from rng.
func NewNSGAII(config Config, rng *rand.Rand) *NSGAII {
	return &NSGAII{
		Config: config,
		rng:    rng,
		logger: klog.Background().WithValues("algorithm", Name),
	}
}

// NewSeeded is a shorthand for NewNSGAII with a freshly seeded generator.
func NewSeeded(config Config, seed uint64) *NSGAII {
	return NewNSGAII(config, rand.New(rand.NewSource(seed)))
}

// WithLogger replaces the logger used for debug output.
func (n *NSGAII) WithLogger(logger logr.Logger) *NSGAII {
	n.logger = logger
	return n
}
