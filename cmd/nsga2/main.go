package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
	"sigs.k8s.io/yaml"

	"github.com/mihai-snyk/nsga2/apis/config/v1alpha1"
	"github.com/mihai-snyk/nsga2/pkg/multiobjective/algorithms"
	"github.com/mihai-snyk/nsga2/pkg/multiobjective/benchmarks"
)

type options struct {
	configFile string

	problem        string
	numVariables   int
	populationSize int
	generations    int
	seed           uint64
	sbxProb        float64
	mutationProb   float64
	elitist        bool
}

func (o *options) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.configFile, "config", "", "Path to an NSGAIIArgs YAML file")
	fs.StringVar(&o.problem, "problem", v1alpha1.DefaultProblem, fmt.Sprintf("Benchmark problem, one of %v", benchmarks.Names()))
	fs.IntVar(&o.numVariables, "variables", v1alpha1.DefaultNumVariables, "Number of decision variables for scalable problems")
	fs.IntVar(&o.populationSize, "pop-size", v1alpha1.DefaultPopulationSize, "Population size (must be even)")
	fs.IntVar(&o.generations, "generations", v1alpha1.DefaultGenerations, "Number of generations")
	fs.Uint64Var(&o.seed, "seed", 0, "Random seed")
	fs.Float64Var(&o.sbxProb, "sbx-prob", algorithms.DefaultSBXProbability, "Probability of applying SBX to a mating pair")
	fs.Float64Var(&o.mutationProb, "mutation-prob", algorithms.DefaultMutationProbability, "Per-child probability of polynomial mutation")
	fs.BoolVar(&o.elitist, "elitist", false, "Select survivors from parents and offspring instead of replacing the population")
}

// loadArgs reads the config file (if any) and lets explicitly set flags
// override it.
func (o *options) loadArgs(fs *pflag.FlagSet) (*v1alpha1.NSGAIIArgs, error) {
	var data []byte
	if o.configFile != "" {
		var err error
		if data, err = os.ReadFile(o.configFile); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	args, err := v1alpha1.Load(data)
	if err != nil {
		return nil, err
	}

	if fs.Changed("problem") {
		args.Problem = o.problem
	}
	if fs.Changed("variables") {
		args.NumVariables = o.numVariables
	}
	if fs.Changed("pop-size") {
		args.PopulationSize = o.populationSize
	}
	if fs.Changed("generations") {
		args.Generations = &o.generations
	}
	if fs.Changed("seed") {
		args.Seed = o.seed
	}
	if fs.Changed("sbx-prob") {
		args.SBXProbability = &o.sbxProb
	}
	if fs.Changed("mutation-prob") {
		args.MutationProbability = &o.mutationProb
	}
	if fs.Changed("elitist") {
		args.Elitist = o.elitist
	}
	return args, v1alpha1.ValidateNSGAIIArgs(args)
}

func run(argv []string, out io.Writer) error {
	fs := pflag.NewFlagSet("nsga2", pflag.ContinueOnError)
	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	fs.AddGoFlagSet(klogFlags)

	o := &options{}
	o.addFlags(fs)
	if err := fs.Parse(argv); err != nil {
		return err
	}

	args, err := o.loadArgs(fs)
	if err != nil {
		return err
	}

	report, err := runDriver(args)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	_, err = out.Write(data)
	return err
}

func main() {
	defer klog.Flush()
	if err := run(os.Args[1:], os.Stdout); err != nil {
		klog.ErrorS(err, "NSGA-II run failed")
		klog.Flush()
		os.Exit(1)
	}
}
