package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"nickandperla.net/sortbench"
)

type options struct {
	configPath string
	format     string
	algorithms []string
	compare    string
	profile    string
	profileDir string
	min        int
	max        int
	seed       int64
	verify     bool
	gc         bool
	host       bool
	verbose    bool
}

func main() {
	log.SetOutput(os.Stderr)
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		log.Fatalf("sortbench: %v", err)
	}
}

func newRootCommand(out io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "sortbench <size>",
		Short:         "Compare sorting algorithms on the same random integers",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(out, cmd.Flags(), opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "TOML config file. Flags override its values")
	flags.StringVarP(&opts.format, "format", "f", string(sortbench.FormatText), "Report format: text, json, yaml or toml")
	flags.StringSliceVarP(&opts.algorithms, "algorithm", "a", nil, "Algorithms to run, in order (default all)")
	flags.StringVar(&opts.compare, "compare", "", "Print each algorithm's mean relative to this baseline algorithm")
	flags.StringVar(&opts.profile, "profile", "", "Profile the run: cpu or mem")
	flags.StringVar(&opts.profileDir, "profile-dir", ".", "Directory profiles are written to")
	flags.IntVar(&opts.min, "min", sortbench.DefaultMin, "Smallest generated value")
	flags.IntVar(&opts.max, "max", sortbench.DefaultMax, "Largest generated value")
	flags.Int64Var(&opts.seed, "seed", 0, "Random seed, 0 for a clock seeded sample")
	flags.BoolVar(&opts.verify, "verify", false, "Check every trial's output is a sorted permutation of the sample")
	flags.BoolVar(&opts.gc, "gc", false, "Run the garbage collector before every trial")
	flags.BoolVar(&opts.host, "host", false, "Attach host details to the report")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log progress at debug level")
	return cmd
}

func run(out io.Writer, flags *pflag.FlagSet, opts *options, sizeArg string) error {
	if opts.verbose {
		log.SetLevel(log.DebugLevel)
	}

	size, err := strconv.Atoi(sizeArg)
	if err != nil {
		return fmt.Errorf("%w: size [%s] is not an integer", sortbench.ErrInvalidSize, sizeArg)
	}

	format, err := sortbench.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	config, err := loadConfig(flags, opts)
	if err != nil {
		return err
	}

	runner, err := sortbench.NewRunnerFromConfig(config)
	if err != nil {
		return err
	}

	var host *sortbench.HostInfo
	if opts.host {
		if host, err = sortbench.CollectHostInfo(); err != nil {
			log.Warnf("Host details are incomplete: %v", err)
		}
		log.WithFields(log.Fields{
			"cpu":    host.CPUModel,
			"cores":  host.LogicalCores,
			"memory": host.TotalMemory,
		}).Info("host")
	}

	switch opts.profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(opts.profileDir), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(opts.profileDir), profile.Quiet).Stop()
	default:
		return fmt.Errorf("%w: unknown profile [%s], expected cpu or mem", sortbench.ErrInvalidConfig, opts.profile)
	}

	report, err := runner.Run(size)
	if err != nil {
		return err
	}
	report.Host = host

	if err := report.Write(out, format); err != nil {
		return fmt.Errorf("Failed to write report: %w", err)
	}

	if opts.compare != "" {
		comparisons, err := report.Relative(opts.compare)
		if err != nil {
			return err
		}
		for _, c := range comparisons {
			fmt.Fprintf(out, "%s: %.2fx %s\n", c.Name, c.Ratio, opts.compare)
		}
	}
	return nil
}

// loadConfig starts from the config file, if any, and applies the flags the
// user actually set on top of it.
func loadConfig(flags *pflag.FlagSet, opts *options) (*sortbench.Config, error) {
	config := sortbench.DefaultConfig()
	if opts.configPath != "" {
		var err error
		if config, err = sortbench.LoadConfig(opts.configPath); err != nil {
			return nil, err
		}
	}

	if flags.Changed("min") {
		config.Generator.Min = opts.min
	}
	if flags.Changed("max") {
		config.Generator.Max = opts.max
	}
	if flags.Changed("seed") {
		config.Generator.Seed = opts.seed
	}
	if flags.Changed("algorithm") {
		config.Runner.Algorithms = opts.algorithms
	}
	if flags.Changed("verify") {
		config.Runner.Verify = opts.verify
	}
	if flags.Changed("gc") {
		config.Runner.CollectGarbage = opts.gc
	}
	return config, nil
}
