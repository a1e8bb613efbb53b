package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"

	"nickandperla.net/sortbench"
)

var configPath = flag.String("config", "", "The config file for sortbench tools to use. Defaults to built-in settings")

var sizes = flag.String("sizes", "100,1000,10000", "Comma separated sample sizes to benchmark, smallest first")

var verbose = flag.Bool("v", false, "Log progress at debug level")

func main() {
	flag.Parse()
	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	config := sortbench.DefaultConfig()
	if *configPath != "" {
		var err error
		if config, err = sortbench.LoadConfig(*configPath); err != nil {
			log.Fatalf("Unable to load sortbench config: %v", err)
		}
	}

	sweep, err := parseSizes(*sizes)
	if err != nil {
		log.Fatalf("Invalid -sizes: %v", err)
	}

	runner, err := sortbench.NewRunnerFromConfig(config)
	if err != nil {
		log.Fatalf("Failed to create runner: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tALGORITHM\tTRIALS\tMEAN (s)")
	for _, size := range sweep {
		log.Infof("Benchmarking %d elements", size)
		report, err := runner.Run(size)
		if err != nil {
			log.Fatalf("Benchmark of %d elements failed: %v", size, err)
		}
		for _, r := range report.Results {
			fmt.Fprintf(w, "%d\t%s\t%d\t%.6f\n", size, r.Name, r.Trials, r.Mean)
		}
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("Failed to write results: %v", err)
	}
}

func parseSizes(list string) ([]int, error) {
	var out []int
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		size, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("size [%s] is not an integer", field)
		}
		if size <= 0 {
			return nil, fmt.Errorf("%w: size [%d] must be positive", sortbench.ErrInvalidSize, size)
		}
		out = append(out, size)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no sizes given", sortbench.ErrInvalidSize)
	}
	return out, nil
}
