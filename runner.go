package sortbench

import (
	"fmt"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
)

// Runner measures every algorithm against one generated Sample. Trials run
// strictly one after another on the calling goroutine.
type Runner struct {
	Config     *RunnerConfig
	Generator  *Generator
	Algorithms []Algorithm

	// Now is the clock trials are timed with. time.Now carries a monotonic
	// reading, so elapsed times ignore wall clock adjustments.
	Now func() time.Time
}

// NewRunner wires a Runner. Nil arguments fall back to the default runner
// settings, a Generator over [DefaultMin, DefaultMax] and DefaultAlgorithms.
func NewRunner(config *RunnerConfig, generator *Generator, algorithms []Algorithm) *Runner {
	if config == nil {
		config = DefaultRunnerConfig()
	}
	if generator == nil {
		generator = NewGenerator(nil)
	}
	if algorithms == nil {
		algorithms = DefaultAlgorithms()
	}
	return &Runner{
		Config:     config,
		Generator:  generator,
		Algorithms: algorithms,
		Now:        time.Now,
	}
}

// NewRunnerFromConfig validates config and builds a Runner for the algorithms
// it names.
func NewRunnerFromConfig(config *Config) (*Runner, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	algorithms, err := SelectAlgorithms(config.Runner.Algorithms)
	if err != nil {
		return nil, err
	}
	return NewRunner(config.Runner, NewGenerator(config.Generator), algorithms), nil
}

// Run benchmarks the default algorithm set on size random values in
// [DefaultMin, DefaultMax].
func Run(size int) (*BenchmarkReport, error) {
	return NewRunner(nil, nil, nil).Run(size)
}

// TrialCount is the number of timed trials each algorithm gets for a sample
// of size elements. Samples above the threshold are measured once.
func (r *Runner) TrialCount(size int) int {
	if size > r.Config.TrialThreshold {
		return r.Config.LargeTrials
	}
	return r.Config.SmallTrials
}

// Run generates one Sample of size values and times each algorithm on it, in
// registration order. Any error aborts the whole run and no report is
// returned.
func (r *Runner) Run(size int) (*BenchmarkReport, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: size [%d] must be positive", ErrInvalidSize, size)
	}

	sample, err := r.Generator.Generate(size)
	if err != nil {
		return nil, err
	}

	trials := r.TrialCount(size)
	Log.WithFields(logrus.Fields{
		"size":       size,
		"trials":     trials,
		"algorithms": len(r.Algorithms),
	}).Debug("benchmark started")

	report := &BenchmarkReport{
		Size:    size,
		Min:     r.Generator.Config.Min,
		Max:     r.Generator.Config.Max,
		Results: make([]AlgorithmResult, 0, len(r.Algorithms)),
	}
	for _, algorithm := range r.Algorithms {
		result, err := r.measure(algorithm, sample, trials)
		if err != nil {
			return nil, err
		}
		report.Results = append(report.Results, result)
	}

	return report, nil
}

func (r *Runner) measure(algorithm Algorithm, sample Sample, trials int) (AlgorithmResult, error) {
	var total time.Duration
	for i := 0; i < trials; i++ {
		data := sample.Clone()
		if r.Config.CollectGarbage {
			runtime.GC()
		}

		start := r.Now()
		sorted := algorithm.Sort(data)
		elapsed := r.Now().Sub(start)

		if elapsed > 0 {
			total += elapsed
		}

		if r.Config.Verify {
			if err := Verify(sample, sorted).Err(algorithm.Name); err != nil {
				return AlgorithmResult{}, fmt.Errorf("trial %d: %w", i+1, err)
			}
		}
	}

	result := AlgorithmResult{
		Name:   algorithm.Name,
		Mean:   total.Seconds() / float64(trials),
		Total:  total.Seconds(),
		Trials: trials,
	}

	Log.WithFields(logrus.Fields{
		"algorithm": result.Name,
		"trials":    result.Trials,
		"mean":      result.Mean,
	}).Debug("algorithm measured")

	return result, nil
}
