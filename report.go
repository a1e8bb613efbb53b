package sortbench

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"
)

// AlgorithmResult is the timing of one algorithm over a session. Mean and
// Total are in seconds.
type AlgorithmResult struct {
	Name   string  `json:"name" yaml:"name" toml:"name"`
	Mean   float64 `json:"mean_seconds" yaml:"mean_seconds" toml:"mean_seconds"`
	Total  float64 `json:"total_seconds" yaml:"total_seconds" toml:"total_seconds"`
	Trials int     `json:"trials" yaml:"trials" toml:"trials"`
}

func (ar AlgorithmResult) MeanDuration() time.Duration {
	return time.Duration(ar.Mean * float64(time.Second))
}

// BenchmarkReport holds one result per algorithm, in registration order.
type BenchmarkReport struct {
	Size    int               `json:"size" yaml:"size" toml:"size"`
	Min     int               `json:"min" yaml:"min" toml:"min"`
	Max     int               `json:"max" yaml:"max" toml:"max"`
	Results []AlgorithmResult `json:"results" yaml:"results" toml:"results"`
	Host    *HostInfo         `json:"host,omitempty" yaml:"host,omitempty" toml:"host,omitempty"`
}

// Result looks up an algorithm's result by name.
func (br *BenchmarkReport) Result(name string) (AlgorithmResult, bool) {
	for _, r := range br.Results {
		if r.Name == name {
			return r, true
		}
	}
	return AlgorithmResult{}, false
}

// Fastest returns the result with the lowest mean. The earliest registered
// algorithm wins a tie.
func (br *BenchmarkReport) Fastest() (AlgorithmResult, bool) {
	if len(br.Results) == 0 {
		return AlgorithmResult{}, false
	}
	best := br.Results[0]
	for _, r := range br.Results[1:] {
		if r.Mean < best.Mean {
			best = r
		}
	}
	return best, true
}

// Comparison is an algorithm's mean relative to a baseline. Ratio is 0 when
// the baseline's mean is 0.
type Comparison struct {
	Name  string
	Ratio float64
}

// Relative compares each result with the named baseline, in report order.
func (br *BenchmarkReport) Relative(baseline string) ([]Comparison, error) {
	base, ok := br.Result(baseline)
	if !ok {
		return nil, fmt.Errorf("%w: baseline [%s] is not in the report", ErrUnknownAlgorithm, baseline)
	}
	comparisons := make([]Comparison, len(br.Results))
	for i, r := range br.Results {
		comparisons[i].Name = r.Name
		if base.Mean > 0 {
			comparisons[i].Ratio = r.Mean / base.Mean
		}
	}
	return comparisons, nil
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	}
	return "", fmt.Errorf("%w: unknown format [%s], expected one of text, json, yaml, toml", ErrInvalidConfig, s)
}

// WriteText prints the report header followed by one
// "<name>: <mean> seconds" line per algorithm.
func (br *BenchmarkReport) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "--- Testing Sort Algorithms on %d Random Elements ---\n", br.Size); err != nil {
		return err
	}
	for _, r := range br.Results {
		if _, err := fmt.Fprintln(w, FormatResult(r)); err != nil {
			return err
		}
	}
	return nil
}

func FormatResult(r AlgorithmResult) string {
	return fmt.Sprintf("%s: %.6f seconds", r.Name, r.Mean)
}

func (br *BenchmarkReport) Write(w io.Writer, format Format) error {
	switch format {
	case FormatText, "":
		return br.WriteText(w)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(br)
	case FormatYAML:
		out, err := yaml.Marshal(br)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	case FormatTOML:
		return toml.NewEncoder(w).Encode(br)
	}
	return fmt.Errorf("%w: unknown format [%s]", ErrInvalidConfig, format)
}
