package sortbench

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// A Sample is the input shared by every algorithm in one benchmark session.
// It is never handed to an algorithm directly; trials work on a Clone.
type Sample []int

// Clone returns an independently owned copy of s.
func (s Sample) Clone() []int {
	c := make([]int, len(s))
	copy(c, s)
	return c
}

type GeneratorConfig struct {
	Min  int   `toml:"min" json:"min" yaml:"min"`
	Max  int   `toml:"max" json:"max" yaml:"max"`
	Seed int64 `toml:"seed" json:"seed,omitempty" yaml:"seed,omitempty"`
}

type Generator struct {
	Config *GeneratorConfig
	Source RandomSource
}

// NewGenerator builds a Generator over config's range. A nil config uses
// [DefaultMin, DefaultMax]. A zero seed draws from the package-level rng.
func NewGenerator(config *GeneratorConfig) *Generator {
	if config == nil {
		config = &GeneratorConfig{Min: DefaultMin, Max: DefaultMax}
	}
	source := rng
	if config.Seed != 0 {
		source = NewRandomSource(config.Seed)
	}
	return &Generator{Config: config, Source: source}
}

// NewGeneratorWithSource is NewGenerator with an explicit random source.
func NewGeneratorWithSource(config *GeneratorConfig, source RandomSource) *Generator {
	g := NewGenerator(config)
	g.Source = source
	return g
}

// Generate draws length values from the generator's configured range.
func (g *Generator) Generate(length int) (Sample, error) {
	return generate(g.Source, length, g.Config.Min, g.Config.Max)
}

// Generate draws length values uniformly from [min, max] using the
// package-level rng.
func Generate(length, min, max int) (Sample, error) {
	return generate(rng, length, min, max)
}

func generate(source RandomSource, length, min, max int) (Sample, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: length [%d] is negative", ErrInvalidSize, length)
	}
	if min > max {
		return nil, fmt.Errorf("%w: min [%d] is greater than max [%d]", ErrInvalidRange, min, max)
	}

	// Two's complement subtraction gives the exact width for any min <= max.
	width := uint64(max) - uint64(min)
	if width >= math.MaxInt64 {
		return nil, fmt.Errorf("%w: range [%d, %d] is wider than the random source supports", ErrInvalidRange, min, max)
	}

	sample := make(Sample, length)
	for i := range sample {
		sample[i] = min + int(source.Int63n(int64(width)+1))
	}

	Log.WithFields(logrus.Fields{
		"length": length,
		"min":    min,
		"max":    max,
	}).Debug("sample generated")

	return sample, nil
}
