package sortbench

import (
	"errors"
	"math"
	"slices"
	test "testing"
)

// scriptedSource replays values, reduced modulo n, and records every n it was
// asked for.
type scriptedSource struct {
	values []int64
	asked  []int64
	next   int
}

func (s *scriptedSource) Int63n(n int64) int64 {
	s.asked = append(s.asked, n)
	v := s.values[s.next%len(s.values)] % n
	s.next++
	return v
}

func TestGenerateScripted(t *test.T) {
	source := &scriptedSource{values: []int64{0, 5, 2, 4}}
	g := NewGeneratorWithSource(&GeneratorConfig{Min: 1, Max: 6}, source)

	sample, err := g.Generate(4)
	if err != nil {
		t.Fatalf("Generate() returned error: %v", err)
	}

	expected := Sample{1, 6, 3, 5}
	if !slices.Equal(sample, expected) {
		t.Errorf("Unexpected sample [%v], expected [%v]", sample, expected)
	}

	for _, n := range source.asked {
		if n != 6 {
			t.Errorf("Source asked for Int63n(%d), expected Int63n(6) for range [1, 6]", n)
		}
	}
}

func TestGenerateInvalidRange(t *test.T) {
	sample, err := Generate(10, 5, 1)
	if !errors.Is(err, ErrInvalidRange) {
		t.Errorf("Expected ErrInvalidRange, got: %v", err)
	}
	if sample != nil {
		t.Errorf("Expected nil sample on error, got [%v]", sample)
	}
}

func TestGenerateEmpty(t *test.T) {
	sample, err := Generate(0, 1, 10)
	if err != nil {
		t.Fatalf("Generate(0, 1, 10) returned error: %v", err)
	}
	if sample == nil || len(sample) != 0 {
		t.Errorf("Expected empty non-nil sample, got [%v]", sample)
	}
}

func TestGenerateNegativeLength(t *test.T) {
	if _, err := Generate(-1, 1, 10); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Expected ErrInvalidSize, got: %v", err)
	}
}

func TestGenerateBounds(t *test.T) {
	g := NewGeneratorWithSource(&GeneratorConfig{Min: -3, Max: 3}, NewRandomSource(42))

	sample, err := g.Generate(5000)
	if err != nil {
		t.Fatalf("Generate() returned error: %v", err)
	}
	if len(sample) != 5000 {
		t.Fatalf("Unexpected sample length [%d], expected 5000", len(sample))
	}

	seen := make(map[int]bool)
	for _, v := range sample {
		if v < -3 || v > 3 {
			t.Fatalf("Value [%d] is outside [-3, 3]", v)
		}
		seen[v] = true
	}
	// Both ends of the closed range should come up in 5000 draws.
	if !seen[-3] || !seen[3] {
		t.Errorf("Expected both bounds to be drawn, seen: %v", seen)
	}
}

func TestGenerateSingleValueRange(t *test.T) {
	sample, err := Generate(3, 7, 7)
	if err != nil {
		t.Fatalf("Generate(3, 7, 7) returned error: %v", err)
	}
	if !slices.Equal(sample, Sample{7, 7, 7}) {
		t.Errorf("Unexpected sample [%v], expected [7 7 7]", sample)
	}
}

func TestGenerateTooWide(t *test.T) {
	if _, err := Generate(1, math.MinInt64, math.MaxInt64); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("Expected ErrInvalidRange for the full int64 range, got: %v", err)
	}
}

func TestGenerateSeededIsReproducible(t *test.T) {
	config := &GeneratorConfig{Min: 1, Max: 100, Seed: 99}

	a, err := NewGenerator(config).Generate(50)
	if err != nil {
		t.Fatalf("Generate() returned error: %v", err)
	}
	b, err := NewGenerator(config).Generate(50)
	if err != nil {
		t.Fatalf("Generate() returned error: %v", err)
	}
	if !slices.Equal(a, b) {
		t.Errorf("Same seed produced different samples:\n%v\n%v", a, b)
	}
}

func TestSampleClone(t *test.T) {
	s := Sample{3, 1, 2}
	c := s.Clone()
	c[0] = 100

	if s[0] != 3 {
		t.Errorf("Mutating a clone changed the sample: [%v]", s)
	}
	if len(Sample{}.Clone()) != 0 {
		t.Errorf("Clone of an empty sample is not empty")
	}
}
