package sortbench

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/BurntSushi/toml"
	cp "github.com/jinzhu/copier"
)

type RunnerConfig struct {
	TrialThreshold int      `toml:"trial_threshold"`
	SmallTrials    int      `toml:"small_trials"`
	LargeTrials    int      `toml:"large_trials"`
	Verify         bool     `toml:"verify"`
	CollectGarbage bool     `toml:"collect_garbage"`
	Algorithms     []string `toml:"algorithms"`
}

type Config struct {
	Generator *GeneratorConfig `toml:"generator"`
	Runner    *RunnerConfig    `toml:"runner"`
}

func DefaultRunnerConfig() *RunnerConfig {
	return &RunnerConfig{
		TrialThreshold: DefaultTrialThreshold,
		SmallTrials:    DefaultSmallTrials,
		LargeTrials:    DefaultLargeTrials,
	}
}

func DefaultConfig() *Config {
	return &Config{
		Generator: &GeneratorConfig{Min: DefaultMin, Max: DefaultMax},
		Runner:    DefaultRunnerConfig(),
	}
}

// LoadConfig reads a TOML config from path. Keys missing from the file keep
// their default values.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Unable to open config [%s]: %w", path, err)
	}
	defer f.Close()
	return DecodeConfig(f)
}

// configFile is the on-disk layout. Its sections are values so the decoder
// fills the defaults in place rather than allocating empty sections.
type configFile struct {
	Generator GeneratorConfig `toml:"generator"`
	Runner    RunnerConfig    `toml:"runner"`
}

func DecodeConfig(r io.Reader) (*Config, error) {
	defaults := DefaultConfig()
	file := configFile{Generator: *defaults.Generator, Runner: *defaults.Runner}

	md, err := toml.NewDecoder(r).Decode(&file)
	if err != nil {
		return nil, fmt.Errorf("Failed to unmarshal config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown keys %v", ErrInvalidConfig, undecoded)
	}

	config := &Config{Generator: &file.Generator, Runner: &file.Runner}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the runner settings. The generator range is left to the
// generator so a bad range fails the run the same way it fails Generate.
func (c *Config) Validate() error {
	if c.Generator == nil || c.Runner == nil {
		return fmt.Errorf("%w: generator and runner sections are required", ErrInvalidConfig)
	}
	return c.Runner.Validate()
}

func (rc *RunnerConfig) Validate() error {
	if rc.TrialThreshold < 0 {
		return fmt.Errorf("%w: trial_threshold [%d] is negative", ErrInvalidConfig, rc.TrialThreshold)
	}
	if rc.SmallTrials < 1 {
		return fmt.Errorf("%w: small_trials [%d] must be at least 1", ErrInvalidConfig, rc.SmallTrials)
	}
	if rc.LargeTrials < 1 {
		return fmt.Errorf("%w: large_trials [%d] must be at least 1", ErrInvalidConfig, rc.LargeTrials)
	}
	if _, err := SelectAlgorithms(rc.Algorithms); err != nil {
		return err
	}
	return nil
}

func (c *Config) Clone() *Config {
	clone := &Config{}
	if c.Generator != nil {
		clone.Generator = &GeneratorConfig{}
		cp.Copy(clone.Generator, c.Generator)
	}
	if c.Runner != nil {
		clone.Runner = &RunnerConfig{}
		cp.Copy(clone.Runner, c.Runner)
		clone.Runner.Algorithms = slices.Clone(c.Runner.Algorithms)
	}
	return clone
}
