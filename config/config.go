// Package config loads the TOML configuration file consumed by the
// tinyjambu CLI driver and benchmark harness: which variant to default
// to, and the benchmark settings.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Variant names accepted in the [default] section and on the CLI.
const (
	Variant128 = "128"
	Variant192 = "192"
	Variant256 = "256"
)

// Config mirrors the on-disk TOML shape.
type Config struct {
	Default   DefaultConfig   `toml:"default"`
	Benchmark BenchmarkConfig `toml:"benchmark"`
}

// DefaultConfig picks the variant used when the CLI is invoked without an
// explicit --variant flag. The unrolling is fixed at build time and is not
// configurable here.
type DefaultConfig struct {
	Variant string `toml:"variant"`
}

// BenchmarkConfig holds the [benchmark] section. SampleSize is the
// plaintext size the `bench` subcommand uses when --size is not positive.
// OutputPath is parsed but not read by the `bench` subcommand, which writes
// no report file.
type BenchmarkConfig struct {
	OutputPath string `toml:"output_path"`
	SampleSize int64  `toml:"sample_size_bytes"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Default:   DefaultConfig{Variant: Variant128},
		Benchmark: BenchmarkConfig{OutputPath: "", SampleSize: 4096},
	}
}

// Load reads and parses the TOML file at path. A missing file is not an
// error: Default() is returned instead, matching the CLI's "works with
// zero configuration" contract.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("tinyjambu: decoding config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every field holds a value the CLI can act on.
func (c Config) Validate() error {
	switch c.Default.Variant {
	case Variant128, Variant192, Variant256:
	default:
		return fmt.Errorf("tinyjambu: unknown default variant %q", c.Default.Variant)
	}
	if c.Benchmark.SampleSize <= 0 {
		return fmt.Errorf("tinyjambu: benchmark.sample_size_bytes must be positive, got %d", c.Benchmark.SampleSize)
	}
	return nil
}
