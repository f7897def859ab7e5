package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tinyjambu.toml")
	contents := `
[default]
variant = "256"

[benchmark]
output_path = "bench.json"
sample_size_bytes = 65536
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Variant256, cfg.Default.Variant)
	require.Equal(t, "bench.json", cfg.Benchmark.OutputPath)
	require.EqualValues(t, 65536, cfg.Benchmark.SampleSize)
}

func TestLoadRejectsUnknownVariant(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte(`[default]
variant = "512"
`), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}
