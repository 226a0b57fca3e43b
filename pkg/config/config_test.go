package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name       string `yaml:"name"`
	Iterations int    `yaml:"iterations"`
	Output     string `yaml:"output"`
}

func TestLoadSubstitutesEnvVars(t *testing.T) {
	t.Setenv("REUSE_TEST_OUTPUT", "/tmp/report.json")

	path := filepath.Join(t.TempDir(), "cfg.yaml")
	content := "name: bench\niterations: 1000\noutput: ${REUSE_TEST_OUTPUT}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	var cfg testConfig
	require.NoError(t, Load(path, &cfg))
	assert.Equal(t, "bench", cfg.Name)
	assert.Equal(t, 1000, cfg.Iterations)
	assert.Equal(t, "/tmp/report.json", cfg.Output)
}

func TestLoadMissingFile(t *testing.T) {
	var cfg testConfig
	err := Load(filepath.Join(t.TempDir(), "absent.yaml"), &cfg)
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: [unclosed"), 0644))

	var cfg testConfig
	assert.Error(t, Load(path, &cfg))
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	in := testConfig{Name: "round", Iterations: 7}
	require.NoError(t, Save(path, in))

	var out testConfig
	require.NoError(t, Load(path, &out))
	assert.Equal(t, in, out)
}
