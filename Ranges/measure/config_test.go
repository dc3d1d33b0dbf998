package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []job{{"point", "segtree"}, {"point", "fenwick"}, {"range", "lazy"}, {"dual", "dual"}, {"dual", "cdual"}}, cfg.Jobs())
}

func TestParseConfig(t *testing.T) {
	cfg, err := parseConfig([]byte("size: 1024\nworkloads: [dual]\nstructures: [cdual]\n"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1024, cfg.Size)
	assert.Equal(t, defaultConfig().Ops, cfg.Ops)
	assert.Equal(t, []job{{"dual", "cdual"}}, cfg.Jobs())

	cfg, err = parseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)

	_, err = parseConfig([]byte("sizes: 3\n"))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "measure.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps: 4\nparallelism: 2\n"), 0o644))
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Steps)
	assert.Equal(t, 2, cfg.Parallelism)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	for name, mod := range map[string]func(*Config){
		"size":        func(c *Config) { c.Size = 0 },
		"ops":         func(c *Config) { c.Ops = -1 },
		"steps":       func(c *Config) { c.Steps = c.Size + 1 },
		"parallelism": func(c *Config) { c.Parallelism = 0 },
		"no workload": func(c *Config) { c.Workloads = nil },
		"workload":    func(c *Config) { c.Workloads = []string{"sort"} },
		"structure":   func(c *Config) { c.Workloads, c.Structures = []string{"range"}, []string{"fenwick"} },
	} {
		cfg := defaultConfig()
		mod(&cfg)
		assert.Error(t, cfg.Validate(), name)
	}
}
