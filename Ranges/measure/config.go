package main

import (
	"bytes"
	"io"
	"os"
	"slices"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Structures each workload can run on.
var pairs = map[string][]string{
	"point": {"segtree", "fenwick"},
	"range": {"lazy"},
	"dual":  {"dual", "cdual"},
}

// Config of a measurement run. Zero values are replaced by defaults.
type Config struct {
	Size        int      `yaml:"size"`
	Ops         int      `yaml:"ops"`
	Steps       int      `yaml:"steps"`
	Parallelism int      `yaml:"parallelism"`
	Workloads   []string `yaml:"workloads"`
	Structures  []string `yaml:"structures"`
}

func defaultConfig() Config {
	return Config{
		Size:        1 << 16,
		Ops:         1 << 16,
		Steps:       10,
		Parallelism: 1,
		Workloads:   []string{"point", "range", "dual"},
		Structures:  []string{"segtree", "fenwick", "lazy", "dual", "cdual"},
	}
}

// loadConfig reads a yaml file over the defaults. An empty path gives the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, errors.Wrap(err, "open config")
	}
	defer f.Close()
	return cfg, errors.Wrapf(decodeConfig(f, &cfg), "config %s", path)
}

func decodeConfig(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func parseConfig(b []byte) (Config, error) {
	cfg := defaultConfig()
	return cfg, decodeConfig(bytes.NewReader(b), &cfg)
}

// Validate reports the first unusable setting.
func (u *Config) Validate() error {
	switch {
	case u.Size < 1:
		return errors.Errorf("size must be positive, got %d", u.Size)
	case u.Ops < 1:
		return errors.Errorf("ops must be positive, got %d", u.Ops)
	case u.Steps < 1 || u.Steps > u.Size:
		return errors.Errorf("steps must be in [1, size], got %d", u.Steps)
	case u.Parallelism < 1:
		return errors.Errorf("parallelism must be positive, got %d", u.Parallelism)
	case len(u.Workloads) == 0:
		return errors.New("no workloads")
	}
	for _, w := range u.Workloads {
		if _, ok := pairs[w]; !ok {
			return errors.Errorf("unknown workload %q", w)
		}
	}
	for _, s := range u.Structures {
		if !slices.ContainsFunc(u.Workloads, func(w string) bool { return slices.Contains(pairs[w], s) }) {
			return errors.Errorf("structure %q runs in none of the selected workloads", s)
		}
	}
	return nil
}

// job is one (workload, structure) sweep.
type job struct {
	workload, structure string
}

func (u job) String() string {
	return u.workload + "/" + u.structure
}

// Jobs in workload order. An empty Structures list selects everything the workloads support.
func (u *Config) Jobs() []job {
	var js []job
	for _, w := range u.Workloads {
		for _, s := range pairs[w] {
			if len(u.Structures) == 0 || slices.Contains(u.Structures, s) {
				js = append(js, job{w, s})
			}
		}
	}
	return js
}
