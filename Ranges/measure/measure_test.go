package main

import (
	"io"
	"testing"

	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBench(t *testing.T) {
	for w, ss := range pairs {
		for _, s := range ss {
			fn, err := bench(job{w, s}, 16, 8)
			require.NoError(t, err, "%s/%s", w, s)
			assert.NotNil(t, fn)
		}
	}
	_, err := bench(job{"range", "fenwick"}, 16, 8)
	assert.Error(t, err)
	_, err = bench(job{"sort", "segtree"}, 16, 8)
	assert.Error(t, err)
}

func TestSteps(t *testing.T) {
	for _, s := range steps(7, 10, 1000) {
		assert.True(t, 0 <= s.l && s.l < s.r && s.r <= 10, "%+v", s)
	}
	assert.Equal(t, steps(3, 10, 20), steps(3, 10, 20))
}

func TestStats(t *testing.T) {
	res := stats([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.InDelta(t, 5, res.avg, 1e-9)
	assert.InDelta(t, 2, res.stddev, 1e-9)
}

func TestRun(t *testing.T) {
	if testing.Short() {
		t.Skip("runs real benchmarks")
	}
	cfg := Config{Size: 64, Ops: 16, Steps: 1, Parallelism: 2, Workloads: []string{"dual"}}
	require.NoError(t, cfg.Validate())
	reg := prometheus.NewRegistry()
	results, err := run(log.NewLogfmtLogger(io.Discard), cfg, reg)
	require.NoError(t, err)
	for _, j := range cfg.Jobs() {
		res, ok := results.Get(j.String())
		assert.True(t, ok, j.String())
		assert.Positive(t, res.avg)
	}
	mfs, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, mfs, 1)
	assert.Equal(t, "ranges_measure_ms_per_op", mfs[0].GetName())
	assert.Len(t, mfs[0].GetMetric(), 4)
}

// Run under -race: every workload runs its sweep while the others are in flight.
func TestRunParallel(t *testing.T) {
	if testing.Short() {
		t.Skip("runs real benchmarks")
	}
	cfg := defaultConfig()
	cfg.Size, cfg.Ops, cfg.Steps, cfg.Parallelism = 32, 8, 1, len(cfg.Jobs())
	require.NoError(t, cfg.Validate())
	results, err := run(log.NewNopLogger(), cfg, prometheus.NewRegistry())
	require.NoError(t, err)
	for _, j := range cfg.Jobs() {
		_, ok := results.Get(j.String())
		assert.True(t, ok, j.String())
	}
}
