// Command measure sweeps the Ranges structures over growing sizes and reports the time per
// benchmark iteration.
package main

import (
	"fmt"
	"math"
	"os"
	"testing"

	"github.com/alecthomas/kingpin/v2"
	"github.com/alphadose/haxmap"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

type result struct {
	avg, stddev float64
}

// sweep runs j at Steps evenly spaced sizes up to Size.
func sweep(logger log.Logger, cfg Config, j job) (result, error) {
	cs := make([]float64, 0, cfg.Steps)
	for i := 1; i <= cfg.Steps; i++ {
		n := cfg.Size / cfg.Steps * i
		fn, err := bench(j, n, cfg.Ops)
		if err != nil {
			return result{}, err
		}
		br := testing.Benchmark(fn)
		if br.N == 0 {
			return result{}, errors.Errorf("%s/%s failed at size %d", j.workload, j.structure, n)
		}
		ms := float64(br.T.Nanoseconds()) / float64(br.N) / 1e6
		cs = append(cs, ms)
		level.Debug(logger).Log("workload", j.workload, "structure", j.structure, "size", n, "iterations", br.N, "ms_per_op", ms)
	}
	return stats(cs), nil
}

func stats(cs []float64) result {
	var sum float64
	for _, v := range cs {
		sum += v
	}
	avg := sum / float64(len(cs))
	sum = 0
	for _, v := range cs {
		a := v - avg
		sum += a * a
	}
	return result{avg, math.Sqrt(sum / float64(len(cs)))}
}

func run(logger log.Logger, cfg Config, reg prometheus.Registerer) (*haxmap.Map[string, result], error) {
	msPerOp := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "ranges",
		Subsystem: "measure",
		Name:      "ms_per_op",
		Help:      "Milliseconds per benchmark iteration over the size sweep.",
	}, []string{"workload", "structure", "stat"})
	if err := reg.Register(msPerOp); err != nil {
		return nil, errors.Wrap(err, "register metrics")
	}
	results := haxmap.New[string, result]()
	var g errgroup.Group
	g.SetLimit(cfg.Parallelism)
	for _, j := range cfg.Jobs() {
		g.Go(func() error {
			res, err := sweep(logger, cfg, j)
			if err != nil {
				return err
			}
			results.Set(j.String(), res)
			msPerOp.WithLabelValues(j.workload, j.structure, "avg").Set(res.avg)
			msPerOp.WithLabelValues(j.workload, j.structure, "stddev").Set(res.stddev)
			level.Info(logger).Log("workload", j.workload, "structure", j.structure, "average_ms", res.avg, "stddev_ms", res.stddev)
			return nil
		})
	}
	return results, g.Wait()
}

func newLogger(lvl string) log.Logger {
	var opt level.Option
	switch lvl {
	case "debug":
		opt = level.AllowDebug()
	case "warn":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	default:
		opt = level.AllowInfo()
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = level.NewFilter(logger, opt)
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}

func main() {
	testing.Init()
	app := kingpin.New("measure", "Sweep the Ranges structures over growing sizes.")
	configFile := app.Flag("config.file", "YAML workload file.").String()
	logLevel := app.Flag("log.level", "Only log messages with the given severity or above.").Default("info").Enum("debug", "info", "warn", "error")
	textfile := app.Flag("metrics.textfile", "Write the results to this file in the text exposition format.").String()
	size := app.Flag("size", "Largest sequence size of the sweep.").Int()
	ops := app.Flag("ops", "Operations per benchmark iteration.").Int()
	numSteps := app.Flag("steps", "Number of sizes in the sweep.").Int()
	parallelism := app.Flag("parallelism", "Sweeps run at once.").Int()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := newLogger(*logLevel)
	cfg, err := loadConfig(*configFile)
	if err != nil {
		level.Error(logger).Log("msg", "loading config", "err", err)
		os.Exit(1)
	}
	for _, f := range []struct {
		flag int
		dst  *int
	}{{*size, &cfg.Size}, {*ops, &cfg.Ops}, {*numSteps, &cfg.Steps}, {*parallelism, &cfg.Parallelism}} {
		if f.flag != 0 {
			*f.dst = f.flag
		}
	}
	if err = cfg.Validate(); err != nil {
		level.Error(logger).Log("msg", "invalid config", "err", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	results, err := run(logger, cfg, reg)
	if err != nil {
		level.Error(logger).Log("msg", "measuring", "err", err)
		os.Exit(1)
	}
	for _, j := range cfg.Jobs() {
		if res, ok := results.Get(j.String()); ok {
			fmt.Printf("%-14s average: %fms/op stddev: %fms/op\n", j, res.avg, res.stddev)
		}
	}
	if *textfile != "" {
		if err = prometheus.WriteToTextfile(*textfile, reg); err != nil {
			level.Error(logger).Log("msg", "writing metrics", "err", err)
			os.Exit(1)
		}
	}
}
