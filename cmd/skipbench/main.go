// Command skipbench measures skipindex throughput under configurable key
// distributions. It times separate insert, find, and erase phases over a
// number of runs and prints a summary table.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/metailurini/skipindex"
	"github.com/metailurini/skipindex/internal/datastream"
)

type phaseStats struct {
	name   string
	ops    int
	runsMs []float64
}

func main() {
	var (
		n        int
		ops      int
		dist     string
		zipfA    float64
		zipfB    float64
		seed     int64
		runs     int
		maxLevel int
		prob     float64
	)

	flag.IntVar(&n, "n", 1<<16, "number of distinct keys")
	flag.IntVar(&ops, "ops", 1<<20, "number of lookup operations per run")
	flag.StringVar(&dist, "dist", "uniform", "key distribution: uniform or zipf")
	flag.Float64Var(&zipfA, "a", 1.07, "Zipf parameter a")
	flag.Float64Var(&zipfB, "b", 0.0, "Zipf parameter b")
	flag.Int64Var(&seed, "seed", time.Now().UnixNano(), "seed for workload generation")
	flag.IntVar(&runs, "runs", 5, "how many times to repeat the benchmark")
	flag.IntVar(&maxLevel, "max-level", skipindex.DefaultMaxLevel, "skip list max level")
	flag.Float64Var(&prob, "prob", skipindex.DefaultProbability, "skip list level probability")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(logger, n, ops, dist, zipfA, zipfB, seed, runs, maxLevel, prob); err != nil {
		logger.Fatal("benchmark failed", zap.Error(err))
	}
}

func run(logger *zap.Logger, n, ops int, dist string, zipfA, zipfB float64, seed int64, runs, maxLevel int, prob float64) error {
	if n <= 0 || ops <= 0 || runs <= 0 {
		return errors.Errorf("invalid workload: n=%d ops=%d runs=%d", n, ops, runs)
	}

	logger.Info("starting benchmark",
		zap.Int("keys", n),
		zap.Int("ops", ops),
		zap.String("dist", dist),
		zap.Int64("seed", seed),
		zap.Int("runs", runs),
		zap.Int("max_level", maxLevel),
		zap.Float64("prob", prob),
	)

	phases := []*phaseStats{
		{name: "insert", ops: n},
		{name: "find", ops: ops},
		{name: "erase", ops: n},
	}

	for r := 0; r < runs; r++ {
		gen, err := newGenerator(dist, n, zipfA, zipfB, seed+int64(r))
		if err != nil {
			return err
		}
		lookups := datastream.Sequence(gen, ops)

		list, err := skipindex.New(skipindex.IntHasher,
			skipindex.WithMaxLevel(maxLevel),
			skipindex.WithProbability(prob),
		)
		if err != nil {
			return errors.Wrap(err, "build list")
		}

		start := time.Now()
		for i := 0; i < n; i++ {
			list.Insert(i)
		}
		phases[0].runsMs = append(phases[0].runsMs, msSince(start))

		start = time.Now()
		hits := 0
		for _, k := range lookups {
			if list.Contains(k) {
				hits++
			}
		}
		phases[1].runsMs = append(phases[1].runsMs, msSince(start))

		start = time.Now()
		for i := 0; i < n; i++ {
			if err := list.Erase(i); err != nil {
				return errors.Wrapf(err, "erase key %d", i)
			}
		}
		phases[2].runsMs = append(phases[2].runsMs, msSince(start))

		stats := list.Stats()
		logger.Info("run complete",
			zap.Int("run", r+1),
			zap.Int("hits", hits),
			zap.Uint64("inserts", stats.Inserts),
			zap.Uint64("erases", stats.Erases),
			zap.Uint64("unlinks", stats.Unlinks),
		)
	}

	render(phases, runs)
	return nil
}

func newGenerator(dist string, n int, a, b float64, seed int64) (datastream.Generator, error) {
	switch dist {
	case "uniform":
		return datastream.NewUniform(n, seed), nil
	case "zipf":
		return datastream.NewZipf(n, a, b, seed), nil
	default:
		return nil, errors.Errorf("unknown distribution %q", dist)
	}
}

func msSince(start time.Time) float64 {
	return float64(time.Since(start)) / float64(time.Millisecond)
}

func render(phases []*phaseStats, runs int) {
	rows := make([][]string, 0, len(phases))
	for _, p := range phases {
		avg, min, max := summarize(p.runsMs)
		throughput := float64(p.ops) / (avg / 1000.0)
		rows = append(rows, []string{
			p.name,
			fmt.Sprintf("%d", runs),
			fmt.Sprintf("%.3f", avg),
			fmt.Sprintf("%.3f", min),
			fmt.Sprintf("%.3f", max),
			fmt.Sprintf("%.2f", throughput),
		})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Phase", "Runs", "Avg(ms)", "Min(ms)", "Max(ms)", "Ops/s"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}

func summarize(samples []float64) (avg, min, max float64) {
	if len(samples) == 0 {
		return 0, 0, 0
	}
	min, max = samples[0], samples[0]
	var sum float64
	for _, s := range samples {
		sum += s
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	return sum / float64(len(samples)), min, max
}
