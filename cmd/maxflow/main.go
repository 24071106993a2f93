// SPDX-License-Identifier: MIT

// Command maxflow computes the maximum flow of a network with every solver,
// checks that they agree, and prints their timings and a minimum cut.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/maxflow/capacity"
	"github.com/katalvlaran/maxflow/compare"
	"github.com/katalvlaran/maxflow/flow"
	"github.com/katalvlaran/maxflow/metrics"
)

// LogConfig configures handling of application log events.
type LogConfig struct {
	Level  string `long:"level" env:"LEVEL" default:"warn" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error" choice:"fatal" description:"Logging level"`
	Format string `long:"format" env:"FORMAT" default:"text" choice:"json" choice:"text" choice:"color" description:"Logging output format"`
}

// Config is the full command-line configuration.
type Config struct {
	Matrix   string `long:"matrix" short:"m" description:"YAML network file with a 'matrix' or 'arcs' key. Use '-' for stdin"`
	Traffic  string `long:"traffic" short:"t" description:"Comma-separated capacities of the 13 traffic-network arcs (A→B, A→C, A→D, B→E, B→F, C→E, C→F, D→F, E→G, E→H, F→H, G→T, H→T)"`
	Source   int    `long:"source" short:"s" default:"0" description:"Source vertex"`
	Sink     int    `long:"sink" default:"-1" description:"Sink vertex; -1 selects the last vertex"`
	Parallel bool   `long:"parallel" description:"Run the solvers concurrently"`
	Verify   bool   `long:"verify" description:"Also check every solver's flow for feasibility"`
	Guess    int64  `long:"guess" short:"g" default:"-1" description:"Compare a guessed flow value against the computed one; negative disables"`
	Verbose  bool   `long:"verbose" short:"v" description:"Log every augmentation at debug level"`
	Metrics  bool   `long:"metrics" description:"Write the collected maxflow_* metrics in Prometheus text format after the report"`

	Solvers []string `long:"solver" choice:"edmonds-karp" choice:"dinic" choice:"ford-fulkerson" description:"Solver to compare; repeat to select several (default: edmonds-karp and dinic)"`

	Log LogConfig `group:"Logging" namespace:"log" env-namespace:"LOG"`
}

// Exit codes.
const (
	exitOK           = 0
	exitFailure      = 1
	exitWrongGuess   = 2
	exitInconsistent = 3
)

func main() {
	var cfg Config
	var parser = flags.NewParser(&cfg, flags.Default)
	parser.LongDescription = `maxflow computes the maximum flow of a network with both the
Edmonds–Karp and Dinic solvers and fails loudly if they disagree.

The network is read from a YAML file (--matrix) or built from the fixed
9-vertex traffic topology (--traffic).`

	if _, err := parser.Parse(); err != nil {
		if flagErr, ok := err.(*flags.Error); ok && flagErr.Type == flags.ErrHelp {
			os.Exit(exitOK)
		}
		os.Exit(exitFailure)
	}
	initLog(cfg.Log)

	os.Exit(run(context.Background(), cfg, os.Stdin, os.Stdout))
}

// initLog configures the standard logger.
func initLog(cfg LogConfig) {
	if cfg.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else if cfg.Format == "text" {
		log.SetFormatter(&log.TextFormatter{})
	} else if cfg.Format == "color" {
		log.SetFormatter(&log.TextFormatter{ForceColors: true})
	}

	if lvl, err := log.ParseLevel(cfg.Level); err != nil {
		log.WithField("err", err).Fatal("unrecognized log level")
	} else {
		log.SetLevel(lvl)
		log.WithField("level", lvl).Debug("using log level")
	}
}

// run executes one comparison and returns the process exit code.
func run(ctx context.Context, cfg Config, stdin io.Reader, out io.Writer) int {
	m, err := loadNetwork(cfg, stdin)
	if err != nil {
		log.WithField("err", err).Error("failed to load network")
		return exitFailure
	}
	var sink = cfg.Sink
	if sink < 0 {
		sink = m.Size() - 1
	}

	var flowOpts = flow.DefaultOptions()
	flowOpts.Logger = nil
	flowOpts.Verbose = cfg.Verbose

	solvers, err := selectSolvers(cfg.Solvers)
	if err != nil {
		log.WithField("err", err).Error("failed to select solvers")
		return exitFailure
	}

	var c = compare.New(
		compare.WithSolvers(solvers...),
		compare.WithParallel(cfg.Parallel),
		compare.WithVerifyConservation(cfg.Verify),
		compare.WithFlowOptions(flowOpts),
		compare.WithLogger(log.WithField("component", "compare")),
		compare.WithMetrics(metrics.Default),
	)

	report, err := c.Compare(ctx, m, cfg.Source, sink)
	if errors.Is(err, compare.ErrInternalInconsistency) {
		log.WithField("err", err).Error("solvers disagree")
		return exitInconsistent
	} else if err != nil {
		log.WithField("err", err).Error("failed to compute max flow")
		return exitFailure
	}

	cut, err := flow.MinCut(m, report.Results[0], cfg.Source)
	if err != nil {
		log.WithField("err", err).Error("failed to derive min cut")
		return exitFailure
	}
	if err = writeReport(out, m, report, cut); err != nil {
		log.WithField("err", err).Error("failed to write report")
		return exitFailure
	}

	if cfg.Metrics {
		if err = writeMetrics(out, prometheus.DefaultGatherer); err != nil {
			log.WithField("err", err).Error("failed to write metrics")
			return exitFailure
		}
	}

	if cfg.Guess >= 0 {
		if !report.Matches(cfg.Guess) {
			fmt.Fprintf(out, "guess %d is wrong: maximum flow is %d\n", cfg.Guess, report.Value())
			return exitWrongGuess
		}
		fmt.Fprintf(out, "guess %d is correct\n", cfg.Guess)
	}

	return exitOK
}

// selectSolvers resolves solver names, in order and without duplicates.
// No names selects flow.Solvers().
func selectSolvers(names []string) ([]flow.Solver, error) {
	if len(names) == 0 {
		return flow.Solvers(), nil
	}
	var out []flow.Solver
	var seen = make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		s, ok := flow.Lookup(name)
		if !ok {
			return nil, errors.Errorf("unknown solver %q", name)
		}
		seen[name] = true
		out = append(out, s)
	}

	return out, nil
}

// loadNetwork builds the matrix selected by cfg.
func loadNetwork(cfg Config, stdin io.Reader) (capacity.Matrix, error) {
	switch {
	case cfg.Matrix != "" && cfg.Traffic != "":
		return nil, errors.New("--matrix and --traffic are mutually exclusive")
	case cfg.Matrix != "":
		return readNetwork(cfg.Matrix, stdin)
	case cfg.Traffic != "":
		return parseTraffic(cfg.Traffic)
	default:
		return nil, errors.New("one of --matrix or --traffic is required")
	}
}
