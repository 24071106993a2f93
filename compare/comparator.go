// SPDX-License-Identifier: MIT

package compare

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/maxflow/capacity"
	"github.com/katalvlaran/maxflow/flow"
	"github.com/katalvlaran/maxflow/metrics"
)

// Comparator runs a fixed set of solvers and cross-checks their results.
// It holds no per-call state and is safe for concurrent use.
type Comparator struct {
	solvers  []flow.Solver
	parallel bool
	verify   bool
	flowOpts flow.FlowOptions
	log      *logrus.Entry
	metrics  *metrics.Collectors
}

// New returns a Comparator over flow.Solvers(), running them one after the
// other, with conservation checks off and logs sent to the standard logrus
// logger.
func New(opts ...Option) *Comparator {
	c := &Comparator{
		solvers:  flow.Solvers(),
		flowOpts: flow.FlowOptions{StopAtSinkLevel: true},
		log:      logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Solvers returns the names of the compared solvers, in order.
func (c *Comparator) Solvers() []string {
	names := make([]string, len(c.solvers))
	for i, s := range c.solvers {
		names[i] = s.Name()
	}

	return names
}

// Compare validates m once, runs every solver from source to sink, and
// checks that they agree.
//
// Steps:
//  1. Honour ctx, then validate m and the terminals (*capacity.InvalidGraphError);
//     a rejected matrix counts as a failed solve for every solver.
//  2. Run the solvers, sequentially or concurrently; each receives its own
//     copy of m so none can observe another's residual state.
//  3. Record metrics for every result.
//  4. Any differing flow value → *InternalInconsistencyError.
//  5. With verification on, any infeasible flow → *InternalInconsistencyError.
//
// No partial Report is returned on failure.
func (c *Comparator) Compare(ctx context.Context, m capacity.Matrix, source, sink int) (Report, error) {
	// 1) Context and validation
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	if err := capacity.ValidateAll(m, source, sink); err != nil {
		c.log.WithField("err", err).Warn("rejected capacity matrix")
		for _, s := range c.solvers {
			c.observeFailure(s)
		}

		return Report{}, err
	}

	// 2) Solve
	results, err := c.run(ctx, m, source, sink)
	if err != nil {
		return Report{}, err
	}

	// 3) Metrics
	c.observe(results)

	// 4) Agreement
	if !agree(results) {
		return Report{}, c.inconsistent(results, nil)
	}

	// 5) Feasibility
	if c.verify {
		for _, res := range results {
			if err := flow.CheckConservation(m, res.Flow, source, sink); err != nil {
				return Report{}, c.inconsistent(results, err)
			}
		}
	}

	report := Report{
		Vertices: m.Size(),
		Arcs:     m.ArcCount(),
		Source:   source,
		Sink:     sink,
		Results:  results,
	}
	fields := logrus.Fields{
		"vertices": report.Vertices,
		"arcs":     report.Arcs,
		"value":    report.Value(),
	}
	for _, res := range results {
		fields[res.Algorithm] = res.Elapsed
	}
	c.log.WithFields(fields).Info("solvers agree")

	return report, nil
}

// run executes every solver and returns their results in solver order.
func (c *Comparator) run(ctx context.Context, m capacity.Matrix, source, sink int) ([]flow.Result, error) {
	results := make([]flow.Result, len(c.solvers))

	if !c.parallel {
		for i, s := range c.solvers {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			res, err := s.Solve(m.Clone(), source, sink, c.solverOptions(s))
			if err != nil {
				c.observeFailure(s)

				return nil, err
			}
			results[i] = res
		}

		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, s := range c.solvers {
		i, s := i, s
		local := m.Clone()
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := s.Solve(local, source, sink, c.solverOptions(s))
			if err != nil {
				c.observeFailure(s)

				return err
			}
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// solverOptions derives the options for one solver, routing Verbose traces
// to the comparator's logger when none was set.
func (c *Comparator) solverOptions(s flow.Solver) flow.FlowOptions {
	opts := c.flowOpts
	if opts.Logger == nil {
		opts.Logger = c.log.WithField("solver", s.Name())
	}

	return opts
}

func agree(results []flow.Result) bool {
	for _, res := range results[1:] {
		if res.Value != results[0].Value {
			return false
		}
	}

	return true
}

func (c *Comparator) inconsistent(results []flow.Result, cause error) error {
	err := &InternalInconsistencyError{
		Algorithms: make([]string, len(results)),
		Values:     make([]int64, len(results)),
		Err:        cause,
	}
	for i, res := range results {
		err.Algorithms[i] = res.Algorithm
		err.Values[i] = res.Value
	}
	if c.metrics != nil {
		c.metrics.InconsistencyTotal.Inc()
	}
	c.log.WithField("err", err).Error("max-flow solvers are inconsistent")

	return err
}

func (c *Comparator) observe(results []flow.Result) {
	if c.metrics == nil {
		return
	}
	for _, res := range results {
		c.metrics.SolveDurationSeconds.WithLabelValues(res.Algorithm).Observe(res.Elapsed.Seconds())
		c.metrics.SolvesTotal.WithLabelValues(res.Algorithm, metrics.Ok).Inc()
		c.metrics.AugmentationsTotal.WithLabelValues(res.Algorithm).Add(float64(res.Augmentations))
		c.metrics.FlowValue.WithLabelValues(res.Algorithm).Set(float64(res.Value))
	}
}

// observeFailure counts one failed solve: a rejected input or a solver error.
func (c *Comparator) observeFailure(s flow.Solver) {
	if c.metrics != nil {
		c.metrics.SolvesTotal.WithLabelValues(s.Name(), metrics.Fail).Inc()
	}
}

// Report is the outcome of one successful comparison.
type Report struct {
	Vertices int
	Arcs     int
	Source   int
	Sink     int
	// Results holds one entry per solver, in the comparator's solver order.
	Results []flow.Result
}

// Value returns the agreed flow value.
func (r Report) Value() int64 {
	if len(r.Results) == 0 {
		return 0
	}

	return r.Results[0].Value
}

// Result returns the result of the named algorithm.
func (r Report) Result(algorithm string) (flow.Result, bool) {
	for _, res := range r.Results {
		if res.Algorithm == algorithm {
			return res, true
		}
	}

	return flow.Result{}, false
}

// BFS returns the Edmonds–Karp result, or a zero Result if it was not run.
func (r Report) BFS() flow.Result {
	res, _ := r.Result(flow.AlgorithmEdmondsKarp)

	return res
}

// Blocking returns the Dinic result, or a zero Result if it was not run.
func (r Report) Blocking() flow.Result {
	res, _ := r.Result(flow.AlgorithmDinic)

	return res
}

// Faster returns the algorithm name of the result with the smallest elapsed
// time, or "" for an empty Report. Ties go to the earlier solver.
func (r Report) Faster() string {
	var (
		best        string
		bestElapsed time.Duration
	)
	for i, res := range r.Results {
		if i == 0 || res.Elapsed < bestElapsed {
			best, bestElapsed = res.Algorithm, res.Elapsed
		}
	}

	return best
}

// Matches reports whether guess equals the agreed flow value.
func (r Report) Matches(guess int64) bool {
	return len(r.Results) > 0 && guess == r.Value()
}
