// SPDX-License-Identifier: MIT

package compare

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/maxflow/flow"
	"github.com/katalvlaran/maxflow/metrics"
)

// ErrInternalInconsistency is matched by every *InternalInconsistencyError.
var ErrInternalInconsistency = errors.New("compare: internal inconsistency")

// InternalInconsistencyError reports solvers that disagree on the flow value
// or a solver whose flow is not feasible. Algorithms and Values are parallel
// slices in solver order. Err, when set, is the underlying feasibility failure.
type InternalInconsistencyError struct {
	Algorithms []string
	Values     []int64
	Err        error
}

func (e *InternalInconsistencyError) Error() string {
	var b strings.Builder
	b.WriteString("compare: internal inconsistency:")
	for i, name := range e.Algorithms {
		fmt.Fprintf(&b, " %s=%d", name, e.Values[i])
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}

	return b.String()
}

// Unwrap exposes both ErrInternalInconsistency and the underlying cause.
func (e *InternalInconsistencyError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInternalInconsistency}
	}

	return []error{ErrInternalInconsistency, e.Err}
}

// Option configures a Comparator.
type Option func(*Comparator)

// WithSolvers replaces the default pair (flow.BFS, flow.Blocking).
// Empty lists are ignored.
func WithSolvers(solvers ...flow.Solver) Option {
	return func(c *Comparator) {
		if len(solvers) > 0 {
			c.solvers = append([]flow.Solver(nil), solvers...)
		}
	}
}

// WithParallel runs the solvers concurrently, each on its own matrix copy.
func WithParallel(parallel bool) Option {
	return func(c *Comparator) { c.parallel = parallel }
}

// WithVerifyConservation additionally checks every solver's flow with
// flow.CheckConservation.
func WithVerifyConservation(verify bool) Option {
	return func(c *Comparator) { c.verify = verify }
}

// WithLogger sets the destination for comparison logs.
func WithLogger(log *logrus.Entry) Option {
	return func(c *Comparator) {
		if log != nil {
			c.log = log
		}
	}
}

// WithMetrics records solve metrics into m.
func WithMetrics(m *metrics.Collectors) Option {
	return func(c *Comparator) { c.metrics = m }
}

// WithFlowOptions sets the options passed to every solver.
func WithFlowOptions(opts flow.FlowOptions) Option {
	return func(c *Comparator) { c.flowOpts = opts }
}
