// SPDX-License-Identifier: MIT

package flow

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/maxflow/capacity"
)

// Algorithm names reported in Result.Algorithm and by Solver.Name.
const (
	AlgorithmEdmondsKarp   = "edmonds-karp"
	AlgorithmDinic         = "dinic"
	AlgorithmFordFulkerson = "ford-fulkerson"
)

// ErrInvalidGraph is returned (wrapped in *InvalidGraphError) for malformed
// capacity matrices and bad terminals. It is the capacity package sentinel,
// re-exported so callers of this package need not import capacity.
var ErrInvalidGraph = capacity.ErrInvalidGraph

// InvalidGraphError is the typed validation failure.
type InvalidGraphError = capacity.InvalidGraphError

// ErrConservation is matched by every *ConservationError.
var ErrConservation = errors.New("flow: conservation violated")

// ConservationError reports a flow matrix that is not a feasible flow.
// Vertex is -1 for per-arc capacity violations, in which case Row and Col
// locate the arc.
type ConservationError struct {
	Vertex   int
	In, Out  int64
	Row, Col int
	Flow     int64
	Cap      int64
}

func (e *ConservationError) Error() string {
	if e.Vertex < 0 {
		return fmt.Sprintf("flow: conservation violated: flow %d outside [0, %d] on arc %d→%d",
			e.Flow, e.Cap, e.Row, e.Col)
	}

	return fmt.Sprintf("flow: conservation violated at vertex %d: in %d, out %d", e.Vertex, e.In, e.Out)
}

// Unwrap lets errors.Is(err, ErrConservation) succeed.
func (e *ConservationError) Unwrap() error { return ErrConservation }

// FlowOptions configures all max-flow algorithms.
//   - Logger: destination of Verbose traces; nil discards.
//   - Verbose: if true, logs each augmentation at debug level.
//   - LevelRebuildInterval: for Dinic, end a phase and rebuild the level
//     graph every N augmentations (0 = only when the phase is blocked).
//   - StopAtSinkLevel: for Dinic, stop the level BFS once every vertex at
//     the sink's distance is labelled.
type FlowOptions struct {
	Logger               *logrus.Entry
	Verbose              bool
	LevelRebuildInterval int
	StopAtSinkLevel      bool
}

// DefaultOptions returns production-safe defaults:
//   - Logger: discard
//   - Verbose: false
//   - LevelRebuildInterval: 0
//   - StopAtSinkLevel: true
func DefaultOptions() FlowOptions {
	return FlowOptions{
		Logger:          discardLogger,
		StopAtSinkLevel: true,
	}
}

// normalize fills zero values a caller may have left behind.
func (o *FlowOptions) normalize() {
	if o.Logger == nil {
		o.Logger = discardLogger
	}
	if o.LevelRebuildInterval < 0 {
		o.LevelRebuildInterval = 0
	}
}

var discardLogger = func() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return logrus.NewEntry(l)
}()

// Result is the outcome of one solve call.
//
// Flow holds the net flow of the final state: Flow[u][v] > 0 means Flow[u][v]
// units travel u→v, and at most one direction of a vertex pair is non-zero.
type Result struct {
	Algorithm     string
	Value         int64
	Augmentations int
	// Phases counts level-graph rebuilds for Dinic and equals Augmentations
	// for the augmenting-path solvers.
	Phases  int
	Elapsed time.Duration
	Flow    capacity.Matrix
}

// logAugment writes one Verbose trace line.
func (o FlowOptions) logAugment(algorithm string, pushed, total int64, path []int) {
	if !o.Verbose {
		return
	}
	fields := logrus.Fields{
		"algorithm": algorithm,
		"pushed":    pushed,
		"total":     total,
	}
	if path != nil {
		fields["path"] = path
	}
	o.Logger.WithFields(fields).Debug("augmented")
}
