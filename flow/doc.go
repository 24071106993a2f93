// SPDX-License-Identifier: MIT

// Package flow implements maximum-flow algorithms over a capacity.Matrix.
// Every call copies the matrix into private residual structures, runs to
// completion on the calling goroutine, and discards them on return; calls
// share nothing, so any number may run concurrently on the same matrix.
//
// The key algorithms offered are:
//
//   - Edmonds–Karp
//
//   - Method: breadth-first search for shortest (fewest-arc) augmenting paths
//     on an N×N residual matrix.
//
//   - Time:   O(V · E) augmentations.
//
//   - Memory: O(V²) for the residual matrix.
//
//   - Dinic
//
//   - Method: level graph construction + blocking flow via DFS with
//     per-vertex arc cursors, on an edge arena where arc e and arc e^1
//     are reverse twins.
//
//   - Time:   O(V² · E); O(E · √V) on unit-capacity networks.
//
//   - Memory: O(V + E).
//
//   - Ford–Fulkerson
//
//   - Method: depth-first search for any augmenting path.
//
//   - Time:   O(V² · F), where F is the flow value.
//
//   - Use as an independent cross-check on small inputs.
//
// Edmonds–Karp and Dinic must return the same flow value for every valid
// matrix; package compare runs both and treats a mismatch as a defect.
//
// # API
//
// FlowOptions configures all algorithms:
//
//	type FlowOptions struct {
//	    Logger               *logrus.Entry // destination of Verbose traces
//	    Verbose              bool          // log each augmentation step
//	    LevelRebuildInterval int           // Dinic only: rebuild level graph every N pushes
//	    StopAtSinkLevel      bool          // Dinic only: stop level BFS at the sink's distance
//	}
//
// The entry points share one signature and are also exposed through the
// Solver interface (BFS, Blocking, DFS):
//
//	func EdmondsKarp(m capacity.Matrix, source, sink int, opts FlowOptions) (Result, error)
//	func Dinic(m capacity.Matrix, source, sink int, opts FlowOptions) (Result, error)
//	func FordFulkerson(m capacity.Matrix, source, sink int, opts FlowOptions) (Result, error)
//
// ComputeMaxFlowBFS and ComputeMaxFlowBlocking reduce a call to the two
// numbers most callers need: flow value and elapsed wall-clock time.
//
// Result.Flow is the net flow of the final state. MinCut turns it into a
// minimum s-t cut whose capacity equals the flow value; CheckConservation
// verifies it is a feasible flow.
//
// # Errors
//
//	ErrInvalidGraph   - matrix smaller than 2×2, non-square, negative capacity,
//	                    total capacity beyond int64, or source/sink out of
//	                    range or equal (*InvalidGraphError).
//	ErrConservation   - CheckConservation found an infeasible flow (*ConservationError).
package flow
