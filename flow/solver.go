// SPDX-License-Identifier: MIT

package flow

import (
	"time"

	"github.com/katalvlaran/maxflow/capacity"
)

// Solver is one max-flow algorithm behind a uniform contract.
type Solver interface {
	// Name identifies the algorithm (one of the Algorithm* constants).
	Name() string
	// Solve computes the maximum flow from source to sink. It never
	// mutates m and keeps no state between calls.
	Solve(m capacity.Matrix, source, sink int, opts FlowOptions) (Result, error)
}

type solverFunc struct {
	name string
	fn   func(capacity.Matrix, int, int, FlowOptions) (Result, error)
}

func (s solverFunc) Name() string { return s.name }

func (s solverFunc) Solve(m capacity.Matrix, source, sink int, opts FlowOptions) (Result, error) {
	return s.fn(m, source, sink, opts)
}

// The available solvers.
var (
	// BFS is the shortest-augmenting-path solver (Edmonds–Karp).
	BFS Solver = solverFunc{name: AlgorithmEdmondsKarp, fn: EdmondsKarp}
	// Blocking is the level-graph blocking-flow solver (Dinic).
	Blocking Solver = solverFunc{name: AlgorithmDinic, fn: Dinic}
	// DFS is the any-augmenting-path solver (Ford–Fulkerson).
	DFS Solver = solverFunc{name: AlgorithmFordFulkerson, fn: FordFulkerson}
)

// Solvers returns the two solvers whose results must always agree:
// BFS first, Blocking second.
func Solvers() []Solver {
	return []Solver{BFS, Blocking}
}

// Lookup returns the solver registered under name.
func Lookup(name string) (Solver, bool) {
	for _, s := range []Solver{BFS, Blocking, DFS} {
		if s.Name() == name {
			return s, true
		}
	}

	return nil, false
}

// ComputeMaxFlowBFS runs EdmondsKarp with default options and returns the
// flow value and the wall-clock cost of the call.
func ComputeMaxFlowBFS(m capacity.Matrix, source, sink int) (int64, time.Duration, error) {
	res, err := EdmondsKarp(m, source, sink, DefaultOptions())
	if err != nil {
		return 0, 0, err
	}

	return res.Value, res.Elapsed, nil
}

// ComputeMaxFlowBlocking runs Dinic with default options and returns the
// flow value and the wall-clock cost of the call.
func ComputeMaxFlowBlocking(m capacity.Matrix, source, sink int) (int64, time.Duration, error) {
	res, err := Dinic(m, source, sink, DefaultOptions())
	if err != nil {
		return 0, 0, err
	}

	return res.Value, res.Elapsed, nil
}
