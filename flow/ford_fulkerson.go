// SPDX-License-Identifier: MIT

package flow

import (
	"math"
	"time"

	"github.com/katalvlaran/maxflow/capacity"
)

// FordFulkerson computes the maximum flow from source to sink using the
// Ford–Fulkerson method: any augmenting path, found by iterative DFS over a
// private residual matrix.
//
// It is kept as a third, independent reference for cross-checking the
// shortest-path and blocking-flow solvers on small networks.
//
// Steps:
//  1. Validate m and terminals; copy m into a residual matrix.
//  2. Repeat until no augmenting path:
//     a. Iteratively DFS from source; stop at the first path to the sink.
//     b. If none found, break.
//     c. Augment by the path's bottleneck.
//  3. Derive the net flow matrix.
//
// Complexity:
//
//	Time:   O(V² · F) where F = max flow value (integral capacities).
//	Memory: O(V²) for the residual matrix, O(V) for the DFS stack.
func FordFulkerson(m capacity.Matrix, source, sink int, opts FlowOptions) (Result, error) {
	start := time.Now()
	opts.normalize()

	// 1) Validate and copy
	r, err := capacity.NewResidual(m)
	if err != nil {
		return Result{}, err
	}
	if err = capacity.ValidateTerminals(m, source, sink); err != nil {
		return Result{}, err
	}

	n := len(r)
	parent := make([]int, n)
	minCap := make([]int64, n)
	stack := make([]int, 0, n)

	res := Result{Algorithm: AlgorithmFordFulkerson}
	for {
		// 2a) Iterative DFS
		for i := range parent {
			parent[i] = -1
		}
		parent[source] = source
		minCap[source] = math.MaxInt64
		stack = append(stack[:0], source)
		found := false

		for len(stack) > 0 && !found {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for v, c := range r[u] {
				if c <= 0 || parent[v] != -1 {
					continue
				}
				parent[v] = u
				minCap[v] = min(minCap[u], c)
				if v == sink {
					found = true
					break
				}
				stack = append(stack, v)
			}
		}

		// 2b) No path left
		if !found {
			break
		}

		// 2c) Augment
		delta := minCap[sink]
		for v := sink; v != source; v = parent[v] {
			r.Augment(parent[v], v, delta)
		}
		res.Value += delta
		res.Augmentations++
		opts.logAugment(AlgorithmFordFulkerson, delta, res.Value, tracePath(opts, parent, source, sink))
	}

	// 3) Net flow
	res.Phases = res.Augmentations
	res.Flow = r.NetFlow(m)
	res.Elapsed = time.Since(start)

	return res, nil
}
