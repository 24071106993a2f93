// SPDX-License-Identifier: MIT

package flow

import (
	"math"
	"time"

	"github.com/katalvlaran/maxflow/capacity"
)

// EdmondsKarp computes the maximum flow from source to sink using the
// Edmonds–Karp algorithm (BFS for shortest augmenting paths) on a private
// residual-capacity matrix.
//
// It returns:
//   - Result.Value: total flow value, in [0, m.OutCapacity(source)]
//   - Result.Augmentations: number of augmenting paths applied
//   - Result.Flow: net flow per arc of the final state
//   - err: *InvalidGraphError for malformed input
//
// Steps:
//  1. Validate m and terminals; copy m into a residual matrix (O(V²)).
//  2. Repeat:
//     a. BFS from source over cells with positive residual capacity,
//     recording parent[v] and bottleneck[v] = min(bottleneck[parent], r[parent][v]).
//     The search stops as soon as the sink is labelled.
//     b. If the sink is unlabelled, stop: the flow is maximal.
//     c. Walk parent links back from the sink, moving bottleneck[sink]
//     units from r[u][v] to r[v][u].
//  3. Derive the net flow matrix from the residual copy.
//
// Complexity:
//
//	Time:   O(V · E) augmentations, each O(V²) on the matrix: O(V³ · E).
//	Memory: O(V²) for the residual matrix.
func EdmondsKarp(m capacity.Matrix, source, sink int, opts FlowOptions) (Result, error) {
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
	bottleneck := make([]int64, n)
	queue := make([]int, 0, n)

	res := Result{Algorithm: AlgorithmEdmondsKarp}
	for {
		// 2a) BFS labelling
		if !bfsAugmentingPath(r, source, sink, parent, bottleneck, queue) {
			break // 2b) sink unreachable
		}

		// 2c) Augment along the parent chain
		delta := bottleneck[sink]
		for v := sink; v != source; v = parent[v] {
			r.Augment(parent[v], v, delta)
		}
		res.Value += delta
		res.Augmentations++
		opts.logAugment(AlgorithmEdmondsKarp, delta, res.Value, tracePath(opts, parent, source, sink))
	}

	// 3) Net flow
	res.Phases = res.Augmentations
	res.Flow = r.NetFlow(m)
	res.Elapsed = time.Since(start)

	return res, nil
}

// bfsAugmentingPath labels vertices reachable from source through positive
// residual cells. parent[v] is -1 for unreached vertices and parent[source]
// is source itself. It reports whether the sink was reached; the search
// returns as soon as it is.
func bfsAugmentingPath(
	r capacity.Residual,
	source, sink int,
	parent []int,
	bottleneck []int64,
	queue []int,
) bool {
	for i := range parent {
		parent[i] = -1
	}
	parent[source] = source
	bottleneck[source] = math.MaxInt64

	queue = append(queue[:0], source)
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		row := r[u]
		for v, c := range row {
			if c <= 0 || parent[v] != -1 {
				continue
			}
			parent[v] = u
			bottleneck[v] = min(bottleneck[u], c)
			if v == sink {
				return true
			}
			queue = append(queue, v)
		}
	}

	return false
}

// tracePath rebuilds the source→sink vertex sequence for Verbose logging.
// It returns nil when tracing is off so the hot path allocates nothing.
func tracePath(opts FlowOptions, parent []int, source, sink int) []int {
	if !opts.Verbose {
		return nil
	}
	path := []int{sink}
	for v := sink; v != source; v = parent[v] {
		path = append(path, parent[v])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
