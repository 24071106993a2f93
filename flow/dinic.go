// SPDX-License-Identifier: MIT

package flow

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/maxflow/capacity"
)

// unreached marks a vertex the level BFS did not label.
const unreached = -1

// Dinic computes the maximum flow from source to sink using Dinic's
// algorithm (level graph + blocking flows) on a private edge arena where
// every arc is paired with its reverse twin.
//
// It returns:
//   - Result.Value: total flow value
//   - Result.Augmentations: number of successful DFS walks
//   - Result.Phases: number of level graphs built
//   - Result.Flow: net flow per arc of the final state
//   - err: *InvalidGraphError for malformed input
//
// Steps:
//  1. Validate m and terminals; build the edge arena (O(V² + E)).
//  2. Repeat until the sink is unreachable:
//     a. BFS to build the level graph: distance from source for each vertex (O(V + E)).
//     b. If sink unreachable, break.
//     c. Reset per-vertex cursors next[u] = 0.
//     d. DFS-based blocking flow: walk admissible arcs
//     (level[v] == level[u]+1, Cap > 0) from the cursor onwards; a cursor
//     only moves past an arc once that arc is exhausted or leads nowhere.
//     Each successful walk pushes its bottleneck through Network.Push.
//     Optionally end the phase every LevelRebuildInterval augmentations.
//  3. Derive the net flow matrix from the arena.
//
// Complexity:
//
//	Time:   O(V² · E) in general; O(E · √V) on unit-capacity networks.
//	Memory: O(V + E) for the arena, levels and cursors.
func Dinic(m capacity.Matrix, source, sink int, opts FlowOptions) (Result, error) {
	start := time.Now()
	opts.normalize()

	// 1) Validate and build the arena
	nw, err := capacity.NewNetwork(m)
	if err != nil {
		return Result{}, err
	}
	if err = capacity.ValidateTerminals(m, source, sink); err != nil {
		return Result{}, err
	}

	n := nw.Size()
	level := make([]int, n)
	next := make([]int, n)
	queue := make([]int, 0, n)

	res := Result{Algorithm: AlgorithmDinic}
	for {
		// 2a) Level graph
		if !buildLevels(nw, source, sink, level, queue, opts.StopAtSinkLevel) {
			break // 2b) sink unreachable
		}
		res.Phases++

		// 2c) Fresh cursors for this phase
		for i := range next {
			next[i] = 0
		}

		// 2d) Blocking flow
		pushedInPhase := 0
		for {
			pushed := blockingWalk(nw, level, next, source, sink, math.MaxInt64)
			if pushed == 0 {
				break
			}
			res.Value += pushed
			res.Augmentations++
			pushedInPhase++
			opts.logAugment(AlgorithmDinic, pushed, res.Value, nil)

			if opts.LevelRebuildInterval > 0 && pushedInPhase%opts.LevelRebuildInterval == 0 {
				break
			}
		}
		if opts.Verbose {
			opts.Logger.WithFields(logrus.Fields{
				"algorithm":     AlgorithmDinic,
				"phase":         res.Phases,
				"sinkLevel":     level[sink],
				"augmentations": pushedInPhase,
			}).Debug("phase complete")
		}
	}

	// 3) Net flow
	res.Flow = nw.NetFlow()
	res.Elapsed = time.Since(start)

	return res, nil
}

// buildLevels labels level[v] with the BFS distance from source over arcs
// with positive residual capacity; unlabelled vertices keep unreached.
// With stopAtSink the search stops expanding once it dequeues a vertex whose
// level is not below the sink's: such vertices have no admissible path to
// the sink. It reports whether the sink was labelled.
func buildLevels(nw *capacity.Network, source, sink int, level, queue []int, stopAtSink bool) bool {
	for i := range level {
		level[i] = unreached
	}
	level[source] = 0

	queue = append(queue[:0], source)
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		if stopAtSink && level[sink] != unreached && level[u] >= level[sink] {
			break
		}
		for _, e := range nw.Adj[u] {
			v := nw.To(e)
			if nw.Cap(e) > 0 && level[v] == unreached {
				level[v] = level[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return level[sink] != unreached
}

// blockingWalk pushes flow from u toward sink along admissible arcs, bounded
// by limit, and returns the amount pushed (0 when u is a dead end).
// next[u] persists across walks within a phase: it is advanced past an arc
// only when that arc cannot carry more flow to the sink.
func blockingWalk(nw *capacity.Network, level, next []int, u, sink int, limit int64) int64 {
	if u == sink {
		return limit
	}
	adj := nw.Adj[u]
	for ; next[u] < len(adj); next[u]++ {
		e := adj[next[u]]
		v := nw.To(e)
		c := nw.Cap(e)
		if c <= 0 || level[v] != level[u]+1 {
			continue
		}
		if pushed := blockingWalk(nw, level, next, v, sink, min(limit, c)); pushed > 0 {
			nw.Push(e, pushed)

			return pushed
		}
	}

	return 0
}
