// SPDX-License-Identifier: MIT

package flow

import (
	"github.com/katalvlaran/maxflow/capacity"
)

// Cut is an s-t cut: SourceSide[v] is true for vertices reachable from the
// source in the residual network of a maximum flow.
type Cut struct {
	SourceSide []bool
	Arcs       []capacity.ArcSpec
	Capacity   int64
}

// Contains reports whether v lies on the source side.
func (c Cut) Contains(v int) bool {
	return v >= 0 && v < len(c.SourceSide) && c.SourceSide[v]
}

// MinCut derives a minimum cut from the net flow of a solve result.
// Residual capacity is recomputed as cap[u][v] - flow[u][v] + flow[v][u];
// the source side is everything BFS reaches through positive residuals, and
// the cut arcs are the matrix arcs leaving it. For a maximum flow,
// Cut.Capacity equals Result.Value.
//
// Complexity: O(V²).
func MinCut(m capacity.Matrix, res Result, source int) (Cut, error) {
	if err := capacity.Validate(m); err != nil {
		return Cut{}, err
	}
	n := len(m)
	if len(res.Flow) != n {
		return Cut{}, &InvalidGraphError{Reason: capacity.ReasonNonSquare, Row: -1, Col: -1, Value: int64(len(res.Flow))}
	}
	if source < 0 || source >= n {
		return Cut{}, &InvalidGraphError{Reason: capacity.ReasonTerminalRange, Row: -1, Col: -1, Value: int64(source)}
	}

	side := make([]bool, n)
	side[source] = true
	queue := []int{source}
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for v := 0; v < n; v++ {
			if side[v] || u == v {
				continue
			}
			if m[u][v]-res.Flow[u][v]+res.Flow[v][u] > 0 {
				side[v] = true
				queue = append(queue, v)
			}
		}
	}

	cut := Cut{SourceSide: side}
	for u := 0; u < n; u++ {
		if !side[u] {
			continue
		}
		for v := 0; v < n; v++ {
			if !side[v] && m[u][v] > 0 {
				cut.Arcs = append(cut.Arcs, capacity.ArcSpec{From: u, To: v, Cap: m[u][v]})
				cut.Capacity += m[u][v]
			}
		}
	}

	return cut, nil
}
