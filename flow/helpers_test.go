// SPDX-License-Identifier: MIT

package flow_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxflow/capacity"
	"github.com/katalvlaran/maxflow/flow"
)

// emptyMatrix returns an n×n zero matrix or fails the test.
func emptyMatrix(t testing.TB, n int) capacity.Matrix {
	t.Helper()
	m, err := capacity.NewMatrix(n)
	require.NoError(t, err)

	return m
}

// layeredCaps is the 9-vertex layered network used throughout the tests,
// in capacity.TrafficArcs order: 0→1:10, 0→2:10, 0→3:10, 1→4:4, 1→5:8,
// 2→4:9, 2→5:6, 3→5:10, 4→6:10, 4→7:10, 5→7:10, 6→8:10, 7→8:10.
var layeredCaps = []int64{10, 10, 10, 4, 8, 9, 6, 10, 10, 10, 10, 10, 10}

// layeredMatrix builds the traffic topology with the given capacities.
func layeredMatrix(t testing.TB, caps []int64) capacity.Matrix {
	t.Helper()
	m, err := capacity.TrafficTopology(caps)
	require.NoError(t, err)

	return m
}

// randomMatrix builds an n×n matrix where each off-diagonal cell is an arc
// with probability p and capacity uniform in [1, maxCap].
func randomMatrix(r *rand.Rand, n int, p float64, maxCap int64) capacity.Matrix {
	m := make(capacity.Matrix, n)
	for u := range m {
		m[u] = make([]int64, n)
		for v := range m[u] {
			if u != v && r.Float64() < p {
				m[u][v] = r.Int63n(maxCap) + 1
			}
		}
	}

	return m
}

// requireFeasible asserts that res is a feasible maximum flow for m:
// conservation holds, the source's net outflow equals the value, the value
// is bounded by the source's capacity, and a min cut of equal capacity exists.
func requireFeasible(t testing.TB, m capacity.Matrix, res flow.Result, source, sink int) {
	t.Helper()
	require.NoError(t, flow.CheckConservation(m, res.Flow, source, sink), "%s", res.Algorithm)
	require.Equal(t, res.Value, flow.NetOutflow(res.Flow, source), "%s: source net outflow", res.Algorithm)
	require.Equal(t, -res.Value, flow.NetOutflow(res.Flow, sink), "%s: sink net outflow", res.Algorithm)
	require.GreaterOrEqual(t, res.Value, int64(0))
	require.LessOrEqual(t, res.Value, m.OutCapacity(source))

	cut, err := flow.MinCut(m, res, source)
	require.NoError(t, err)
	require.Equal(t, res.Value, cut.Capacity, "%s: max-flow must equal min-cut", res.Algorithm)
	require.True(t, cut.Contains(source))
	require.False(t, cut.Contains(sink))
}
