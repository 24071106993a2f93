// SPDX-License-Identifier: MIT

package flow

import (
	"github.com/katalvlaran/maxflow/capacity"
)

// CheckConservation verifies that flow is a feasible s-t flow for m:
//
//  1. every cell satisfies 0 ≤ flow[u][v] ≤ m[u][v];
//  2. every vertex other than source and sink has equal inflow and outflow.
//
// It returns the first violation as *ConservationError (matching
// ErrConservation), or *InvalidGraphError when the shapes disagree.
//
// Complexity: O(V²).
func CheckConservation(m capacity.Matrix, flow capacity.Matrix, source, sink int) error {
	if err := capacity.ValidateAll(m, source, sink); err != nil {
		return err
	}
	n := len(m)
	if len(flow) != n {
		return &InvalidGraphError{Reason: capacity.ReasonNonSquare, Row: -1, Col: -1, Value: int64(len(flow))}
	}

	in := make([]int64, n)
	out := make([]int64, n)
	for u := 0; u < n; u++ {
		if len(flow[u]) != n {
			return &InvalidGraphError{Reason: capacity.ReasonNonSquare, Row: u, Col: -1, Value: int64(len(flow[u]))}
		}
		for v := 0; v < n; v++ {
			f := flow[u][v]
			if f < 0 || f > m[u][v] {
				return &ConservationError{Vertex: -1, Row: u, Col: v, Flow: f, Cap: m[u][v]}
			}
			out[u] += f
			in[v] += f
		}
	}
	for v := 0; v < n; v++ {
		if v == source || v == sink {
			continue
		}
		if in[v] != out[v] {
			return &ConservationError{Vertex: v, In: in[v], Out: out[v], Row: -1, Col: -1}
		}
	}

	return nil
}

// NetOutflow returns the flow leaving v minus the flow entering it.
// For the source of a feasible flow this is the flow value.
func NetOutflow(flow capacity.Matrix, v int) int64 {
	var net int64
	for u := range flow {
		if v >= 0 && v < len(flow[u]) {
			net -= flow[u][v]
		}
	}
	if v >= 0 && v < len(flow) {
		for _, f := range flow[v] {
			net += f
		}
	}

	return net
}
