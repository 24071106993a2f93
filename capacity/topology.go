// SPDX-License-Identifier: MIT

package capacity

import "fmt"

// TrafficVertices is the vertex count of the traffic topology.
const TrafficVertices = 9

// TrafficLabels names the traffic topology's vertices; A is the source and
// T the sink.
var TrafficLabels = [TrafficVertices]string{"A", "B", "C", "D", "E", "F", "G", "H", "T"}

// TrafficArcs is the fixed shape of the traffic network: a source fanning
// out to three junctions, two middle layers, and a sink.
//
//	A → {B, C, D}
//	B → {E, F}   C → {E, F}   D → {F}
//	E → {G, H}   F → {H}
//	G → T        H → T
var TrafficArcs = [...][2]int{
	{0, 1}, {0, 2}, {0, 3},
	{1, 4}, {1, 5},
	{2, 4}, {2, 5},
	{3, 5},
	{4, 6}, {4, 7},
	{5, 7},
	{6, 8},
	{7, 8},
}

// TrafficTopology fills the traffic network with caps, given in TrafficArcs
// order. Capacities are supplied by the caller; this package generates none.
// A caps slice of any other length than len(TrafficArcs) is rejected with
// ReasonTrafficArity.
func TrafficTopology(caps []int64) (Matrix, error) {
	if len(caps) != len(TrafficArcs) {
		return nil, invalid(ReasonTrafficArity, -1, -1, int64(len(caps)))
	}
	arcs := make([]ArcSpec, len(TrafficArcs))
	for i, uv := range TrafficArcs {
		arcs[i] = ArcSpec{From: uv[0], To: uv[1], Cap: caps[i]}
	}

	return FromArcs(TrafficVertices, arcs)
}

// Label returns the traffic label of vertex v when the matrix has the
// traffic topology's size, and the decimal index otherwise.
func Label(n, v int) string {
	if n == TrafficVertices && v >= 0 && v < n {
		return TrafficLabels[v]
	}

	return fmt.Sprint(v)
}
