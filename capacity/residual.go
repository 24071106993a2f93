// SPDX-License-Identifier: MIT

package capacity

// Residual is a mutable N×N residual-capacity matrix owned by one solve call.
type Residual [][]int64

// NewResidual validates m and returns a private copy seeded with its
// capacities. The caller's matrix is never touched afterwards.
func NewResidual(m Matrix) (Residual, error) {
	if err := Validate(m); err != nil {
		return nil, err
	}

	return Residual(m.Clone()), nil
}

// Augment moves f units of capacity from u→v to v→u.
// The caller guarantees 0 < f ≤ r[u][v].
func (r Residual) Augment(u, v int, f int64) {
	r[u][v] -= f
	r[v][u] += f
}

// NetFlow derives the net flow matrix from the original capacities:
// flow(u,v) = max(0, cap[u][v] - r[u][v]).
//
// Antiparallel arcs share one residual pair, so the difference may be
// negative on one side; only the positive side carries net flow.
func (r Residual) NetFlow(m Matrix) Matrix {
	n := len(m)
	out := make(Matrix, n)
	cells := make([]int64, n*n)
	for u := 0; u < n; u++ {
		out[u] = cells[u*n : (u+1)*n : (u+1)*n]
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			if d := m[u][v] - r[u][v]; d > 0 {
				out[u][v] = d
			}
		}
	}

	return out
}
