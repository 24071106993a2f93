// SPDX-License-Identifier: MIT

package capacity

// Network is an edge arena: arcs[2k] is a forward arc taken from the matrix
// and arcs[2k+1] is its reverse twin, so the twin of any arc e is e^1.
// Adj[u] lists the indices of every arc leaving u (forward and reverse),
// in the order they were created.
type Network struct {
	arcs []Arc
	Adj  [][]int
}

// NewNetwork validates m and builds its edge arena. For every cell
// m[u][v] > 0 (u != v) it appends the forward arc u→v and its reverse twin
// v→u with capacity zero.
//
// Steps:
//  1. Validate(m).
//  2. Count arcs so the arena is allocated once.
//  3. Walk m row-major; append each pair and register both in Adj.
//
// Complexity: O(N² + E) time, O(N + E) memory.
func NewNetwork(m Matrix) (*Network, error) {
	if err := Validate(m); err != nil {
		return nil, err
	}
	n := len(m)
	nw := &Network{
		arcs: make([]Arc, 0, 2*m.ArcCount()),
		Adj:  make([][]int, n),
	}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			c := m[u][v]
			if c <= 0 || u == v {
				continue
			}
			id := len(nw.arcs)
			nw.arcs = append(nw.arcs,
				Arc{From: u, To: v, Cap: c, Orig: c},
				Arc{From: v, To: u, Cap: 0, Orig: 0},
			)
			nw.Adj[u] = append(nw.Adj[u], id)
			nw.Adj[v] = append(nw.Adj[v], id^1)
		}
	}

	return nw, nil
}

// Size returns the number of vertices.
func (nw *Network) Size() int { return len(nw.Adj) }

// Len returns the number of arc records, twins included.
func (nw *Network) Len() int { return len(nw.arcs) }

// Arc returns a copy of arc e.
func (nw *Network) Arc(e int) Arc { return nw.arcs[e] }

// Twin returns the index of e's reverse partner.
func Twin(e int) int { return e ^ 1 }

// To returns the head of arc e.
func (nw *Network) To(e int) int { return nw.arcs[e].To }

// Cap returns the residual capacity of arc e.
func (nw *Network) Cap(e int) int64 { return nw.arcs[e].Cap }

// Push sends f units along arc e: e loses f residual capacity and its twin
// gains exactly f. The caller guarantees 0 < f ≤ Cap(e).
func (nw *Network) Push(e int, f int64) {
	nw.arcs[e].Cap -= f
	nw.arcs[e^1].Cap += f
}

// NetFlow reconstructs the net flow matrix from the arena. The gross flow on
// a forward arc is Orig - Cap; antiparallel pairs are netted so at most one
// direction of every vertex pair carries flow.
func (nw *Network) NetFlow() Matrix {
	n := len(nw.Adj)
	gross := make([][]int64, n)
	cells := make([]int64, n*n)
	for u := range gross {
		gross[u] = cells[u*n : (u+1)*n : (u+1)*n]
	}
	for e := 0; e < len(nw.arcs); e += 2 {
		a := nw.arcs[e]
		gross[a.From][a.To] += a.Orig - a.Cap
	}
	out := make(Matrix, n)
	for u := 0; u < n; u++ {
		out[u] = make([]int64, n)
		for v := 0; v < n; v++ {
			if d := gross[u][v] - gross[v][u]; d > 0 {
				out[u][v] = d
			}
		}
	}

	return out
}
