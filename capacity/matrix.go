// SPDX-License-Identifier: MIT

package capacity

import "math"

// Matrix is a dense capacity matrix: m[u][v] > 0 is an arc u→v with that
// capacity, m[u][v] == 0 means no arc. It need not be symmetric.
type Matrix [][]int64

// NewMatrix allocates an n×n zero matrix.
// Returns *InvalidGraphError if n < 2.
func NewMatrix(n int) (Matrix, error) {
	if n < 2 {
		return nil, invalid(ReasonTooSmall, -1, -1, int64(n))
	}
	// one backing array keeps the rows contiguous
	cells := make([]int64, n*n)
	m := make(Matrix, n)
	for i := range m {
		m[i] = cells[i*n : (i+1)*n : (i+1)*n]
	}

	return m, nil
}

// Validate checks that m is a well-formed capacity matrix.
//
// Order of checks: size → squareness (row by row) → cells in row-major
// order, each either negative or pushing the running capacity total past
// math.MaxInt64. The first violation wins.
//
// The total bounds every flow value, residual and vertex throughput the
// solvers compute, so a matrix that passes cannot overflow them.
//
// Complexity: O(N²).
func Validate(m Matrix) error {
	n := len(m)
	if n < 2 {
		return invalid(ReasonTooSmall, -1, -1, int64(n))
	}
	for u, row := range m {
		if len(row) != n {
			return invalid(ReasonNonSquare, u, -1, int64(len(row)))
		}
	}
	var total int64
	for u, row := range m {
		for v, c := range row {
			if c < 0 {
				return invalid(ReasonNegative, u, v, c)
			}
			if c > math.MaxInt64-total {
				return invalid(ReasonOverflow, u, v, c)
			}
			total += c
		}
	}

	return nil
}

// ValidateTerminals checks that source and sink index distinct vertices of m.
// It assumes m already passed Validate.
func ValidateTerminals(m Matrix, source, sink int) error {
	n := len(m)
	if source < 0 || source >= n {
		return invalid(ReasonTerminalRange, -1, -1, int64(source))
	}
	if sink < 0 || sink >= n {
		return invalid(ReasonTerminalRange, -1, -1, int64(sink))
	}
	if source == sink {
		return invalid(ReasonSameTerminals, -1, -1, int64(source))
	}

	return nil
}

// ValidateAll runs Validate followed by ValidateTerminals.
func ValidateAll(m Matrix, source, sink int) error {
	if err := Validate(m); err != nil {
		return err
	}

	return ValidateTerminals(m, source, sink)
}

// Size returns the number of vertices.
func (m Matrix) Size() int { return len(m) }

// At returns the capacity of u→v, or 0 when the indices are out of range.
func (m Matrix) At(u, v int) int64 {
	if u < 0 || u >= len(m) || v < 0 || v >= len(m[u]) {
		return 0
	}

	return m[u][v]
}

// Set stores capacity c on u→v.
func (m Matrix) Set(u, v int, c int64) error {
	if u < 0 || u >= len(m) || v < 0 || v >= len(m[u]) {
		return invalid(ReasonTerminalRange, u, v, c)
	}
	if c < 0 {
		return invalid(ReasonNegative, u, v, c)
	}
	m[u][v] = c

	return nil
}

// Clone returns a deep copy of m. Rows of the copy share one backing array.
func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	total := 0
	for _, row := range m {
		total += len(row)
	}
	cells := make([]int64, total)
	out := make(Matrix, len(m))
	off := 0
	for i, row := range m {
		out[i] = cells[off : off+len(row) : off+len(row)]
		copy(out[i], row)
		off += len(row)
	}

	return out
}

// Arcs lists every positive cell in row-major order.
func (m Matrix) Arcs() []ArcSpec {
	arcs := make([]ArcSpec, 0, m.ArcCount())
	for u, row := range m {
		for v, c := range row {
			if c > 0 {
				arcs = append(arcs, ArcSpec{From: u, To: v, Cap: c})
			}
		}
	}

	return arcs
}

// ArcCount returns the number of positive cells.
func (m Matrix) ArcCount() int {
	count := 0
	for _, row := range m {
		for _, c := range row {
			if c > 0 {
				count++
			}
		}
	}

	return count
}

// OutCapacity sums the capacities leaving u. For the source this bounds
// any feasible flow value from above.
func (m Matrix) OutCapacity(u int) int64 {
	if u < 0 || u >= len(m) {
		return 0
	}
	var sum int64
	for _, c := range m[u] {
		sum += c
	}

	return sum
}

// InCapacity sums the capacities entering v.
func (m Matrix) InCapacity(v int) int64 {
	var sum int64
	for _, row := range m {
		if v >= 0 && v < len(row) {
			sum += row[v]
		}
	}

	return sum
}

// FromArcs builds an n×n matrix from a list of arcs.
// Parallel arcs collapse into one cell: their capacities are summed.
// Self-loops carry no flow and are dropped. The result passes Validate.
func FromArcs(n int, arcs []ArcSpec) (Matrix, error) {
	m, err := NewMatrix(n)
	if err != nil {
		return nil, err
	}
	for _, a := range arcs {
		if a.From < 0 || a.From >= n || a.To < 0 || a.To >= n {
			return nil, invalid(ReasonTerminalRange, a.From, a.To, a.Cap)
		}
		if a.Cap < 0 {
			return nil, invalid(ReasonNegative, a.From, a.To, a.Cap)
		}
		if a.From == a.To {
			continue
		}
		if a.Cap > math.MaxInt64-m[a.From][a.To] {
			return nil, invalid(ReasonOverflow, a.From, a.To, a.Cap)
		}
		m[a.From][a.To] += a.Cap
	}
	if err = Validate(m); err != nil {
		return nil, err
	}

	return m, nil
}
