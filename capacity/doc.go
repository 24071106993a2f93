// SPDX-License-Identifier: MIT

// Package capacity holds the capacity model shared by every max-flow solver:
// a dense N×N matrix of non-negative integer capacities over vertices 0..N-1,
// plus builders that turn it into the private residual structures a solver
// mutates while it runs.
//
// Two residual representations are provided:
//
//	Residual: an N×N copy of the matrix, updated in place by augmenting-path
//	          solvers (Edmonds–Karp).
//	Network:  an edge arena: every arc u→v is stored next to its reverse
//	          twin v→u (capacity 0), so arc e and arc e^1 always form a pair.
//	          Blocking-flow solvers (Dinic) walk per-vertex index lists.
//
// Builders never alias the caller's matrix; each call copies.
//
// # Validation
//
// A matrix is well formed when it is square, has at least two rows, and holds
// no negative capacity. Anything else is rejected with *InvalidGraphError,
// which matches ErrInvalidGraph under errors.Is. Connectivity is not checked:
// a matrix with no source→sink path is legal and simply carries zero flow.
//
// Complexity:
//
//	Validate, Clone, NewResidual: O(N²) time and memory.
//	NewNetwork: O(N² + E) time, O(N + E) memory.
package capacity
