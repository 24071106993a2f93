// SPDX-License-Identifier: MIT

// Package compare runs several max-flow solvers on the same capacity matrix
// and cross-checks them. Every solver must report the same flow value; a
// disagreement is an engine defect, surfaced as *InternalInconsistencyError
// and never resolved by picking one answer.
//
// A Report carries what a caller needs to present a round: each solver's
// flow value and wall-clock cost, plus the network's shape.
//
//	c := compare.New(compare.WithParallel(true))
//	report, err := c.Compare(ctx, m, 0, m.Size()-1)
//	if errors.Is(err, compare.ErrInternalInconsistency) {
//	    // bug: abort the round
//	}
//	fmt.Println(report.Value(), report.BFS().Elapsed, report.Blocking().Elapsed)
package compare
