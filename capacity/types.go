// SPDX-License-Identifier: MIT

package capacity

import (
	"errors"
	"fmt"
)

// ErrInvalidGraph is the sentinel matched by every validation failure.
var ErrInvalidGraph = errors.New("capacity: invalid graph")

// Reasons reported by InvalidGraphError.
const (
	ReasonTooSmall      = "fewer than two vertices"
	ReasonNonSquare     = "matrix is not square"
	ReasonNegative      = "negative capacity"
	ReasonTerminalRange = "terminal out of range"
	ReasonSameTerminals = "source equals sink"
	ReasonOverflow      = "total capacity overflows int64"
	ReasonTrafficArity  = "wrong number of traffic capacities"
)

// InvalidGraphError describes why a capacity matrix was rejected.
// Row and Col are -1 when the failure is not tied to a cell.
type InvalidGraphError struct {
	Reason string
	Row    int
	Col    int
	Value  int64
}

func (e *InvalidGraphError) Error() string {
	switch {
	case e.Row < 0:
		return fmt.Sprintf("capacity: invalid graph: %s (got %d)", e.Reason, e.Value)
	case e.Col < 0:
		return fmt.Sprintf("capacity: invalid graph: %s (row %d, got %d)", e.Reason, e.Row, e.Value)
	default:
		return fmt.Sprintf("capacity: invalid graph: %s at [%d][%d]: %d", e.Reason, e.Row, e.Col, e.Value)
	}
}

// Unwrap lets errors.Is(err, ErrInvalidGraph) succeed.
func (e *InvalidGraphError) Unwrap() error { return ErrInvalidGraph }

func invalid(reason string, row, col int, value int64) error {
	return &InvalidGraphError{Reason: reason, Row: row, Col: col, Value: value}
}

// ArcSpec is one directed arc of a network, as supplied by a caller.
type ArcSpec struct {
	From int   `yaml:"from"`
	To   int   `yaml:"to"`
	Cap  int64 `yaml:"cap"`
}

// Arc is one record of a Network's edge arena.
// Cap is the residual capacity; Orig is the capacity the arc started with
// (zero for reverse twins).
type Arc struct {
	From, To int
	Cap      int64
	Orig     int64
}

// Forward reports whether the arc came from the matrix rather than being
// the synthetic reverse twin of one.
func (a Arc) Forward() bool { return a.Orig > 0 }
