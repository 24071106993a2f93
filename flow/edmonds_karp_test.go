// SPDX-License-Identifier: MIT

package flow_test

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/maxflow/capacity"
	"github.com/katalvlaran/maxflow/flow"
)

// EdmondsKarpSuite groups tests for Edmonds–Karp.
type EdmondsKarpSuite struct {
	suite.Suite
	opts flow.FlowOptions
}

func (s *EdmondsKarpSuite) SetupTest() {
	s.opts = flow.DefaultOptions()
}

// TestSimplePath: 0→1 (cap=5) => maxFlow = 5.
func (s *EdmondsKarpSuite) TestSimplePath() {
	m := emptyMatrix(s.T(), 2)
	m[0][1] = 5

	res, err := flow.EdmondsKarp(m, 0, 1, s.opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(5), res.Value, "max flow should match single-edge capacity")
	require.Equal(s.T(), 1, res.Augmentations)
	require.Equal(s.T(), int64(5), res.Flow[0][1], "forward arc saturated")
	require.Equal(s.T(), flow.AlgorithmEdmondsKarp, res.Algorithm)
}

// TestBottleneckChain: A→B→T with capacities 10 and 5.
func (s *EdmondsKarpSuite) TestBottleneckChain() {
	m := emptyMatrix(s.T(), 9)
	m[0][1] = 10
	m[1][8] = 5

	res, err := flow.EdmondsKarp(m, 0, 8, s.opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(5), res.Value, "limited by bottleneck")
	requireFeasible(s.T(), m, res, 0, 8)
}

// TestMultiPath: two disjoint routes => flow sums them.
func (s *EdmondsKarpSuite) TestMultiPath() {
	m := emptyMatrix(s.T(), 9)
	m[0][1] = 10
	m[1][8] = 8
	m[0][2] = 10
	m[2][8] = 7

	res, err := flow.EdmondsKarp(m, 0, 8, s.opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(15), res.Value, "flow should combine both paths (8 + 7)")
	require.Equal(s.T(), 2, res.Augmentations)
}

// TestNeedsReverseArc forces an augmentation that cancels earlier flow.
//
//	0→1 (1), 0→2 (1), 1→2 (1), 1→3 (1), 2→3 (1)
//
// Any first path through 1→2 must later be undone to reach value 2.
func (s *EdmondsKarpSuite) TestNeedsReverseArc() {
	m := capacity.Matrix{
		{0, 1, 1, 0},
		{0, 0, 1, 1},
		{0, 0, 0, 1},
		{0, 0, 0, 0},
	}
	res, err := flow.EdmondsKarp(m, 0, 3, s.opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), res.Value)
	requireFeasible(s.T(), m, res, 0, 3)
}

// TestCustomTerminals solves between interior vertices.
func (s *EdmondsKarpSuite) TestCustomTerminals() {
	m := layeredMatrix(s.T(), layeredCaps)

	res, err := flow.EdmondsKarp(m, 1, 7, s.opts)
	require.NoError(s.T(), err)
	// 1→4 (4) then 4→7; 1→5 (8) then 5→7 (10): 4 + 8
	require.Equal(s.T(), int64(12), res.Value)
	requireFeasible(s.T(), m, res, 1, 7)
}

// TestNegativeCapacity yields InvalidGraphError.
func (s *EdmondsKarpSuite) TestNegativeCapacity() {
	m := capacity.Matrix{{0, -1}, {0, 0}}

	_, err := flow.EdmondsKarp(m, 0, 1, s.opts)
	var ige *flow.InvalidGraphError
	require.Error(s.T(), err)
	require.True(s.T(), errors.As(err, &ige), "error must be InvalidGraphError")
	require.True(s.T(), errors.Is(err, flow.ErrInvalidGraph))
	require.Equal(s.T(), 0, ige.Row)
	require.Equal(s.T(), 1, ige.Col)
	require.Equal(s.T(), int64(-1), ige.Value)
}

// TestBadTerminals covers out-of-range and equal terminals.
func (s *EdmondsKarpSuite) TestBadTerminals() {
	m := emptyMatrix(s.T(), 3)

	_, err := flow.EdmondsKarp(m, 0, 3, s.opts)
	require.ErrorIs(s.T(), err, flow.ErrInvalidGraph)

	_, err = flow.EdmondsKarp(m, 2, 2, s.opts)
	require.ErrorIs(s.T(), err, flow.ErrInvalidGraph)
}

// TestVerboseLogsEachAugmentation checks the logrus trace.
func (s *EdmondsKarpSuite) TestVerboseLogsEachAugmentation() {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	m := emptyMatrix(s.T(), 4)
	m[0][1], m[1][3] = 3, 3
	m[0][2], m[2][3] = 2, 2

	opts := s.opts
	opts.Verbose = true
	opts.Logger = logrus.NewEntry(logger)

	res, err := flow.EdmondsKarp(m, 0, 3, opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(5), res.Value)

	entries := hook.AllEntries()
	require.Len(s.T(), entries, res.Augmentations)
	last := entries[len(entries)-1]
	require.Equal(s.T(), "augmented", last.Message)
	require.Equal(s.T(), flow.AlgorithmEdmondsKarp, last.Data["algorithm"])
	require.Equal(s.T(), int64(5), last.Data["total"])
	require.Equal(s.T(), []int{0, 2, 3}, last.Data["path"])
}

// TestZeroValueOptions runs with a zero FlowOptions (nil logger).
func (s *EdmondsKarpSuite) TestZeroValueOptions() {
	m := emptyMatrix(s.T(), 2)
	m[0][1] = 4

	res, err := flow.EdmondsKarp(m, 0, 1, flow.FlowOptions{Verbose: true})
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(4), res.Value)
}

func TestEdmondsKarpSuite(t *testing.T) {
	suite.Run(t, new(EdmondsKarpSuite))
}
