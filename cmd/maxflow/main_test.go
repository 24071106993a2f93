// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxflow/capacity"
	"github.com/katalvlaran/maxflow/flow"
)

const trafficCaps = "10,10,10,4,8,9,6,10,10,10,10,10,10"

func newConfig() Config {
	return Config{Sink: -1, Guess: -1}
}

func TestDecodeNetworkMatrix(t *testing.T) {
	m, err := decodeNetwork([]byte(`
matrix:
  - [0, 3, 2]
  - [0, 0, 4]
  - [0, 0, 0]
`))
	require.NoError(t, err)

	var want = capacity.Matrix{{0, 3, 2}, {0, 0, 4}, {0, 0, 0}}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("matrix mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeNetworkArcs(t *testing.T) {
	m, err := decodeNetwork([]byte(`
vertices: 3
arcs:
  - {from: 0, to: 1, cap: 3}
  - {from: 0, to: 1, cap: 2}
  - {from: 1, to: 2, cap: 4}
  - {from: 2, to: 2, cap: 9}
`))
	require.NoError(t, err)

	var want = capacity.Matrix{{0, 5, 0}, {0, 0, 4}, {0, 0, 0}}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("matrix mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeNetworkErrors(t *testing.T) {
	for name, doc := range map[string]string{
		"empty":    ``,
		"both":     "matrix: [[0, 1], [0, 0]]\nvertices: 2\narcs: [{from: 0, to: 1, cap: 1}]",
		"unknown":  "matrix: [[0, 1], [0, 0]]\nweights: 3",
		"ragged":   "matrix: [[0, 1, 2], [0, 0]]",
		"negative": "matrix: [[0, -1], [0, 0]]",
		"range":    "vertices: 2\narcs: [{from: 0, to: 5, cap: 1}]",
	} {
		_, err := decodeNetwork([]byte(doc))
		require.Error(t, err, name)
	}

	_, err := decodeNetwork([]byte("matrix: [[0, -1], [0, 0]]"))
	require.ErrorIs(t, err, capacity.ErrInvalidGraph)
}

func TestParseTraffic(t *testing.T) {
	m, err := parseTraffic(trafficCaps)
	require.NoError(t, err)
	require.Equal(t, capacity.TrafficVertices, m.Size())
	require.Equal(t, int64(4), m[1][4])

	_, err = parseTraffic("1,2,3")
	var ige *capacity.InvalidGraphError
	require.ErrorAs(t, err, &ige)
	require.Equal(t, capacity.ReasonTrafficArity, ige.Reason)

	_, err = parseTraffic("10,10,x,4,8,9,6,10,10,10,10,10,10")
	require.ErrorContains(t, err, "traffic capacity 3")
}

func TestRunTraffic(t *testing.T) {
	var cfg = newConfig()
	cfg.Traffic = trafficCaps
	cfg.Verify = true
	cfg.Guess = 20

	var out bytes.Buffer
	require.Equal(t, exitOK, run(context.Background(), cfg, nil, &out))

	var text = out.String()
	require.Contains(t, text, "network: 9 vertices, 13 arcs, A → T")
	require.Contains(t, text, "edmonds-karp")
	require.Contains(t, text, "dinic")
	require.Contains(t, text, "min cut: capacity 20")
	require.Contains(t, text, "E → G  10")
	require.Contains(t, text, "H → T  10")
	require.True(t, strings.HasSuffix(text, "guess 20 is correct\n"))
}

func TestRunWrongGuess(t *testing.T) {
	var cfg = newConfig()
	cfg.Traffic = trafficCaps
	cfg.Parallel = true
	cfg.Guess = 19

	var out bytes.Buffer
	require.Equal(t, exitWrongGuess, run(context.Background(), cfg, nil, &out))
	require.Contains(t, out.String(), "guess 19 is wrong: maximum flow is 20")
}

func TestRunMatrixFromStdin(t *testing.T) {
	var cfg = newConfig()
	cfg.Matrix = "-"

	var out bytes.Buffer
	var in = strings.NewReader("matrix:\n  - [0, 3, 2, 0]\n  - [0, 0, 0, 2]\n  - [0, 0, 0, 3]\n  - [0, 0, 0, 0]\n")
	require.Equal(t, exitOK, run(context.Background(), cfg, in, &out))
	require.Contains(t, out.String(), "min cut: capacity 4")
}

func TestRunFailures(t *testing.T) {
	var out bytes.Buffer

	var cfg = newConfig()
	require.Equal(t, exitFailure, run(context.Background(), cfg, nil, &out))

	cfg.Matrix, cfg.Traffic = "net.yaml", trafficCaps
	require.Equal(t, exitFailure, run(context.Background(), cfg, nil, &out))

	cfg = newConfig()
	cfg.Traffic = trafficCaps
	cfg.Sink = 0
	require.Equal(t, exitFailure, run(context.Background(), cfg, nil, &out))

	cfg = newConfig()
	cfg.Matrix = "testdata/does-not-exist.yaml"
	require.Equal(t, exitFailure, run(context.Background(), cfg, nil, &out))

	require.Empty(t, out.String())
}

func TestDecodeNetworkOverflow(t *testing.T) {
	_, err := decodeNetwork([]byte("matrix: [[0, 9223372036854775807], [1, 0]]"))
	var ige *capacity.InvalidGraphError
	require.ErrorAs(t, err, &ige)
	require.Equal(t, capacity.ReasonOverflow, ige.Reason)
}

func TestSelectSolvers(t *testing.T) {
	var names = func(solvers []flow.Solver) []string {
		var out []string
		for _, s := range solvers {
			out = append(out, s.Name())
		}
		return out
	}

	solvers, err := selectSolvers(nil)
	require.NoError(t, err)
	require.Equal(t, []string{flow.AlgorithmEdmondsKarp, flow.AlgorithmDinic}, names(solvers))

	solvers, err = selectSolvers([]string{"ford-fulkerson", "dinic", "ford-fulkerson"})
	require.NoError(t, err)
	require.Equal(t, []string{flow.AlgorithmFordFulkerson, flow.AlgorithmDinic}, names(solvers))

	_, err = selectSolvers([]string{"push-relabel"})
	require.ErrorContains(t, err, `unknown solver "push-relabel"`)
}

func TestRunWithAllSolversAndMetrics(t *testing.T) {
	var cfg = newConfig()
	cfg.Traffic = trafficCaps
	cfg.Solvers = []string{"edmonds-karp", "dinic", "ford-fulkerson"}
	cfg.Metrics = true

	var out bytes.Buffer
	require.Equal(t, exitOK, run(context.Background(), cfg, nil, &out))

	var text = out.String()
	require.Contains(t, text, "ford-fulkerson")
	require.Contains(t, text, "min cut: capacity 20")
	require.Contains(t, text, "# TYPE maxflow_solves_total counter")
	require.Contains(t, text, `maxflow_solves_total{algorithm="ford-fulkerson",status="ok"}`)
	require.Contains(t, text, `maxflow_last_flow_value{algorithm="dinic"} 20`)
	require.NotContains(t, text, "go_goroutines")
}

func TestRunRejectedInputCountsFailure(t *testing.T) {
	var cfg = newConfig()
	cfg.Traffic = trafficCaps
	cfg.Sink = 0
	cfg.Metrics = true
	cfg.Solvers = []string{"ford-fulkerson"}

	var out bytes.Buffer
	require.Equal(t, exitFailure, run(context.Background(), cfg, nil, &out))
	require.Empty(t, out.String())

	require.NoError(t, writeMetrics(&out, prometheus.DefaultGatherer))
	require.Contains(t, out.String(), `maxflow_solves_total{algorithm="ford-fulkerson",status="fail"}`)
}
