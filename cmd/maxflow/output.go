// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/maxflow/capacity"
	"github.com/katalvlaran/maxflow/compare"
	"github.com/katalvlaran/maxflow/flow"
)

// writeReport renders one table row per solver followed by the cut arcs.
func writeReport(out io.Writer, m capacity.Matrix, report compare.Report, cut flow.Cut) error {
	var n = m.Size()
	fmt.Fprintf(out, "network: %d vertices, %d arcs, %s → %s\n",
		report.Vertices, report.Arcs, capacity.Label(n, report.Source), capacity.Label(n, report.Sink))

	var table = tablewriter.NewWriter(out)
	table.Header("Algorithm", "Max Flow", "Elapsed", "Augmentations", "Phases")
	for _, res := range report.Results {
		var name = res.Algorithm
		if name == report.Faster() && len(report.Results) > 1 {
			name += " *"
		}
		if err := table.Append([]string{
			name,
			strconv.FormatInt(res.Value, 10),
			res.Elapsed.String(),
			strconv.Itoa(res.Augmentations),
			strconv.Itoa(res.Phases),
		}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(out, "min cut: capacity %d\n", cut.Capacity)
	for _, a := range cut.Arcs {
		fmt.Fprintf(out, "  %s → %s  %d\n", capacity.Label(n, a.From), capacity.Label(n, a.To), a.Cap)
	}

	return nil
}

// metricsPrefix selects the families registered by package metrics.
const metricsPrefix = "maxflow_"

// writeMetrics writes every maxflow_* family gathered from g in the
// Prometheus text exposition format.
func writeMetrics(out io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "gathering metrics")
	}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), metricsPrefix) {
			continue
		}
		if _, err = expfmt.MetricFamilyToText(out, mf); err != nil {
			return errors.Wrapf(err, "writing %s", mf.GetName())
		}
	}

	return nil
}
