// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/maxflow/capacity"
)

// networkDocument is the YAML form of a network. Exactly one of Matrix or
// Arcs is set; Vertices is required with Arcs and ignored with Matrix.
//
//	matrix:
//	  - [0, 3, 2]
//	  - [0, 0, 4]
//	  - [0, 0, 0]
//
//	vertices: 3
//	arcs:
//	  - {from: 0, to: 1, cap: 3}
type networkDocument struct {
	Matrix   [][]int64          `yaml:"matrix"`
	Vertices int                `yaml:"vertices"`
	Arcs     []capacity.ArcSpec `yaml:"arcs"`
}

// readNetwork reads a network document from path, or from stdin for "-".
func readNetwork(path string, stdin io.Reader) (capacity.Matrix, error) {
	var buffer []byte
	var err error

	if path == "-" {
		buffer, err = io.ReadAll(stdin)
	} else {
		buffer, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading network")
	}

	return decodeNetwork(buffer)
}

// decodeNetwork parses a YAML network document into a validated matrix.
func decodeNetwork(buffer []byte) (capacity.Matrix, error) {
	var doc networkDocument
	if err := yaml.UnmarshalStrict(bytes.TrimSpace(buffer), &doc); err != nil {
		return nil, errors.Wrap(err, "decoding network YAML")
	}

	switch {
	case doc.Matrix != nil && doc.Arcs != nil:
		return nil, errors.New("network sets both matrix and arcs")
	case doc.Matrix != nil:
		m := capacity.Matrix(doc.Matrix)
		if err := capacity.Validate(m); err != nil {
			return nil, errors.WithMessage(err, "network matrix")
		}

		return m, nil
	case doc.Arcs != nil:
		m, err := capacity.FromArcs(doc.Vertices, doc.Arcs)
		if err != nil {
			return nil, errors.WithMessage(err, "network arcs")
		}

		return m, nil
	default:
		return nil, errors.New("network has neither matrix nor arcs")
	}
}

// parseTraffic parses a comma-separated capacity list, in
// capacity.TrafficArcs order, into the traffic topology.
func parseTraffic(list string) (capacity.Matrix, error) {
	fields := strings.Split(list, ",")
	caps := make([]int64, len(fields))
	for i, f := range fields {
		c, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "traffic capacity %d", i+1)
		}
		caps[i] = c
	}

	m, err := capacity.TrafficTopology(caps)
	if err != nil {
		return nil, errors.WithMessage(err, "traffic topology")
	}

	return m, nil
}
