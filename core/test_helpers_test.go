// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for zoowalk/core.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lvlath/zoowalk/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight1 = 1
	Weight2 = 2
	Weight3 = 3
	Weight5 = 5
)

// squareEdges returns the A-B-D-C-A square with a B-C diagonal:
//
//	A───B
//	│ ╱ │
//	C───D
func squareEdges() []core.Edge {
	return []core.Edge{
		{ID: "AB", From: VertexA, To: VertexB, Weight: Weight1},
		{ID: "BD", From: VertexB, To: VertexD, Weight: Weight2},
		{ID: "CD", From: VertexC, To: VertexD, Weight: Weight3},
		{ID: "AC", From: VertexA, To: VertexC, Weight: Weight5},
		{ID: "BC", From: VertexB, To: VertexC, Weight: Weight2},
	}
}

// mustSquare builds the square fixture or fails the test.
func mustSquare(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.NewGraph([]string{VertexA, VertexB, VertexC, VertexD}, squareEdges(), opts...)
	require.NoError(t, err, "square fixture must be valid")

	return g
}

// edgeIDs projects edges onto their IDs.
func edgeIDs(edges []*core.Edge) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.ID
	}
	return out
}
