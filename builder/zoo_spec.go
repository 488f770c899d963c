// SPDX-License-Identifier: MIT
// Package: zoowalk/builder
//
// zoo_spec.go - the zoo topology (data-only).
//
// Contract:
//   - zooVertices is the canonical vertex order (declaration order in core).
//   - zooEdges is the canonical edge order; edge IDs are the two endpoint
//     labels concatenated ("AB"), endpoints in label order.
//   - Lengths are meters. Do not mutate after review; Zoo copies before use.

package builder

import "github.com/lvlath/zoowalk/core"

// Enclosure labels.
const (
	A = "A"
	B = "B"
	C = "C"
	D = "D"
	E = "E"
	F = "F"
	G = "G"
	H = "H"
	I = "I"
)

// Entrance and exit of the zoo.
const (
	ZooEntry = D
	ZooExit  = F
)

// Path lengths in meters.
const (
	Short  int64 = 150
	Medium int64 = 200
	Long   int64 = 250
)

// zooVertices lists every enclosure.
var zooVertices = []string{A, B, C, D, E, F, G, H, I}

// zooEdges lists every two-way path.
var zooEdges = []core.Edge{
	edge(A, B, Medium),
	edge(A, D, Short),
	edge(B, C, Medium),
	edge(B, E, Short),
	edge(B, F, Long),
	edge(B, D, Long),
	edge(C, F, Short),
	edge(D, G, Short),
	edge(D, H, Long),
	edge(D, E, Medium),
	edge(E, H, Short),
	edge(E, F, Medium),
	edge(F, I, Short),
	edge(F, H, Long),
	edge(G, H, Medium),
	edge(H, I, Medium),
}

// edge builds a core.Edge whose ID concatenates its endpoint labels.
func edge(from, to string, meters int64) core.Edge {
	return core.Edge{ID: from + to, From: from, To: to, Weight: meters}
}

// ZooVertices returns a copy of the enclosure labels.
func ZooVertices() []string {
	return append([]string(nil), zooVertices...)
}

// ZooEdges returns a copy of the path table.
func ZooEdges() []core.Edge {
	return append([]core.Edge(nil), zooEdges...)
}
