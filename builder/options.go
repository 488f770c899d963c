// SPDX-License-Identifier: MIT
// Package: zoowalk/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • WithEdges panics on an empty table (programmer error); Zoo itself
//     never panics.
//   • Options copy their arguments; later options override earlier ones.

package builder

import "github.com/lvlath/zoowalk/core"

// BuilderOption customizes Zoo by mutating a builderConfig before the graph
// is validated.
type BuilderOption func(*builderConfig)

// WithVertices replaces the vertex set. An empty set makes Zoo fail with
// ErrEmptyTopology.
func WithVertices(ids ...string) BuilderOption {
	cp := append([]string(nil), ids...)
	return func(c *builderConfig) {
		c.vertices = cp
	}
}

// WithEdges replaces the edge table.
// Panics when called with no edges.
func WithEdges(edges ...core.Edge) BuilderOption {
	if len(edges) == 0 {
		panic("builder: WithEdges()")
	}
	cp := append([]core.Edge(nil), edges...)
	return func(c *builderConfig) {
		c.edges = cp
	}
}

// WithIncidence declares the edge list of one vertex explicitly; it is
// forwarded to core.WithIncidence and validated there.
func WithIncidence(vertexID string, edgeIDs ...string) BuilderOption {
	opt := core.WithIncidence(vertexID, edgeIDs...)
	return func(c *builderConfig) {
		c.graphOpts = append(c.graphOpts, opt)
	}
}

// WithRequireConnected toggles the reachability check (on by default).
func WithRequireConnected(on bool) BuilderOption {
	return func(c *builderConfig) {
		c.requireConnected = on
	}
}
