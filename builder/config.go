// SPDX-License-Identifier: MIT
// Package: zoowalk/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • vertices         = zooVertices (A…I)
//   • edges            = zooEdges (16 paths)
//   • graphOpts        = none (incidence derived from the edge table)
//   • requireConnected = true

package builder

import "github.com/lvlath/zoowalk/core"

// builderConfig aggregates all knobs used by Zoo.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	vertices         []string
	edges            []core.Edge
	graphOpts        []core.GraphOption
	requireConnected bool
}

// newBuilderConfig constructs a config with the zoo defaults and applies all
// options in order (last wins).
// Complexity: O(len(opts)) time.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		vertices:         ZooVertices(),
		edges:            ZooEdges(),
		requireConnected: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
