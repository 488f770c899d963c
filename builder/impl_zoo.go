// SPDX-License-Identifier: MIT
// Package: zoowalk/builder
//
// impl_zoo.go - Zoo constructor.
//
// Steps:
//   1. Resolve builderConfig from options.
//   2. Reject an empty vertex set.
//   3. Validate via core.NewGraph; wrap failures with ErrConstructFailed.
//   4. Optionally reject disconnected topologies.

package builder

import "github.com/lvlath/zoowalk/core"

// Zoo builds the zoo topology, applying opts over the defaults.
//
// Errors:
//   - ErrEmptyTopology: the resolved vertex set is empty.
//   - ErrConstructFailed (wrapping a core sentinel): core rejected the data.
//   - ErrDisconnected: some vertex is unreachable and the check is on.
//
// Complexity: O(V + E).
func Zoo(opts ...BuilderOption) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	if len(cfg.vertices) == 0 {
		return nil, builderErrorf(MethodZoo, "%w", ErrEmptyTopology)
	}

	g, err := core.NewGraph(cfg.vertices, cfg.edges, cfg.graphOpts...)
	if err != nil {
		return nil, builderErrorf(MethodZoo, "%w: %w", ErrConstructFailed, err)
	}

	if cfg.requireConnected && !g.Connected() {
		reached, _ := g.Reachable(cfg.vertices[0])
		return nil, builderErrorf(MethodZoo, "%w: %d of %d vertices reachable from %q",
			ErrDisconnected, len(reached), g.VertexCount(), cfg.vertices[0])
	}

	return g, nil
}
