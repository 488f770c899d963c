// SPDX-License-Identifier: MIT
// Package: zoowalk/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • core validation errors are wrapped together with ErrConstructFailed so
//     both the builder class and the precise core sentinel stay matchable.

package builder

import (
	"errors"
	"fmt"
)

// ErrEmptyTopology indicates a vertex set with no vertices.
var ErrEmptyTopology = errors.New("builder: empty topology")

// ErrDisconnected indicates that some vertex cannot be reached from the others,
// so no walk can ever cover the graph.
var ErrDisconnected = errors.New("builder: topology is disconnected")

// ErrConstructFailed indicates that core rejected the topology.
// The core sentinel is wrapped alongside it.
var ErrConstructFailed = errors.New("builder: construction failed")

// MethodZoo is the context token prefixed to errors returned by Zoo.
const MethodZoo = "Zoo"

// builderErrorf wraps an inner message with the given method context.
// It returns an error of the form "<Method>: <formatted message>"; %w verbs
// in format keep their wrapped sentinels visible to errors.Is.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
