// Package builder assembles the zoo topology as a validated core.Graph.
//
// The topology is fixed configuration data (zoo_spec.go): nine enclosures
// A…I, sixteen two-way paths whose lengths are drawn from {150, 200, 250}
// meters, the entrance at D and the exit at F.
//
//	A ─200─ B ─200─ C
//	│      ╱│╲      │
//	150  250 150 250 150
//	│  ╱    │    ╲  │
//	D ─200─ E ─200─ F
//	│╲      │      ╱│
//	150 250 150 250 150
//	│      ╲│╱      │
//	G ─200─ H ─200─ I
//
// Zoo(opts...) builds it. Every piece of the data is overridable through
// functional options so tests and experiments can swap parts of it:
//
//   - WithVertices(ids...)        replace the vertex set
//   - WithEdges(edges...)         replace the edge table
//   - WithIncidence(id, edges...) declare a vertex edge list explicitly
//   - WithRequireConnected(bool)  reject topologies with unreachable vertices
//
// Errors:
//
//	ErrEmptyTopology – no vertices
//	ErrDisconnected  – some vertex is unreachable (no covering walk can exist)
//	ErrConstructFailed wraps any core validation sentinel (errors.Is works on both).
package builder
