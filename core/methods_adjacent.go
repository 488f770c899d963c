// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, EdgeBetween).
// Determinism:
//   - Neighbors() keeps incidence order (declared or derived from edge order).
//   - NeighborIDs() follows the same order; a simple graph has no duplicates.

package core

import "fmt"

// Neighbors returns the edges incident to id in incidence order.
//
// The returned slice is the vertex's own backing array: it must not be
// modified. Hot loops (the walk generator) call this once per step, so it
// does not copy.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(1).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v.edges, nil
}

// NeighborIDs returns the IDs adjacent to id, in incidence order.
//
// Complexity: O(deg(id)).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(edges))
	var far string
	for _, e := range edges {
		// Other cannot fail: incidence was validated at construction.
		far, _ = e.Other(id)
		out = append(out, far)
	}

	return out, nil
}

// EdgeBetween returns the edge joining a and b.
//
// Errors:
//   - ErrVertexNotFound: if a or b is not a vertex.
//   - ErrEdgeNotFound: if they are not adjacent.
//
// Complexity: O(deg(a)).
func (g *Graph) EdgeBetween(a, b string) (*Edge, error) {
	edges, err := g.Neighbors(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, a)
	}
	if !g.HasVertex(b) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, b)
	}
	for _, e := range edges {
		if e.Touches(b) {
			return e, nil
		}
	}

	return nil, fmt.Errorf("%w: %q-%q", ErrEdgeNotFound, a, b)
}
