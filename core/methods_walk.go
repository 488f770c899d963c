// File: methods_walk.go
// Role: Queries over walks and reachability (PathDistance, Reachable, Connected).
// Determinism:
//   - Reachable() returns IDs in breadth-first discovery order, neighbors
//     expanded in incidence order.

package core

import "fmt"

// PathDistance returns the total weight of the walk path[0] → path[1] → …,
// i.e. the sum of the weights of the edges joining consecutive vertices.
// A single-vertex path has distance 0.
//
// Errors:
//   - ErrEmptyPath: if len(path) == 0.
//   - ErrVertexNotFound / ErrEdgeNotFound (wrapped with the failing step).
//
// Complexity: O(len(path)·maxdeg).
func (g *Graph) PathDistance(path []string) (int64, error) {
	if len(path) == 0 {
		return 0, ErrEmptyPath
	}
	if !g.HasVertex(path[0]) {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, path[0])
	}

	var (
		total int64
		e     *Edge
		err   error
	)
	for i := 1; i < len(path); i++ {
		if e, err = g.EdgeBetween(path[i-1], path[i]); err != nil {
			return 0, fmt.Errorf("step %d: %w", i, err)
		}
		total += e.Weight
	}

	return total, nil
}

// Reachable returns every vertex reachable from start (start included) in
// breadth-first order.
//
// Errors:
//   - ErrEmptyVertexID / ErrVertexNotFound for an invalid start.
//
// Complexity: O(V + E).
func (g *Graph) Reachable(start string) ([]string, error) {
	if _, err := g.Neighbors(start); err != nil {
		return nil, err
	}

	visited := make(map[string]bool, len(g.order))
	queue := make([]string, 0, len(g.order))
	order := make([]string, 0, len(g.order))

	visited[start] = true
	queue = append(queue, start)

	var (
		curr string
		far  string
	)
	for len(queue) > 0 {
		curr = queue[0]
		queue = queue[1:]
		order = append(order, curr)

		for _, e := range g.vertices[curr].edges {
			far, _ = e.Other(curr)
			if visited[far] {
				continue
			}
			visited[far] = true
			queue = append(queue, far)
		}
	}

	return order, nil
}

// Connected reports whether every vertex is reachable from every other.
// The empty graph is connected.
func (g *Graph) Connected() bool {
	if len(g.order) == 0 {
		return true
	}
	reached, err := g.Reachable(g.order[0])
	if err != nil {
		return false
	}

	return len(reached) == len(g.order)
}
