// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Validating constructor and read-only getters.
// Policy:
//   - All validation happens once, here; queries never re-check invariants.
//   - Returned slices are fresh copies; *Edge values are shared and read-only by convention.

package core

import "fmt"

// NewGraph validates a topology and returns the immutable Graph built from it.
//
// Implementation:
//   - Stage 1: Register vertices (non-empty, unique).
//   - Stage 2: Register edges (unique non-empty ID, known endpoints, no loop,
//     positive weight, one edge per vertex pair) and derive incidence.
//   - Stage 3: Apply explicit incidence lists, if any, checking each against
//     the derived incidence.
//
// Errors are sentinels from types.go wrapped with the offending ID, so callers
// branch with errors.Is.
//
// Complexity: O(V + E + Σ|incidence|).
func NewGraph(vertexIDs []string, edges []Edge, opts ...GraphOption) (*Graph, error) {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph{
		vertices: make(map[string]*Vertex, len(vertexIDs)),
		order:    make([]string, 0, len(vertexIDs)),
		edges:    make([]*Edge, 0, len(edges)),
	}

	// Stage 1: vertices.
	var id string
	for _, id = range vertexIDs {
		if id == "" {
			return nil, ErrEmptyVertexID
		}
		if _, ok := g.vertices[id]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVertex, id)
		}
		g.vertices[id] = &Vertex{ID: id}
		g.order = append(g.order, id)
	}

	// Stage 2: edges.
	byID := make(map[string]*Edge, len(edges))
	pairs := make(map[[2]string]string, len(edges))
	for i := range edges {
		e := edges[i] // copy: the catalog never aliases caller memory
		if e.ID == "" {
			return nil, ErrDuplicateEdge
		}
		if _, ok := byID[e.ID]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateEdge, e.ID)
		}
		if _, ok := g.vertices[e.From]; !ok {
			return nil, fmt.Errorf("%w: edge %q endpoint %q", ErrVertexNotFound, e.ID, e.From)
		}
		if _, ok := g.vertices[e.To]; !ok {
			return nil, fmt.Errorf("%w: edge %q endpoint %q", ErrVertexNotFound, e.ID, e.To)
		}
		if e.From == e.To {
			return nil, fmt.Errorf("%w: edge %q", ErrLoopNotAllowed, e.ID)
		}
		if e.Weight <= 0 {
			return nil, fmt.Errorf("%w: edge %q has weight %d", ErrBadWeight, e.ID, e.Weight)
		}
		key := pairKey(e.From, e.To)
		if prev, ok := pairs[key]; ok {
			return nil, fmt.Errorf("%w: %q and %q", ErrMultiEdgeNotAllowed, prev, e.ID)
		}
		pairs[key] = e.ID

		ep := &e
		byID[e.ID] = ep
		g.edges = append(g.edges, ep)
		g.vertices[e.From].edges = append(g.vertices[e.From].edges, ep)
		g.vertices[e.To].edges = append(g.vertices[e.To].edges, ep)
	}

	// Stage 3: explicit incidence overrides the derived order.
	var (
		vid   string
		ids   []string
		err   error
		order []*Edge
	)
	for vid, ids = range cfg.incidence {
		v, ok := g.vertices[vid]
		if !ok {
			return nil, fmt.Errorf("%w: incidence for %q", ErrVertexNotFound, vid)
		}
		if order, err = checkIncidence(v, ids, byID); err != nil {
			return nil, err
		}
		v.edges = order
	}

	return g, nil
}

// checkIncidence resolves the declared edge IDs of v and verifies that they
// are exactly the edges incident to v, each listed once.
func checkIncidence(v *Vertex, ids []string, byID map[string]*Edge) ([]*Edge, error) {
	out := make([]*Edge, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, eid := range ids {
		e, ok := byID[eid]
		if !ok {
			return nil, fmt.Errorf("%w: vertex %q lists unknown edge %q", ErrIncidenceMismatch, v.ID, eid)
		}
		if !e.Touches(v.ID) {
			return nil, fmt.Errorf("%w: vertex %q lists non-incident edge %q", ErrIncidenceMismatch, v.ID, eid)
		}
		if _, dup := seen[eid]; dup {
			return nil, fmt.Errorf("%w: vertex %q lists edge %q twice", ErrIncidenceMismatch, v.ID, eid)
		}
		seen[eid] = struct{}{}
		out = append(out, e)
	}
	for _, e := range v.edges {
		if _, ok := seen[e.ID]; !ok {
			return nil, fmt.Errorf("%w: vertex %q omits incident edge %q", ErrIncidenceMismatch, v.ID, e.ID)
		}
	}

	return out, nil
}

// pairKey canonicalises an unordered vertex pair.
func pairKey(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}
	return [2]string{a, b}
}

// Vertices returns all vertex IDs in declaration order.
//
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	return append([]string(nil), g.order...)
}

// HasVertex reports whether id is a vertex of g.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.vertices[id]
	return ok
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return len(g.order) }

// Edges returns the edge catalog in declaration order.
//
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	return append([]*Edge(nil), g.edges...)
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int { return len(g.edges) }
