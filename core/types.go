// Package core defines the central Graph, Vertex, and Edge types together
// with the sentinel errors reported while validating a topology.
//
// This file declares Vertex, Edge, Graph, GraphOption and the sentinel errors.
// NewGraph lives in api.go.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrDuplicateVertex indicates that a vertex ID was declared more than once.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrDuplicateEdge indicates an empty or repeated edge ID.
	ErrDuplicateEdge = errors.New("core: duplicate or empty edge ID")

	// ErrEdgeNotFound indicates that no edge joins the requested vertices.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-positive edge weight.
	ErrBadWeight = errors.New("core: edge weight must be positive")

	// ErrLoopNotAllowed indicates an edge whose endpoints coincide.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same pair of vertices.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrIncidenceMismatch indicates an explicit vertex edge list that does not
	// match the edges actually incident to that vertex.
	ErrIncidenceMismatch = errors.New("core: incidence list mismatch")

	// ErrEmptyPath indicates a walk with no vertices.
	ErrEmptyPath = errors.New("core: empty path")
)

// Vertex represents a node in the graph together with its incident edges.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// edges holds the incident edges in incidence order.
	edges []*Edge
}

// Degree returns the number of edges incident to v.
func (v *Vertex) Degree() int { return len(v.edges) }

// Edge represents an undirected, weighted connection between two vertices.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From and To are the two endpoints. Orientation carries no meaning.
	From string
	To   string

	// Weight is the distance covered by traversing the edge.
	Weight int64
}

// Other returns the endpoint of e opposite to id.
// It returns ErrVertexNotFound when id is not an endpoint of e.
//
// Complexity: O(1).
func (e *Edge) Other(id string) (string, error) {
	switch id {
	case e.From:
		return e.To, nil
	case e.To:
		return e.From, nil
	default:
		return "", ErrVertexNotFound
	}
}

// Touches reports whether id is one of the endpoints of e.
func (e *Edge) Touches(id string) bool {
	return e.From == id || e.To == id
}

// GraphOption configures NewGraph before validation runs.
type GraphOption func(c *graphConfig)

// graphConfig collects construction-time options.
type graphConfig struct {
	// incidence maps a vertex ID to its explicitly declared edge IDs.
	incidence map[string][]string
}

// WithIncidence declares the edge list of vertexID explicitly.
// Later declarations for the same vertex replace earlier ones.
func WithIncidence(vertexID string, edgeIDs ...string) GraphOption {
	ids := append([]string(nil), edgeIDs...)
	return func(c *graphConfig) {
		if c.incidence == nil {
			c.incidence = make(map[string][]string)
		}
		c.incidence[vertexID] = ids
	}
}

// Graph is an immutable, validated, undirected weighted graph.
//
// vertices maps ID → Vertex; order keeps declaration order for deterministic
// iteration; edges keeps the edge catalog in declaration order.
// No field is written after NewGraph returns.
type Graph struct {
	vertices map[string]*Vertex
	order    []string
	edges    []*Edge
}
