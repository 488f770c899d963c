// Package core provides the immutable weighted Graph that every walk in
// zoowalk runs over.
//
// The Graph G = (V,E) is undirected and simple:
//
//   - Every Edge joins two distinct vertices (no self-loops).
//   - At most one Edge joins any pair of vertices (no multi-edges).
//   - Every Edge carries a strictly positive integer Weight (a distance).
//   - Edges are traversable from either endpoint; Edge.Other(id) returns the far end.
//
// A Graph is validated once by NewGraph and never mutated afterwards, so all
// queries are lock-free and safe for concurrent readers.
//
// Construction:
//
//	NewGraph(vertexIDs []string, edges []Edge, opts ...GraphOption) (*Graph, error)
//
//	– WithIncidence(vertexID, edgeIDs...)
//	    Declares the edge list of one vertex explicitly instead of deriving it.
//	    Each listed edge must exist and touch the vertex, no edge may repeat,
//	    and no incident edge may be left out; otherwise ErrIncidenceMismatch.
//
// Core Methods:
//
//	// Vertices
//	Vertices() []string                     // O(V), declaration order
//	HasVertex(id string) bool               // O(1)
//	VertexCount() int                       // O(1)
//
//	// Edges
//	Edges() []*Edge                         // O(E), declaration order
//	EdgeCount() int                         // O(1)
//	EdgeBetween(a, b string) (*Edge, error) // O(deg(a))
//
//	// Adjacency
//	Neighbors(id string) ([]*Edge, error)   // O(1), incidence order
//	NeighborIDs(id string) ([]string, error)// O(deg)
//
//	// Walks
//	PathDistance(path []string) (int64, error) // O(len(path)·deg)
//	Reachable(from string) ([]string, error)   // O(V+E), breadth-first
//	Connected() bool                           // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrDuplicateVertex     – vertex declared twice
//	ErrVertexNotFound      – missing vertex
//	ErrDuplicateEdge       – empty or repeated edge ID
//	ErrEdgeNotFound        – no edge joins the requested pair
//	ErrBadWeight           – weight ≤ 0
//	ErrLoopNotAllowed      – edge from a vertex to itself
//	ErrMultiEdgeNotAllowed – second edge between the same pair
//	ErrIncidenceMismatch   – explicit edge list disagrees with the edge set
//	ErrEmptyPath           – PathDistance on an empty path
package core
