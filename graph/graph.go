// Package graph: generic undirected graph with deterministic ordering.
//
// Adjacency is stored twice: a nested set map for O(1) existence checks and
// an ordered neighbor slice per node for reproducible iteration. Both are
// updated together by AddEdge.
package graph

import "errors"

// Sentinel errors for graph operations.
var (
	// ErrSelfLoop indicates an edge whose endpoints are the same node.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")

	// ErrVertexNotFound indicates an operation referenced a non-existent node.
	ErrVertexNotFound = errors.New("graph: vertex not found")
)

// Graph is a simple undirected graph over comparable keys.
//
// Node order is insertion order; neighbor order is edge-insertion order.
// The zero value is not usable; construct with New.
type Graph[K comparable] struct {
	// order lists nodes in insertion order.
	order []K

	// adj[u][v] exists iff edge {u,v} exists.
	adj map[K]map[K]struct{}

	// nbrs[u] lists u's neighbors in edge-insertion order.
	nbrs map[K][]K

	// edges counts distinct undirected edges.
	edges int
}

// New creates an empty Graph.
// Complexity: O(1)
func New[K comparable]() *Graph[K] {
	return &Graph[K]{
		adj:  make(map[K]map[K]struct{}),
		nbrs: make(map[K][]K),
	}
}

// AddNode inserts node k. Re-adding an existing node is a no-op.
// Complexity: O(1) amortized.
func (g *Graph[K]) AddNode(k K) {
	if _, ok := g.adj[k]; ok {
		return
	}
	g.order = append(g.order, k)
	g.adj[k] = make(map[K]struct{})
}

// AddEdge inserts the undirected edge {u,v}, adding missing endpoints.
// Re-adding an existing edge is a no-op. Self-loops are rejected.
// Complexity: O(1) amortized.
func (g *Graph[K]) AddEdge(u, v K) error {
	// 1) Reject loops: neither pattern graphs nor molecules carry them.
	if u == v {
		return ErrSelfLoop
	}
	// 2) Ensure both endpoints exist (idempotent).
	g.AddNode(u)
	g.AddNode(v)
	// 3) Idempotent edge insert.
	if _, ok := g.adj[u][v]; ok {
		return nil
	}
	// 4) Record both directions plus the ordered neighbor slices.
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.nbrs[u] = append(g.nbrs[u], v)
	g.nbrs[v] = append(g.nbrs[v], u)
	g.edges++

	return nil
}

// HasNode reports whether node k exists.
// Complexity: O(1).
func (g *Graph[K]) HasNode(k K) bool {
	_, ok := g.adj[k]

	return ok
}

// HasEdge reports whether the undirected edge {u,v} exists.
// Complexity: O(1).
func (g *Graph[K]) HasEdge(u, v K) bool {
	_, ok := g.adj[u][v]

	return ok
}

// Nodes returns all nodes in insertion order. The slice is a copy.
// Complexity: O(V).
func (g *Graph[K]) Nodes() []K {
	out := make([]K, len(g.order))
	copy(out, g.order)

	return out
}

// Neighbors returns k's neighbors in edge-insertion order. The slice is a copy.
// Returns ErrVertexNotFound when k is absent.
// Complexity: O(deg(k)).
func (g *Graph[K]) Neighbors(k K) ([]K, error) {
	if _, ok := g.adj[k]; !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]K, len(g.nbrs[k]))
	copy(out, g.nbrs[k])

	return out, nil
}

// Degree returns the number of edges incident to k.
// Returns ErrVertexNotFound when k is absent.
// Complexity: O(1).
func (g *Graph[K]) Degree(k K) (int, error) {
	if _, ok := g.adj[k]; !ok {
		return 0, ErrVertexNotFound
	}

	return len(g.nbrs[k]), nil
}

// NodeCount returns the number of nodes. O(1).
func (g *Graph[K]) NodeCount() int {
	return len(g.order)
}

// EdgeCount returns the number of distinct undirected edges. O(1).
func (g *Graph[K]) EdgeCount() int {
	return g.edges
}
