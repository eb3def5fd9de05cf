// Package graph provides a generic, insertion-ordered, undirected graph
// used as the backbone for pattern graphs and molecule graphs.
//
// What:
//
//   - Graph[K comparable]: simple undirected graph keyed by any comparable
//     type (pattern-node pointers, atom indices). Nodes and neighbors are
//     reported in insertion order, which downstream code relies on: the
//     first node added to a pattern graph is its root, and deterministic
//     neighbor order makes match enumeration reproducible.
//   - CycleBasis: fundamental cycles of a spanning forest, one independent
//     cycle per non-tree edge, per connected component.
//
// Why:
//   - Substructure matching needs two graph flavors (AST-node-keyed pattern
//     graphs and int-keyed molecule graphs) with identical semantics; one
//     generic type serves both.
//   - Ring-membership predicates (ring size, ring count) are answered from
//     the cycle basis of the molecule graph.
//
// Concurrency:
//
//	Graph is not safe for concurrent mutation. Build it single-threaded,
//	then read it from any number of goroutines.
//
// Complexity:
//
//   - AddNode/AddEdge/HasNode/HasEdge: O(1) amortized
//   - Nodes/Neighbors: O(n) copy
//   - CycleBasis: O(V + E) per component
//
// Errors:
//
//   - ErrSelfLoop        edge endpoints are equal
//   - ErrVertexNotFound  neighbor query for an absent node
package graph
