// Package iso enumerates induced subgraph embeddings of a pattern graph
// into a host graph.
//
// What:
//
//   - All: lazy enumeration of every injective node mapping pattern→host
//     such that a caller-supplied compatibility predicate accepts each
//     pair and the mapping is induced: for every two mapped pattern
//     nodes, the pattern has an edge exactly when the host has one
//     between their images.
//
// The induced requirement is what makes ring patterns meaningful: a
// three-atom chain does not embed into a three-ring, because the ring
// closes an edge the chain forbids.
//
// Why:
//   - Substructure matching reduces to exactly this search, with atom
//     constraint evaluation plugged in as the compatibility predicate.
//
// How:
//
//	Backtracking in the VF2 style. The next pattern node is the first
//	(in insertion order) unmapped node adjacent to the mapped prefix, so
//	candidates narrow to the host neighbors of the prefix image; a
//	disconnected pattern falls back to scanning all host nodes.
//	Structural feasibility is checked before the predicate runs, and
//	every yielded mapping is a fresh copy.
//
// Stopping early is free: breaking out of the range abandons the search.
// A predicate error aborts enumeration and is yielded as the final
// element's error value.
//
// Options:
//
//   - WithMaxEmbeddings(n): cap the enumeration at n embeddings.
//
// Complexity: exponential in pattern size in the worst case; patterns
// here are small (a handful of atoms), hosts are molecule-sized.
// WithMaxEmbeddings bounds the output when that worst case threatens.
//
// Errors:
//
//   - ErrOptionViolation  invalid option value, yielded before the search
package iso
