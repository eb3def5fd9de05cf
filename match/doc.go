// Package match compiles patterns into graphs and streams the molecule
// atoms that can serve as a pattern's root.
//
// What:
//
//   - Pattern: a parsed pattern, its graph (nodes are pattern-atom AST
//     nodes, edges are pattern bonds from chains, branches and
//     ring-closure labels), and the designated root node: the first atom
//     of the pattern, the one the whole pattern exists to type.
//   - FindMatches: lazy enumeration of topology atom indices onto which
//     the root can map under some induced embedding of the whole pattern
//     graph, deduplicated per call.
//
// Constraint evaluation is live: label predicates read the candidate
// atom's whitelist at pull time, so a caller that grants labels between
// pulls (the typing pass does) changes what later pulls can match. That
// order dependence is intentional; rule files rely on it.
//
// Errors:
//
// Build-time (NewPattern): syntax errors from parsing, ErrNoTrunk,
// ErrRingClosure. Evaluation-time (streamed through FindMatches):
// ErrUnknownExpr, ErrNotImplemented, and unknown-element failures from
// the mol package. Evaluation errors are never coerced to "no match".
package match
