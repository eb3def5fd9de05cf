// Package molmatch is an in-memory toolkit for substructure matching and
// force-field atom typing, from pattern parsing to rendered depictions.
//
// 🚀 What is molmatch?
//
//	A library and CLI that bring together:
//		• Pattern language: a SMARTS dialect with element, degree, ring and
//		  label predicates, boolean connectives and ring closures
//		• Molecules: atoms, bonds, V2000 SDF input, fundamental-cycle prep
//		• Matching: lazy induced-subgraph search with live label predicates
//		• Typing: ordered YAML rule sets, override resolution, worker pools
//		• Depiction: PNG rendering with matched or typed atoms highlighted
//
// ✨ Why choose molmatch?
//
//   - Deterministic – insertion-ordered graphs make every enumeration and
//     every cycle basis reproducible run to run
//   - Lazy – matches stream one root atom at a time; label grants published
//     between pulls are visible to the rest of the enumeration
//   - Explicit errors – sentinel errors per package, wrapped with context
//
// Under the hood, everything is organized under focused subpackages:
//
//	graph/  — generic insertion-ordered undirected graphs + cycle basis
//	iso/    — lazy induced-subgraph embedding enumeration
//	smarts/ — the pattern parser and its syntax tree
//	mol/    — topologies, elements, label sets, SDF reading, preparation
//	match/  — compiled patterns and match enumeration
//	typer/  — rule sets, YAML loading, the typing pass
//	render/ — PNG depictions of matches and typings
//
// Quick ASCII example:
//
//	    C───C        pattern "[C;R3]" matches all three ring
//	     \ /         carbons of cyclopropane and none of a
//	      C          three-carbon chain.
//
// The moltype command (cmd/moltype) wires the pieces into a one-shot tool:
// match, type, render.
//
//	go get github.com/katalvlaran/molmatch
package molmatch
