// Package render draws topologies as 2D depictions, with matched or typed
// atoms highlighted.
//
// What:
//
//	Render lays a topology out on a fixed-size canvas: bonds as lines,
//	non-carbon atoms labeled with their element symbol, and a chosen set
//	of atom indices marked with filled discs. Atom coordinates come from
//	the topology (molfile X/Y, as read from SDF); molecules carrying no
//	coordinates fall back to a deterministic circular layout.
//
// Why:
//
//	A match result is a list of atom indices; seeing those indices on the
//	structure is the fastest way to check a pattern does what its author
//	meant.
//
// Output is an image.Image (Render) or encoded PNG (RenderPNG). All
// drawing goes through github.com/fogleman/gg; without WithFontPath the
// context's built-in face is used, so rendering works with no font files
// installed.
//
// Errors:
//
//	ErrTopologyNil, ErrEmptyTopology - nothing to draw.
//	ErrOptionViolation              - an invalid functional option.
//	ErrFontLoad                     - the font file cannot be loaded.
//	mol.ErrAtomNotFound             - a highlight index outside the topology.
package render
