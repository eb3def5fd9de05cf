// Package smarts parses the SMARTS dialect used by force-field atom-typing
// rules into a navigable syntax tree.
//
// What:
//
//   - Parse: recursive-descent parser for the dialect below, producing a
//     *Node tree whose shape downstream graph construction and constraint
//     evaluation depend on.
//   - Node: syntax-tree node with parent/sibling navigation (FirstChild,
//     NextSibling, IsFirstChild, IsLastChild) and document-order Select.
//
// Dialect:
//
//	pattern   = chain
//	chain     = (atom labels* | branch)+
//	branch    = "(" chain ")"
//	atom      = "[" expr "]" | SYMBOL | "*" | "_" NAME
//	labels    = DIGITS | "%" DIGITS              ring-closure digits
//	expr      = or ( ";" or )*                   weak AND, weakest
//	or        = and ( "," and )*
//	and       = unary ( "&" unary )*
//	unary     = "!" unary | primary
//	primary   = "#" DIGITS                       atomic number
//	          | "D" DIGITS                       neighbor count
//	          | "R" DIGITS                       ring size
//	          | "r" DIGITS                       ring count
//	          | "%" NAME                         whitelist label
//	          | "$(" ... ")"                     recursive pattern, opaque
//	          | SYMBOL | "*" | "_" NAME          element symbol
//
// A chain that continues past a branch is reparented under a synthetic
// branch node, so edge construction can treat "what follows a branch list"
// and "a parenthesized branch" identically.
//
// Why:
//   - Typing rules address atoms by element, connectivity, ring membership
//     and labels granted by earlier rules; this tree is the single source
//     those predicates are compiled from.
//
// Errors:
//
//   - ErrSyntax  malformed pattern text; wrapped with byte offset context
package smarts
