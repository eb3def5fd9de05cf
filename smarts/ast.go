// Package smarts: syntax-tree node type and navigation.
package smarts

import "strings"

// Kind discriminates syntax-tree nodes.
type Kind uint8

// Node kinds. Structural kinds carry children; leaf kinds carry Text.
const (
	// KindPattern is the tree root; children are atoms and branches.
	KindPattern Kind = iota
	// KindAtom is one atom; first child is its constraint expression,
	// remaining children are ring-closure labels.
	KindAtom
	// KindBranch groups a parenthesized (or trailing) sub-chain.
	KindBranch
	// KindAtomLabel is a ring-closure digit run attached to an atom.
	KindAtomLabel
	// KindAtomID wraps a single bracketed primary constraint.
	KindAtomID
	// KindAtomSymbol is an element symbol, "*", or an "_"-prefixed name.
	KindAtomSymbol
	// KindNot negates its only child.
	KindNot
	// KindAnd is the "&" conjunction of its two children.
	KindAnd
	// KindWeakAnd is the ";" conjunction of its two children.
	KindWeakAnd
	// KindOr is the "," disjunction of its two children.
	KindOr
	// KindAtomicNum matches on atomic number ("#6").
	KindAtomicNum
	// KindHasLabel matches a whitelist label ("%opls_135"); Text keeps the "%".
	KindHasLabel
	// KindNeighborCount matches on bonded-neighbor count ("D2").
	KindNeighborCount
	// KindRingSize matches membership in a ring of the given size ("R5").
	KindRingSize
	// KindRingCount matches the number of rings through the atom ("r2").
	KindRingCount
	// KindMatchesString is the recursive "$(...)" form; parsed, not evaluated.
	KindMatchesString
)

// kindNames maps kinds to their rule names in the dialect grammar.
var kindNames = [...]string{
	KindPattern:       "pattern",
	KindAtom:          "atom",
	KindBranch:        "branch",
	KindAtomLabel:     "atom_label",
	KindAtomID:        "atom_id",
	KindAtomSymbol:    "atom_symbol",
	KindNot:           "not_expression",
	KindAnd:           "and_expression",
	KindWeakAnd:       "weak_and_expression",
	KindOr:            "or_expression",
	KindAtomicNum:     "atomic_num",
	KindHasLabel:      "has_label",
	KindNeighborCount: "neighbor_count",
	KindRingSize:      "ring_size",
	KindRingCount:     "ring_count",
	KindMatchesString: "matches_string",
}

// String returns the grammar rule name for k.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "unknown"
}

// Node is one syntax-tree node. Nodes are compared by pointer identity:
// the same *Node is the same syntactic occurrence, which is what pattern
// graphs key on.
type Node struct {
	// Kind discriminates the node.
	Kind Kind

	// Text is the leaf payload: digits for atomic_num / neighbor_count /
	// ring_size / ring_count / atom_label, the symbol for atom_symbol,
	// the %-prefixed name for has_label, the raw body for matches_string.
	Text string

	// Children in source order.
	Children []*Node

	// Parent is nil for the root.
	Parent *Node
}

// append attaches child to n, fixing its Parent pointer.
func (n *Node) append(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// FirstChild returns the first child, or nil for leaves.
func (n *Node) FirstChild() *Node {
	if len(n.Children) == 0 {
		return nil
	}

	return n.Children[0]
}

// childIndex returns n's position among its siblings, or -1 for the root.
func (n *Node) childIndex() int {
	if n.Parent == nil {
		return -1
	}
	for i, c := range n.Parent.Children {
		if c == n {
			return i
		}
	}

	return -1
}

// IsFirstChild reports whether n is its parent's first child.
// The root reports true.
func (n *Node) IsFirstChild() bool {
	return n.Parent == nil || n.childIndex() == 0
}

// IsLastChild reports whether n is its parent's last child.
// The root reports true.
func (n *Node) IsLastChild() bool {
	return n.Parent == nil || n.childIndex() == len(n.Parent.Children)-1
}

// NextSibling returns the sibling after n, or nil when n is last or root.
func (n *Node) NextSibling() *Node {
	idx := n.childIndex()
	if idx < 0 || idx+1 >= len(n.Parent.Children) {
		return nil
	}

	return n.Parent.Children[idx+1]
}

// Select returns every node of the given kind in n's subtree, in document
// (preorder) order. The receiver itself is included when it matches, so the
// first element for KindAtom on a pattern root is always the typed atom.
func (n *Node) Select(k Kind) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(cur *Node) {
		if cur.Kind == k {
			out = append(out, cur)
		}
		for _, c := range cur.Children {
			walk(c)
		}
	}
	walk(n)

	return out
}

// String renders the subtree as an s-expression, one form per node:
// (atom (atom_id (atomic_num 6)) (atom_label 1)). Intended for tests
// and debugging output.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)

	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	b.WriteByte('(')
	b.WriteString(n.Kind.String())
	if n.Text != "" {
		b.WriteByte(' ')
		b.WriteString(n.Text)
	}
	for _, c := range n.Children {
		b.WriteByte(' ')
		c.write(b)
	}
	b.WriteByte(')')
}
