// Package match: pattern compilation.
//
// A pattern graph is keyed by AST-node pointer identity: the same atom
// occurrence is the same graph node, however many edges reach it. Node
// insertion order is the document order of atoms, which fixes the root.
package match

import (
	"fmt"

	"github.com/katalvlaran/molmatch/graph"
	"github.com/katalvlaran/molmatch/smarts"
)

// Pattern is a compiled pattern: source text, syntax tree, pattern graph,
// and the designated root node.
type Pattern struct {
	smarts    string
	name      string
	overrides []string

	ast  *smarts.Node
	g    *graph.Graph[*smarts.Node]
	root *smarts.Node
}

// NewPattern parses and compiles one pattern.
//
// Compilation adds every atom as a graph node, connects chain neighbors,
// bonds each branch's first atom back to its trunk, and closes ring bonds
// between the two atoms sharing each closure digit. Malformed structure
// (ErrNoTrunk, ErrRingClosure) and syntax errors fail here; constraint
// contents are not validated until evaluation.
func NewPattern(pattern string, opts ...PatternOption) (*Pattern, error) {
	ast, err := smarts.Parse(pattern)
	if err != nil {
		return nil, fmt.Errorf("match: compile %q: %w", pattern, err)
	}

	p := &Pattern{
		smarts: pattern,
		ast:    ast,
		g:      graph.New[*smarts.Node](),
	}
	for _, opt := range opts {
		opt(p)
	}

	// 1) Nodes, in document order. The first atom is the root.
	atoms := ast.Select(smarts.KindAtom)
	for _, atom := range atoms {
		p.g.AddNode(atom)
	}
	p.root = atoms[0]

	// 2) Chain and branch edges.
	if err := p.addEdges(ast, nil); err != nil {
		return nil, fmt.Errorf("match: compile %q: %w", pattern, err)
	}

	// 3) Ring-closure edges.
	if err := p.addLabelEdges(); err != nil {
		return nil, fmt.Errorf("match: compile %q: %w", pattern, err)
	}

	return p, nil
}

// addEdges walks one level of the tree, bonding consecutive atoms and
// recursing into branches.
//
// An atom followed by a branch becomes the trunk: every following branch
// at this level bonds its first atom back to it. A branch appearing
// before any trunk exists is malformed.
func (p *Pattern) addEdges(node *smarts.Node, trunk *smarts.Node) error {
	for _, child := range node.Children {
		switch child.Kind {
		case smarts.KindAtom:
			if child.IsFirstChild() && child.Parent.Kind == smarts.KindBranch {
				if trunk == nil {
					return ErrNoTrunk
				}
				_ = p.g.AddEdge(child, trunk)
			}
			if child.IsLastChild() {
				return nil
			}
			switch next := child.NextSibling(); next.Kind {
			case smarts.KindAtom:
				_ = p.g.AddEdge(child, next)
			case smarts.KindBranch:
				trunk = child
			}
		case smarts.KindBranch:
			if err := p.addEdges(child, trunk); err != nil {
				return err
			}
		}
	}

	return nil
}

// addLabelEdges bonds the two atoms sharing each ring-closure digit.
// A label's text may carry several digits ("12"); each digit pairs
// independently across the whole pattern.
func (p *Pattern) addLabelEdges() error {
	labels := p.ast.Select(smarts.KindAtomLabel)
	if len(labels) == 0 {
		return nil
	}

	var digitOrder []byte
	atomsByDigit := make(map[byte][]*smarts.Node)
	for _, label := range labels {
		for i := 0; i < len(label.Text); i++ {
			d := label.Text[i]
			if _, ok := atomsByDigit[d]; !ok {
				digitOrder = append(digitOrder, d)
			}
			atomsByDigit[d] = append(atomsByDigit[d], label.Parent)
		}
	}

	for _, d := range digitOrder {
		atoms := atomsByDigit[d]
		if len(atoms) != 2 {
			return fmt.Errorf("%w: digit %q appears %d time(s)", ErrRingClosure, d, len(atoms))
		}
		if atoms[0] == atoms[1] {
			return fmt.Errorf("%w: digit %q closes on a single atom", ErrRingClosure, d)
		}
		_ = p.g.AddEdge(atoms[0], atoms[1])
	}

	return nil
}

// Smarts returns the source pattern text.
func (p *Pattern) Smarts() string { return p.smarts }

// Name returns the rule name, or "" when unset.
func (p *Pattern) Name() string { return p.name }

// Overrides returns the overridden rule names. The slice is a copy.
func (p *Pattern) Overrides() []string {
	return append([]string(nil), p.overrides...)
}

// AST returns the pattern's syntax tree.
func (p *Pattern) AST() *smarts.Node { return p.ast }

// Graph returns the compiled pattern graph.
func (p *Pattern) Graph() *graph.Graph[*smarts.Node] { return p.g }

// Root returns the pattern's root atom node.
func (p *Pattern) Root() *smarts.Node { return p.root }

// UsesLabels reports whether any constraint reads the whitelist. Patterns
// that do are order-dependent within a typing pass.
func (p *Pattern) UsesLabels() bool {
	return len(p.ast.Select(smarts.KindHasLabel)) > 0
}
