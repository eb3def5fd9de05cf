// Package match: lazy match enumeration.
package match

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/molmatch/graph"
	"github.com/katalvlaran/molmatch/iso"
	"github.com/katalvlaran/molmatch/mol"
	"github.com/katalvlaran/molmatch/smarts"
)

// FindMatches yields the index of each host atom that anchors the pattern,
// one per distinct root atom, in discovery order.
//
// The sequence is lazy: constraints are evaluated as embeddings are pulled,
// and label predicates read each atom's whitelist at pull time. Labels
// granted between pulls are visible to later pulls of the same sequence.
// Breaking out of the loop abandons the remaining search.
//
// A nil topology yields nothing. The topology is prepared on first use; an
// evaluation error (unknown element, unimplemented primary) ends the
// sequence with that error as the final element.
func (p *Pattern) FindMatches(t *mol.Topology) iter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		if t == nil {
			return
		}
		t.Prepare()

		host := graph.New[*mol.Atom]()
		for _, a := range t.Atoms() {
			host.AddNode(a)
		}
		for _, b := range t.Bonds() {
			_ = host.AddEdge(b.A, b.B)
		}

		compat := func(pn *smarts.Node, atom *mol.Atom) (bool, error) {
			return evalAtomExpr(pn.FirstChild(), atom)
		}

		// One embedding per root atom; later embeddings that land the root
		// on an already-reported atom are skipped.
		seen := make(map[*mol.Atom]struct{})
		for mapping, err := range iso.All(p.g, host, compat) {
			if err != nil {
				yield(0, fmt.Errorf("match: pattern %q: %w", p.smarts, err))

				return
			}
			atom := mapping[p.root]
			if _, dup := seen[atom]; dup {
				continue
			}
			seen[atom] = struct{}{}
			if !yield(atom.Index, nil) {
				return
			}
		}
	}
}
