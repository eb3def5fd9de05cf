// Package mol: topology preparation.
package mol

import "github.com/katalvlaran/molmatch/graph"

// Prepare derives the per-atom state that ring and label predicates read:
// each atom's fundamental cycles, plus fresh empty whitelists and
// blacklists.
//
// Prepare is idempotent; only the first call computes anything. Atoms or
// bonds added after that first call are not reflected in ring data, and
// late-added atoms carry no typing state. Matching calls Prepare itself,
// so a Topology handed to a matcher is prepared exactly once.
func (t *Topology) Prepare() {
	if t.prepared {
		return
	}

	// 1) Mirror the bond structure into a graph keyed by atom identity.
	g := graph.New[*Atom]()
	for _, a := range t.atoms {
		g.AddNode(a)
	}
	for _, b := range t.bonds {
		// AddBond already rejected loops and duplicates.
		_ = g.AddEdge(b.A, b.B)
	}

	// 2) Reset derived state on every atom.
	for _, a := range t.atoms {
		a.Cycles = nil
		a.Whitelist = NewLabelSet()
		a.Blacklist = NewLabelSet()
	}

	// 3) Attach each fundamental cycle to all of its member atoms.
	for _, cycle := range graph.CycleBasis(g) {
		for _, a := range cycle {
			a.Cycles = append(a.Cycles, cycle)
		}
	}

	t.prepared = true
}
