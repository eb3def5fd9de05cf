// Package graph: cycle basis extraction.
//
// CycleBasis grows a spanning forest and emits one fundamental cycle per
// non-tree edge, walking parent pointers back to the meeting vertex. The
// basis spans the graph's cycle space; any ring in the molecule sense is a
// member or a symmetric difference of members.
package graph

// CycleBasis returns a list of fundamental cycles of g, one per non-tree
// edge of a spanning forest. Each cycle is an open vertex sequence: the
// edge closing it (last back to first) is implied, not repeated.
//
// Deterministic: roots, stack growth, and neighbor scans all follow
// insertion order. Forests yield an empty basis.
// Complexity: O(V + E) plus total output length.
func CycleBasis[K comparable](g *Graph[K]) [][]K {
	// 1) Nil graph has no cycles.
	if g == nil {
		return nil
	}

	var cycles [][]K
	// visited spans all components processed so far.
	visited := make(map[K]struct{}, len(g.order))

	// 2) One spanning tree per component, roots in insertion order.
	for _, root := range g.order {
		if _, seen := visited[root]; seen {
			continue
		}

		// pred[v] is v's parent in the spanning tree; the root points to itself.
		pred := map[K]K{root: root}
		// used[v] holds the neighbors through which v was reached or closed,
		// so each non-tree edge produces exactly one cycle.
		used := map[K]map[K]struct{}{root: {}}
		stack := []K{root}

		// 3) Depth-first growth of the spanning tree.
		for len(stack) > 0 {
			z := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			zused := used[z]

			for _, nbr := range g.nbrs[z] {
				if _, known := used[nbr]; !known {
					// 3a) Tree edge: adopt nbr into the tree.
					pred[nbr] = z
					used[nbr] = map[K]struct{}{z: {}}
					stack = append(stack, nbr)
				} else if _, closed := zused[nbr]; !closed {
					// 3b) Non-tree edge z-nbr: walk z's ancestry until it
					//     meets a vertex nbr was reached through.
					pn := used[nbr]
					cycle := []K{nbr, z}
					p := pred[z]
					for {
						if _, meet := pn[p]; meet {
							break
						}
						cycle = append(cycle, p)
						p = pred[p]
					}
					cycle = append(cycle, p)
					cycles = append(cycles, cycle)
					used[nbr][z] = struct{}{}
				}
			}
		}

		// 4) Everything adopted into this tree belongs to the component.
		for v := range pred {
			visited[v] = struct{}{}
		}
	}

	return cycles
}
