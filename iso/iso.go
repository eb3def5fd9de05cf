// Package iso: backtracking embedding search.
package iso

import (
	"iter"

	"github.com/katalvlaran/molmatch/graph"
)

// All returns a lazy sequence of induced embeddings of pattern into host.
//
// compat is consulted once per candidate pair that already passed the
// structural checks; returning an error aborts the search, and the error
// is yielded with a nil mapping as the sequence's last element. An invalid
// option surfaces the same way, before any search work.
//
// A nil or empty pattern, a nil host, or a pattern larger than the host
// yields nothing. Enumeration order is deterministic given the insertion
// orders of both graphs.
func All[P, H comparable](
	pattern *graph.Graph[P],
	host *graph.Graph[H],
	compat func(P, H) (bool, error),
	opts ...Option,
) iter.Seq2[map[P]H, error] {
	return func(yield func(map[P]H, error) bool) {
		o := DefaultOptions()
		for _, opt := range opts {
			opt(&o)
		}
		if o.err != nil {
			yield(nil, o.err)

			return
		}
		if pattern == nil || host == nil {
			return
		}
		pnodes := pattern.Nodes()
		// An injective mapping needs at least as many host nodes.
		if len(pnodes) == 0 || len(pnodes) > host.NodeCount() {
			return
		}
		s := &search[P, H]{
			pattern:   pattern,
			host:      host,
			compat:    compat,
			pnodes:    pnodes,
			hnodes:    host.Nodes(),
			mapped:    make(map[P]H, len(pnodes)),
			inverse:   make(map[H]P, len(pnodes)),
			remaining: o.MaxEmbeddings,
		}
		s.extend(yield)
	}
}

// search carries the backtracking state for one enumeration.
type search[P, H comparable] struct {
	pattern *graph.Graph[P]
	host    *graph.Graph[H]
	compat  func(P, H) (bool, error)

	pnodes []P // pattern nodes, insertion order
	hnodes []H // host nodes, insertion order

	mapped  map[P]H // partial embedding
	inverse map[H]P // image→preimage, for the induced check

	// remaining counts embeddings left under the cap; 0 means no cap.
	remaining int
}

// extend grows the partial embedding by one pattern node and recurses.
// It returns false when the consumer stopped the sequence or the
// predicate failed.
func (s *search[P, H]) extend(yield func(map[P]H, error) bool) bool {
	// 1) Complete embedding: hand out a copy and continue on demand.
	if len(s.mapped) == len(s.pnodes) {
		out := make(map[P]H, len(s.mapped))
		for k, v := range s.mapped {
			out[k] = v
		}
		if !yield(out, nil) {
			return false
		}
		if s.remaining > 0 {
			s.remaining--
			if s.remaining == 0 {
				return false
			}
		}

		return true
	}

	// 2) Pick the next pattern node and its candidate host nodes.
	pn, anchor, anchored := s.next()
	var cands []H
	if anchored {
		// The image must neighbor the anchor's image.
		cands, _ = s.host.Neighbors(anchor)
	} else {
		cands = s.hnodes
	}

	pnbrs, _ := s.pattern.Neighbors(pn)
	for _, hn := range cands {
		if _, taken := s.inverse[hn]; taken {
			continue
		}
		if !s.feasible(pn, pnbrs, hn) {
			continue
		}
		ok, err := s.compat(pn, hn)
		if err != nil {
			yield(nil, err)

			return false
		}
		if !ok {
			continue
		}

		s.mapped[pn] = hn
		s.inverse[hn] = pn
		cont := s.extend(yield)
		delete(s.mapped, pn)
		delete(s.inverse, hn)
		if !cont {
			return false
		}
	}

	return true
}

// next selects the first unmapped pattern node adjacent to the mapped
// prefix, returning the host image of one mapped neighbor as the anchor.
// When no unmapped node touches the prefix (empty prefix or disconnected
// pattern), the first unmapped node is returned unanchored.
func (s *search[P, H]) next() (P, H, bool) {
	for _, pn := range s.pnodes {
		if _, ok := s.mapped[pn]; ok {
			continue
		}
		nbrs, _ := s.pattern.Neighbors(pn)
		for _, pm := range nbrs {
			if hm, ok := s.mapped[pm]; ok {
				return pn, hm, true
			}
		}
	}
	for _, pn := range s.pnodes {
		if _, ok := s.mapped[pn]; !ok {
			var zero H

			return pn, zero, false
		}
	}

	// Unreachable: extend only recurses while unmapped nodes remain.
	panic("iso: no unmapped pattern node")
}

// feasible checks the induced-embedding invariant for the candidate pair
// (pn, hn) against every already-mapped node, both edge directions:
// mapped pattern neighbors of pn must map onto host neighbors of hn, and
// mapped host neighbors of hn must be images of pattern neighbors of pn.
func (s *search[P, H]) feasible(pn P, pnbrs []P, hn H) bool {
	for _, pm := range pnbrs {
		if hm, ok := s.mapped[pm]; ok && !s.host.HasEdge(hn, hm) {
			return false
		}
	}
	hnbrs, _ := s.host.Neighbors(hn)
	for _, hm := range hnbrs {
		if pm, ok := s.inverse[hm]; ok && !s.pattern.HasEdge(pn, pm) {
			return false
		}
	}

	return true
}
