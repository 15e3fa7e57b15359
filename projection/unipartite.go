// SPDX-License-Identifier: MIT
//
// unipartite.go: node → node projections with the hyperedge hop collapsed.
//
// With self-links, for every hyperedge e and ordered pair (u,v) ∈ e×e:
//
//	w(u→v) += π(u) · ω(e)/d(u) · γ(e,v)/δ(e)
//
// Without self-links only u ≠ v, and the destination is re-normalized over
// the other members:
//
//	w(u→v) += π(u) · ω(e)/d(u) · γ(e,v)/(δ(e) − γ(e,u))
//
// Each per-edge contribution below the threshold is dropped before it is
// accumulated. A source with d(u) = 0, or (without self-links) with
// δ(e) − γ(e,u) ≤ 0, contributes nothing for that hyperedge.
//
// The accumulator is owned by one call and emitted in (source, target) order.
//
// Complexity: O(Σ|e|²) time, O(#distinct pairs) space.

package projection

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/hypernet/flow"
	"github.com/katalvlaran/hypernet/network"
)

// pair keys the unipartite accumulator by (source id, target id).
type pair struct {
	source, target int
}

// UnipartiteSelfLinks builds the directed node network including self-loops.
func UnipartiteSelfLinks(q *flow.Quantities, opts ...Option) (*network.Network, error) {
	n, err := unipartite(q, opts, true)
	if err != nil {
		return nil, fmt.Errorf("UnipartiteSelfLinks: %w", err)
	}
	return n, nil
}

// Unipartite builds the directed node network without self-loops.
func Unipartite(q *flow.Quantities, opts ...Option) (*network.Network, error) {
	n, err := unipartite(q, opts, false)
	if err != nil {
		return nil, fmt.Errorf("Unipartite: %w", err)
	}
	return n, nil
}

func unipartite(q *flow.Quantities, opts []Option, selfLinks bool) (*network.Network, error) {
	o, err := prepare(q, opts)
	if err != nil {
		return nil, err
	}

	kind := KindUnipartite
	if selfLinks {
		kind = KindUnipartiteSelfLinks
	}
	n := network.New(kind.String(), network.KindLinks)
	addNodeVertices(n, q)

	acc := make(map[pair]float64)
	for j := 0; j < q.Hypergraph().EdgeCount(); j++ {
		e := q.EdgeAt(j)
		delta := q.DeltaAt(j)

		for k, u := range e.Nodes {
			i := q.MemberAt(j, k)
			pEnter, ok := enterProb(q, j, i)
			if !ok {
				continue // d(u) = 0: no outgoing flow
			}

			norm := delta
			if !selfLinks {
				norm -= q.GammaAt(j, k)
				if norm <= 0 {
					continue // no other member can receive flow
				}
			}
			source := q.PiAt(i) * pEnter / norm

			for m, v := range e.Nodes {
				if !selfLinks && m == k {
					continue
				}
				w := source * q.GammaAt(j, m)
				if w < o.Threshold {
					n.Drop()
					continue
				}
				acc[pair{source: u, target: v}] += w
			}
		}
	}

	keys := make([]pair, 0, len(acc))
	for p := range acc {
		keys = append(keys, p)
	}
	slices.SortFunc(keys, func(a, b pair) int {
		return cmp.Or(cmp.Compare(a.source, b.source), cmp.Compare(a.target, b.target))
	})
	for _, p := range keys {
		if err := n.AddLink(p.source, p.target, acc[p]); err != nil {
			return nil, err
		}
	}

	return n, nil
}
