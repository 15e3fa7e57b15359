// SPDX-License-Identifier: MIT
//
// nonbacktracking.go: state-expanded bipartite projection that forbids the
// two-step loop u → e → u.
//
// State space (arena of dense integer ids, single monotone counter):
//   - state i (0 ≤ i < |V|) ↔ node at input position i;
//   - then, per hyperedge e in input order, one feature state f_k per member
//     u_k, all mapped to vertex feature(e), ids allocated consecutively.
//
// Arcs for hyperedge e with members u_1..u_m and states f_1..f_m:
//   - state(u_k) → f_k           weight π(u_k)·ω(e)/d(u_k)
//   - f_l → state(u_k), l ≠ k    weight γ(e,u_k)
// Both are dropped for destination u_k when P_enter(u_k)·P_exit(u_k) < threshold
// or d(u_k) = 0. f_k → state(u_k) is never emitted.
//
// BipartiteStart is the first feature-state id (= |V|).
//
// Complexity: O(|V| + Σ|e|²) time, O(|V| + Σ|e|²) space for the arcs.

package projection

import (
	"fmt"

	"github.com/katalvlaran/hypernet/flow"
	"github.com/katalvlaran/hypernet/network"
)

// NonBacktracking builds the non-backtracking bipartite state network.
func NonBacktracking(q *flow.Quantities, opts ...Option) (*network.Network, error) {
	o, err := prepare(q, opts)
	if err != nil {
		return nil, fmt.Errorf("NonBacktracking: %w", err)
	}
	h := q.Hypergraph()

	n := network.New(KindNonBacktracking.String(), network.KindBipartite)
	addNodeVertices(n, q)
	addFeatureVertices(n, q)

	// Fixed initial block: one state per node, id = input position.
	for i, v := range h.Nodes() {
		n.AddState(i, v.ID)
	}
	next := h.NodeCount()
	n.BipartiteStart = next

	start := featureStart(q)
	for j := 0; j < h.EdgeCount(); j++ {
		e := q.EdgeAt(j)
		feature := start + j

		// Allocate this hyperedge's feature states before emitting arcs so
		// ids stay dense even when every incidence is dropped.
		first := next
		for range e.Nodes {
			n.AddState(next, feature)
			next++
		}

		for k := range e.Nodes {
			i := q.MemberAt(j, k)
			pEnter, ok := enterProb(q, j, i)
			pExit := q.GammaAt(j, k)
			if !ok || pEnter*pExit < o.Threshold {
				for range e.Nodes { // one entering arc + (m−1) leaving arcs
					n.Drop()
				}
				continue
			}

			if err := n.AddLink(i, first+k, q.PiAt(i)*pEnter); err != nil {
				return nil, fmt.Errorf("NonBacktracking: hyperedge %d: %w", e.ID, err)
			}
			for l := range e.Nodes {
				if l == k {
					continue // no return to the node of origin
				}
				if err := n.AddLink(first+l, i, pExit); err != nil {
					return nil, fmt.Errorf("NonBacktracking: hyperedge %d: %w", e.ID, err)
				}
			}
		}
	}

	return n, nil
}
