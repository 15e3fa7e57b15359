// SPDX-License-Identifier: MIT
//
// bipartite.go: node ↔ feature projection.
//
// Contract:
//   - Vertices: every node, then feature(e) = max node id + 1 + position(e).
//   - Per incidence (e,u): u → feature(e) with π(u)·P_enter(u→e) and
//     feature(e) → u with P_exit(e→u) = γ(e,u), both dropped when
//     P_enter·P_exit < threshold or d(u) = 0.
//   - BipartiteStart = first feature id.
//
// Complexity: O(|V| + |E| + Σ|e|) time and space.

package projection

import (
	"fmt"

	"github.com/katalvlaran/hypernet/flow"
	"github.com/katalvlaran/hypernet/network"
)

// Bipartite builds the bipartite node/hyperedge representation.
func Bipartite(q *flow.Quantities, opts ...Option) (*network.Network, error) {
	o, err := prepare(q, opts)
	if err != nil {
		return nil, fmt.Errorf("Bipartite: %w", err)
	}

	n := network.New(KindBipartite.String(), network.KindBipartite)
	addNodeVertices(n, q)
	addFeatureVertices(n, q)
	start := featureStart(q)
	n.BipartiteStart = start

	for j := 0; j < q.Hypergraph().EdgeCount(); j++ {
		e := q.EdgeAt(j)
		feature := start + j
		for k, u := range e.Nodes {
			i := q.MemberAt(j, k)
			pEnter, ok := enterProb(q, j, i)
			pExit := q.GammaAt(j, k)
			if !ok || pEnter*pExit < o.Threshold {
				n.Drop() // u → feature
				n.Drop() // feature → u
				continue
			}

			if err := n.AddLink(u, feature, q.PiAt(i)*pEnter); err != nil {
				return nil, fmt.Errorf("Bipartite: hyperedge %d: %w", e.ID, err)
			}
			if err := n.AddLink(feature, u, pExit); err != nil {
				return nil, fmt.Errorf("Bipartite: hyperedge %d: %w", e.ID, err)
			}
		}
	}

	return n, nil
}
