// SPDX-License-Identifier: MIT
//
// multilayer.go: two-hyperedge memory projection.
//
// For every α, u ∈ α, β ∈ E(u) (β = α allowed), v ∈ β:
//
//	w = π_edge(α,u) · ω(β)/d(u) · γ(β,v)/δ(β)
//
// emitted as (layer α, u) → (layer β, v) unless w < threshold. Tuples are
// never merged: each (α,u,β,v) yields at most one arc.
//
// Complexity: O(Σ_α Σ_{u∈α} Σ_{β∈E(u)} |β|) time and output space.

package projection

import (
	"fmt"

	"github.com/katalvlaran/hypernet/flow"
	"github.com/katalvlaran/hypernet/network"
)

// MultilayerSelfLinks builds the multilayer network with self-links kept.
func MultilayerSelfLinks(q *flow.Quantities, opts ...Option) (*network.Network, error) {
	o, err := prepare(q, opts)
	if err != nil {
		return nil, fmt.Errorf("MultilayerSelfLinks: %w", err)
	}

	n := network.New(KindMultilayerSelfLinks.String(), network.KindMultilayer)
	addNodeVertices(n, q)

	for ja := 0; ja < q.Hypergraph().EdgeCount(); ja++ {
		alpha := q.EdgeAt(ja)
		for k, u := range alpha.Nodes {
			i := q.MemberAt(ja, k)
			d := q.DegreeAt(i)
			if d <= 0 {
				continue
			}
			piAlpha := alpha.Omega * q.GammaAt(ja, k)

			for _, jb := range q.IncidentAt(i) {
				beta := q.EdgeAt(jb)
				step := piAlpha * beta.Omega / d / q.DeltaAt(jb)

				for m, v := range beta.Nodes {
					w := step * q.GammaAt(jb, m)
					if w < o.Threshold {
						n.Drop()
						continue
					}
					if err := n.AddMultilayerLink(alpha.ID, u, beta.ID, v, w); err != nil {
						return nil, fmt.Errorf("MultilayerSelfLinks: %w", err)
					}
				}
			}
		}
	}

	return n, nil
}
