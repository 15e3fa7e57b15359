// SPDX-License-Identifier: MIT

package projection

import (
	"fmt"

	"github.com/katalvlaran/hypernet/flow"
	"github.com/katalvlaran/hypernet/network"
)

// featureNameFormat labels the synthetic vertex of a hyperedge.
const featureNameFormat = "Hyperedge %d"

// prepare validates inputs shared by every projection.
func prepare(q *flow.Quantities, opts []Option) (Options, error) {
	if q == nil {
		return Options{}, ErrNilQuantities
	}
	return resolve(opts)
}

// addNodeVertices appends every original node, isolated ones included.
func addNodeVertices(n *network.Network, q *flow.Quantities) {
	for _, v := range q.Hypergraph().Nodes() {
		n.AddVertex(v.ID, v.Name)
	}
}

// featureStart is the first synthetic vertex id: max node id + 1.
func featureStart(q *flow.Quantities) int {
	return q.Hypergraph().MaxNodeID() + 1
}

// addFeatureVertices appends one "Hyperedge <id>" vertex per hyperedge,
// numbered featureStart + edge position.
func addFeatureVertices(n *network.Network, q *flow.Quantities) {
	start := featureStart(q)
	for j := 0; j < q.Hypergraph().EdgeCount(); j++ {
		n.AddVertex(start+j, fmt.Sprintf(featureNameFormat, q.EdgeAt(j).ID))
	}
}

// enterProb returns P_enter(u→e) = ω(e)/d(u) for edge position j and node
// position i; ok is false when d(u) = 0.
func enterProb(q *flow.Quantities, j, i int) (p float64, ok bool) {
	d := q.DegreeAt(i)
	if d <= 0 {
		return 0, false
	}
	return q.EdgeAt(j).Omega / d, true
}
