package projection_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypernet/flow"
	"github.com/katalvlaran/hypernet/hypergraph"
	"github.com/katalvlaran/hypernet/network"
)

const tol = 1e-9

// paper builds e1={1,2,3} ω=10, e2={3,4,5} ω=20 with γ(e1,3)=γ(e2,5)=2,
// plus the isolated node 6.
func paper(t *testing.T) *flow.Quantities {
	t.Helper()
	h, err := hypergraph.New(
		[]hypergraph.Node{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}, {ID: 3, Name: "c"},
			{ID: 4, Name: "d"}, {ID: 5, Name: "f"}, {ID: 6, Name: "lonely"}},
		[]hypergraph.HyperEdge{
			{ID: 1, Nodes: []int{1, 2, 3}, Omega: 10},
			{ID: 2, Nodes: []int{3, 4, 5}, Omega: 20},
		},
		[]hypergraph.Weight{{Edge: 1, Node: 3, Gamma: 2}, {Edge: 2, Node: 5, Gamma: 2}},
	)
	require.NoError(t, err)
	q, err := flow.Compute(h)
	require.NoError(t, err)
	return q
}

// pairAB builds one hyperedge {A=1, B=2} with ω=2 and default gammas.
func pairAB(t *testing.T) *flow.Quantities {
	t.Helper()
	h, err := hypergraph.New(
		[]hypergraph.Node{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}},
		[]hypergraph.HyperEdge{{ID: 1, Nodes: []int{1, 2}, Omega: 2}},
		nil,
	)
	require.NoError(t, err)
	q, err := flow.Compute(h)
	require.NoError(t, err)
	return q
}

// random builds a seeded synthetic hypergraph and its flow tables.
func random(t testing.TB, nNodes, nEdges, maxSize int, seed int64) *flow.Quantities {
	t.Helper()
	h, err := hypergraph.Random(nNodes, nEdges, maxSize, seed)
	require.NoError(t, err)
	q, err := flow.Compute(h)
	require.NoError(t, err)
	return q
}

// linkMap indexes plain links by (source, target); parallel arcs are summed.
func linkMap(n *network.Network) map[[2]int]float64 {
	out := make(map[[2]int]float64, len(n.Links))
	for _, l := range n.Links {
		out[[2]int{l.Source, l.Target}] += l.Weight
	}
	return out
}

// vertexIDs lists vertex ids in order.
func vertexIDs(n *network.Network) []int {
	ids := make([]int, len(n.Vertices))
	for i, v := range n.Vertices {
		ids[i] = v.ID
	}
	return ids
}

// zeroGamma builds e1={1,2,3} ω=1 with γ(e1,2)=0.
func zeroGamma(t *testing.T) *flow.Quantities {
	t.Helper()
	h, err := hypergraph.New(
		[]hypergraph.Node{{ID: 1}, {ID: 2}, {ID: 3}},
		[]hypergraph.HyperEdge{{ID: 1, Nodes: []int{1, 2, 3}, Omega: 1}},
		[]hypergraph.Weight{{Edge: 1, Node: 2, Gamma: 0}},
	)
	require.NoError(t, err)
	q, err := flow.Compute(h)
	require.NoError(t, err)
	return q
}
