package hypergraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypernet/hypergraph"
)

func TestComponents(t *testing.T) {
	nodes := make([]hypergraph.Node, 7)
	for i := range nodes {
		nodes[i] = hypergraph.Node{ID: i + 1}
	}
	h, err := hypergraph.New(nodes,
		[]hypergraph.HyperEdge{
			{ID: 1, Nodes: []int{2, 3}, Omega: 1},
			{ID: 2, Nodes: []int{1, 2}, Omega: 1},
			{ID: 3, Nodes: []int{6, 5}, Omega: 1},
		},
		nil,
	)
	require.NoError(t, err)

	assert.Equal(t, [][]int{{1, 2, 3}, {4}, {5, 6}, {7}}, h.Components())
}

func TestComponents_CoversEveryNode(t *testing.T) {
	h, err := hypergraph.Random(200, 40, 4, 3)
	require.NoError(t, err)

	seen := make(map[int]bool)
	for _, comp := range h.Components() {
		require.NotEmpty(t, comp)
		for _, id := range comp {
			assert.False(t, seen[id], "node %d in two components", id)
			seen[id] = true
		}
	}
	assert.Len(t, seen, h.NodeCount())
}
