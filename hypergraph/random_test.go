package hypergraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypernet/hypergraph"
)

func TestRandom_Deterministic(t *testing.T) {
	a, err := hypergraph.Random(30, 20, 5, 42)
	require.NoError(t, err)
	b, err := hypergraph.Random(30, 20, 5, 42)
	require.NoError(t, err)

	assert.Equal(t, a.Edges(), b.Edges())
	assert.Equal(t, a.Weights(), b.Weights())
}

func TestRandom_Shape(t *testing.T) {
	h, err := hypergraph.Random(10, 8, 3, 7)
	require.NoError(t, err)

	assert.Equal(t, 10, h.NodeCount())
	assert.Equal(t, 8, h.EdgeCount())
	for _, e := range h.Edges() {
		assert.GreaterOrEqual(t, len(e.Nodes), 1)
		assert.LessOrEqual(t, len(e.Nodes), 3)
		assert.GreaterOrEqual(t, e.Omega, 1.0)
	}
}

func TestRandom_BadSize(t *testing.T) {
	_, err := hypergraph.Random(0, 1, 1, 1)
	require.ErrorIs(t, err, hypergraph.ErrBadSize)

	_, err = hypergraph.Random(3, 1, 0, 1)
	require.ErrorIs(t, err, hypergraph.ErrBadSize)
}
