package network_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypernet/network"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "links", network.KindLinks.String())
	assert.Equal(t, "bipartite", network.KindBipartite.String())
	assert.Equal(t, "multilayer", network.KindMultilayer.String())
	assert.Equal(t, "states", network.KindStates.String())
	assert.Equal(t, "unknown", network.Kind(42).String())
}

func TestAddLink_Validation(t *testing.T) {
	n := network.New("test", network.KindLinks)

	require.NoError(t, n.AddLink(1, 2, 0.5))
	require.ErrorIs(t, n.AddLink(1, 2, -1), network.ErrBadWeight)
	require.ErrorIs(t, n.AddLink(1, 2, math.NaN()), network.ErrBadWeight)
	require.ErrorIs(t, n.AddLink(1, 2, math.Inf(1)), network.ErrBadWeight)
	require.ErrorIs(t, n.AddMultilayerLink(1, 1, 2, 2, 1), network.ErrKindMismatch)

	assert.Equal(t, 1, n.LinkCount())
}

func TestAddMultilayerLink(t *testing.T) {
	n := network.New("ml", network.KindMultilayer)

	require.NoError(t, n.AddMultilayerLink(1, 10, 2, 20, 0.25))
	require.ErrorIs(t, n.AddLink(10, 20, 1), network.ErrKindMismatch)
	require.ErrorIs(t, n.AddMultilayerLink(1, 10, 2, 20, -0.1), network.ErrBadWeight)

	assert.Equal(t, 1, n.LinkCount())
	assert.Equal(t, network.MultilayerLink{Layer1: 1, Source: 10, Layer2: 2, Target: 20, Weight: 0.25},
		n.MultilayerLinks[0])
}

func TestStatsAndOutWeight(t *testing.T) {
	n := network.New("s", network.KindBipartite)
	n.AddVertex(1, "a")
	n.AddVertex(2, "b")
	n.AddVertex(3, "Hyperedge 1")
	n.BipartiteStart = 3
	require.NoError(t, n.AddLink(1, 3, 1.5))
	require.NoError(t, n.AddLink(2, 3, 0.5))
	require.NoError(t, n.AddLink(3, 1, 1))
	n.Drop()

	s := n.Stats()
	assert.Equal(t, network.KindBipartite, s.Kind)
	assert.Equal(t, 3, s.Vertices)
	assert.Equal(t, 3, s.Links)
	assert.Equal(t, 1, s.Dropped)
	assert.InDelta(t, 3.0, s.TotalWeight, 1e-12)

	out := n.OutWeight()
	assert.InDelta(t, 1.5, out[1], 1e-12)
	assert.InDelta(t, 1.0, out[3], 1e-12)
}

func TestSortLinks(t *testing.T) {
	n := network.New("sort", network.KindLinks)
	require.NoError(t, n.AddLink(2, 1, 1))
	require.NoError(t, n.AddLink(1, 3, 2))
	require.NoError(t, n.AddLink(1, 2, 3))
	n.SortLinks()

	assert.Equal(t, []network.Link{
		{Source: 1, Target: 2, Weight: 3},
		{Source: 1, Target: 3, Weight: 2},
		{Source: 2, Target: 1, Weight: 1},
	}, n.Links)

	m := network.New("sort", network.KindMultilayer)
	require.NoError(t, m.AddMultilayerLink(2, 1, 1, 1, 1))
	require.NoError(t, m.AddMultilayerLink(1, 1, 2, 3, 1))
	require.NoError(t, m.AddMultilayerLink(1, 1, 1, 3, 1))
	m.SortLinks()
	assert.Equal(t, 1, m.MultilayerLinks[0].Layer2)
	assert.Equal(t, 2, m.MultilayerLinks[1].Layer2)
	assert.Equal(t, 2, m.MultilayerLinks[2].Layer1)
}

func TestClone(t *testing.T) {
	n := network.New("c", network.KindStates)
	n.AddVertex(1, "a")
	n.AddState(1, 1)
	require.NoError(t, n.AddLink(1, 1, 1))

	c := n.Clone()
	c.Links[0].Weight = 9
	c.States[0].NodeID = 7

	assert.InDelta(t, 1.0, n.Links[0].Weight, 0)
	assert.Equal(t, 1, n.States[0].NodeID)
	assert.Equal(t, n.Name, c.Name)
}
