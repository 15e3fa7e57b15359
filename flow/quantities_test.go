package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hypernet/flow"
	"github.com/katalvlaran/hypernet/hypergraph"
)

const eps = 1e-12

// QuantitiesSuite exercises Compute on the paper example and edge cases.
type QuantitiesSuite struct {
	suite.Suite
	h *hypergraph.Hypergraph
	q *flow.Quantities
}

// SetupTest builds the two-edge example: e1={a,b,c} ω=10, e2={c,d,f} ω=20,
// γ(e1,c)=2 and γ(e2,f)=2 explicit, the rest defaulted; node 6 is isolated.
func (s *QuantitiesSuite) SetupTest() {
	h, err := hypergraph.New(
		[]hypergraph.Node{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}, {ID: 3, Name: "c"},
			{ID: 4, Name: "d"}, {ID: 5, Name: "f"}, {ID: 6, Name: "lonely"}},
		[]hypergraph.HyperEdge{
			{ID: 1, Nodes: []int{1, 2, 3}, Omega: 10},
			{ID: 2, Nodes: []int{3, 4, 5}, Omega: 20},
		},
		[]hypergraph.Weight{{Edge: 1, Node: 3, Gamma: 2}, {Edge: 2, Node: 5, Gamma: 2}},
	)
	s.Require().NoError(err)
	s.h = h

	q, err := flow.Compute(h)
	s.Require().NoError(err)
	s.q = q
}

// TestDegree checks d(u) = Σ ω over incident edges.
func (s *QuantitiesSuite) TestDegree() {
	s.InDelta(10.0, s.q.Degree(1), eps)
	s.InDelta(30.0, s.q.Degree(3), eps)
	s.InDelta(20.0, s.q.Degree(5), eps)
	s.InDelta(0.0, s.q.Degree(6), eps)
}

// TestGammaDefaulting checks explicit vs. defaulted affinities.
func (s *QuantitiesSuite) TestGammaDefaulting() {
	g, ok := s.q.Gamma(1, 3)
	s.True(ok)
	s.InDelta(2.0, g, eps)
	s.True(s.q.Explicit(1, 3))

	g, ok = s.q.Gamma(1, 1)
	s.True(ok)
	s.InDelta(flow.DefaultGamma, g, eps)
	s.False(s.q.Explicit(1, 1))

	_, ok = s.q.Gamma(1, 5)
	s.False(ok, "gamma undefined off-incidence")
}

// TestDelta checks δ(e) sums the materialized gammas.
func (s *QuantitiesSuite) TestDelta() {
	s.InDelta(4.0, s.q.Delta(1), eps)
	s.InDelta(4.0, s.q.Delta(2), eps)
}

// TestPi checks π(u) = Σ ω(e)·γ(e,u).
func (s *QuantitiesSuite) TestPi() {
	s.InDelta(10.0, s.q.Pi(1), eps)
	s.InDelta(10*2+20*1.0, s.q.Pi(3), eps)
	s.InDelta(40.0, s.q.Pi(5), eps)
	s.InDelta(0.0, s.q.Pi(6), eps)
}

// TestPiEdge checks π_edge(e,u) = ω(e)·γ(e,u).
func (s *QuantitiesSuite) TestPiEdge() {
	v, ok := s.q.PiEdge(1, 3)
	s.True(ok)
	s.InDelta(20.0, v, eps)

	_, ok = s.q.PiEdge(2, 1)
	s.False(ok)
}

// TestIncidentEdges checks E(u), including the isolated node.
func (s *QuantitiesSuite) TestIncidentEdges() {
	s.Equal([]int{1, 2}, s.q.IncidentEdges(3))
	s.Equal([]int{1}, s.q.IncidentEdges(2))
	s.Empty(s.q.IncidentEdges(6))
}

// TestPositional checks positional accessors agree with id-based ones.
func (s *QuantitiesSuite) TestPositional() {
	i, _ := s.h.NodeIndex(3)
	s.InDelta(s.q.Pi(3), s.q.PiAt(i), eps)
	s.InDelta(s.q.Degree(3), s.q.DegreeAt(i), eps)
	s.Equal([]int{0, 1}, s.q.IncidentAt(i))
	s.Equal(i, s.q.MemberAt(0, 2))
	s.InDelta(2.0, s.q.GammaAt(0, 2), eps)
	s.InDelta(4.0, s.q.DeltaAt(1), eps)
}

func TestQuantitiesSuite(t *testing.T) {
	suite.Run(t, new(QuantitiesSuite))
}

func TestCompute_TwoNodeScenario(t *testing.T) {
	h, err := hypergraph.New(
		[]hypergraph.Node{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}},
		[]hypergraph.HyperEdge{{ID: 1, Nodes: []int{1, 2}, Omega: 2}},
		nil,
	)
	require.NoError(t, err)

	q, err := flow.Compute(h)
	require.NoError(t, err)
	require.InDelta(t, 2.0, q.Delta(1), eps)
	require.InDelta(t, 2.0, q.Degree(1), eps)
	require.InDelta(t, 2.0, q.Degree(2), eps)
	require.InDelta(t, 2.0, q.Pi(1), eps)
	require.InDelta(t, 2.0, q.Pi(2), eps)
}

func TestCompute_NilHypergraph(t *testing.T) {
	_, err := flow.Compute(nil)
	require.ErrorIs(t, err, flow.ErrNilHypergraph)
}

func TestCompute_DegenerateEdge(t *testing.T) {
	h, err := hypergraph.New(
		[]hypergraph.Node{{ID: 1}, {ID: 2}},
		[]hypergraph.HyperEdge{{ID: 9, Nodes: []int{1, 2}, Omega: 1}},
		[]hypergraph.Weight{{Edge: 9, Node: 1, Gamma: 0}, {Edge: 9, Node: 2, Gamma: 0}},
	)
	require.NoError(t, err)

	_, err = flow.Compute(h)
	require.ErrorIs(t, err, flow.ErrDegenerateEdge)
}

func TestCompute_NonIncidentRecordIgnored(t *testing.T) {
	h, err := hypergraph.New(
		[]hypergraph.Node{{ID: 1}, {ID: 2}, {ID: 3}},
		[]hypergraph.HyperEdge{{ID: 1, Nodes: []int{1, 2}, Omega: 1}},
		[]hypergraph.Weight{{Edge: 1, Node: 3, Gamma: 100}},
	)
	require.NoError(t, err)

	q, err := flow.Compute(h)
	require.NoError(t, err)
	require.InDelta(t, 2.0, q.Delta(1), eps)
	require.InDelta(t, 0.0, q.Pi(3), eps)
}

func TestCompute_DefaultGammaOption(t *testing.T) {
	h, err := hypergraph.New(
		[]hypergraph.Node{{ID: 1}, {ID: 2}},
		[]hypergraph.HyperEdge{{ID: 1, Nodes: []int{1, 2}, Omega: 3}},
		nil,
	)
	require.NoError(t, err)

	q, err := flow.Compute(h, flow.WithDefaultGamma(0.5))
	require.NoError(t, err)
	require.InDelta(t, 1.0, q.Delta(1), eps)
	require.InDelta(t, 1.5, q.Pi(1), eps)

	require.Panics(t, func() { flow.WithDefaultGamma(-1) })
}

func TestCompute_ZeroOmegaDegree(t *testing.T) {
	h, err := hypergraph.New(
		[]hypergraph.Node{{ID: 1}, {ID: 2}},
		[]hypergraph.HyperEdge{{ID: 1, Nodes: []int{1, 2}, Omega: 0}},
		nil,
	)
	require.NoError(t, err)

	q, err := flow.Compute(h)
	require.NoError(t, err, "zero degree is not an error")
	require.InDelta(t, 0.0, q.Degree(1), eps)
}
