package flow

import (
	"fmt"

	"github.com/katalvlaran/hypernet/hypergraph"
)

// incidence keys an explicit weight record.
type incidence struct {
	edge, node int
}

// Compute builds the flow tables for h.
//
// Steps:
//  1. Pass over edges: resolve member positions, collect E(u) and d(u).
//  2. Materialize γ for every incidence (explicit record or default),
//     accumulate δ(e) and π(u); reject δ(e) = 0.
//
// Duplicate weight records for one incidence: the last one wins.
// Records for non-incident pairs are never consulted.
//
// Complexity: O(|V| + Σ|e| + |W|) time and space.
func Compute(h *hypergraph.Hypergraph, opts ...Option) (*Quantities, error) {
	if h == nil {
		return nil, ErrNilHypergraph
	}
	cfg := config{defaultGamma: DefaultGamma}
	for _, opt := range opts {
		opt(&cfg)
	}

	edges := h.Edges()
	nV := h.NodeCount()
	q := &Quantities{
		h:        h,
		edges:    edges,
		incident: make([][]int, nV),
		degree:   make([]float64, nV),
		pi:       make([]float64, nV),
		delta:    make([]float64, len(edges)),
		gamma:    make([][]float64, len(edges)),
		explicit: make([][]bool, len(edges)),
		member:   make([][]int, len(edges)),
	}

	// Pass 1: incidence lists and degrees.
	for j, e := range edges {
		q.member[j] = make([]int, len(e.Nodes))
		for k, u := range e.Nodes {
			i, ok := h.NodeIndex(u)
			if !ok {
				return nil, fmt.Errorf("flow: hyperedge %d: node %d: %w", e.ID, u, hypergraph.ErrUnknownNode)
			}
			q.member[j][k] = i
			q.incident[i] = append(q.incident[i], j)
			q.degree[i] += e.Omega
		}
	}

	weights := h.Weights()
	records := make(map[incidence]float64, len(weights))
	for _, w := range weights {
		records[incidence{edge: w.Edge, node: w.Node}] = w.Gamma
	}

	// Pass 2: default gammas, deltas and stationary flow.
	for j, e := range edges {
		q.gamma[j] = make([]float64, len(e.Nodes))
		q.explicit[j] = make([]bool, len(e.Nodes))
		for k, u := range e.Nodes {
			g, ok := records[incidence{edge: e.ID, node: u}]
			if !ok {
				g = cfg.defaultGamma
			}
			q.gamma[j][k] = g
			q.explicit[j][k] = ok
			q.delta[j] += g
			q.pi[q.member[j][k]] += e.Omega * g
		}
		if q.delta[j] <= 0 {
			return nil, fmt.Errorf("flow: hyperedge %d: %w", e.ID, ErrDegenerateEdge)
		}
	}

	return q, nil
}

// Hypergraph returns the model the tables were computed from.
func (q *Quantities) Hypergraph() *hypergraph.Hypergraph { return q.h }

// Degree returns d(u) for node id u (0 for unknown ids).
func (q *Quantities) Degree(u int) float64 {
	i, ok := q.h.NodeIndex(u)
	if !ok {
		return 0
	}
	return q.degree[i]
}

// Pi returns π(u) for node id u (0 for unknown ids).
func (q *Quantities) Pi(u int) float64 {
	i, ok := q.h.NodeIndex(u)
	if !ok {
		return 0
	}
	return q.pi[i]
}

// Delta returns δ(e) for hyperedge id e (0 for unknown ids).
func (q *Quantities) Delta(e int) float64 {
	j, ok := q.h.EdgeIndex(e)
	if !ok {
		return 0
	}
	return q.delta[j]
}

// Gamma returns γ(e,u); ok is false when u is not a member of e.
func (q *Quantities) Gamma(e, u int) (float64, bool) {
	j, k, ok := q.lookup(e, u)
	if !ok {
		return 0, false
	}
	return q.gamma[j][k], true
}

// Explicit reports whether γ(e,u) came from a weight record.
func (q *Quantities) Explicit(e, u int) bool {
	j, k, ok := q.lookup(e, u)
	return ok && q.explicit[j][k]
}

// PiEdge returns π_edge(e,u) = ω(e)·γ(e,u); ok is false off-incidence.
func (q *Quantities) PiEdge(e, u int) (float64, bool) {
	j, k, ok := q.lookup(e, u)
	if !ok {
		return 0, false
	}
	return q.edges[j].Omega * q.gamma[j][k], true
}

// IncidentEdges returns the ids of hyperedges containing u in input order.
func (q *Quantities) IncidentEdges(u int) []int {
	i, ok := q.h.NodeIndex(u)
	if !ok {
		return nil
	}
	ids := make([]int, len(q.incident[i]))
	for n, j := range q.incident[i] {
		ids[n] = q.edges[j].ID
	}
	return ids
}

// lookup resolves (edge id, node id) to (edge pos, member pos).
func (q *Quantities) lookup(e, u int) (j, k int, ok bool) {
	j, ok = q.h.EdgeIndex(e)
	if !ok {
		return 0, 0, false
	}
	for k, v := range q.edges[j].Nodes {
		if v == u {
			return j, k, true
		}
	}
	return 0, 0, false
}

// --- Positional accessors used by the projections ------------------------

// DegreeAt returns d(u) for node position i.
func (q *Quantities) DegreeAt(i int) float64 { return q.degree[i] }

// PiAt returns π(u) for node position i.
func (q *Quantities) PiAt(i int) float64 { return q.pi[i] }

// DeltaAt returns δ(e) for edge position j.
func (q *Quantities) DeltaAt(j int) float64 { return q.delta[j] }

// GammaAt returns γ for member k of edge position j.
func (q *Quantities) GammaAt(j, k int) float64 { return q.gamma[j][k] }

// MemberAt returns the node position of member k of edge position j.
func (q *Quantities) MemberAt(j, k int) int { return q.member[j][k] }

// IncidentAt returns the edge positions containing node position i.
// The slice is shared and must not be modified.
func (q *Quantities) IncidentAt(i int) []int { return q.incident[i] }

// EdgeAt returns the hyperedge at position j.
func (q *Quantities) EdgeAt(j int) hypergraph.HyperEdge { return q.edges[j] }
