// SPDX-License-Identifier: MIT
//
// hypergraph.go: validated construction and read-only accessors.
//
// Contract:
//   - Node ids are positive and unique; at least one node exists.
//   - Edge ids are unique; every edge has ≥ 1 member after de-duplication.
//   - Every member references a known node.
//   - Omega and Gamma are finite and ≥ 0.
//   - Weight records for non-incident pairs are kept verbatim; consumers
//     only look weights up per incidence, so such records are inert.
//
// Complexity:
//   - New: O(|V| + Σ|e| + |W|) time and space.
//   - Accessors: O(1) except the slice copies (O(n)).

package hypergraph

import (
	"fmt"
	"math"
	"slices"
)

// New validates the inputs and returns an immutable Hypergraph.
//
// The input slices are copied; later mutation by the caller has no effect.
// Errors: ErrNoNodes, ErrBadNodeID, ErrDuplicateNode, ErrDuplicateEdge,
// ErrEmptyEdge, ErrUnknownNode, ErrBadWeight, each wrapped with context.
func New(nodes []Node, edges []HyperEdge, weights []Weight) (*Hypergraph, error) {
	if len(nodes) == 0 {
		return nil, ErrNoNodes
	}

	h := &Hypergraph{
		nodes:     slices.Clone(nodes),
		edges:     make([]HyperEdge, 0, len(edges)),
		weights:   slices.Clone(weights),
		nodeIndex: make(map[int]int, len(nodes)),
		edgeIndex: make(map[int]int, len(edges)),
	}

	// 1) Nodes: positive, unique ids.
	for i, n := range h.nodes {
		if n.ID <= 0 {
			return nil, fmt.Errorf("node %d: %w", n.ID, ErrBadNodeID)
		}
		if _, dup := h.nodeIndex[n.ID]; dup {
			return nil, fmt.Errorf("node %d: %w", n.ID, ErrDuplicateNode)
		}
		h.nodeIndex[n.ID] = i
		if n.ID > h.maxNodeID {
			h.maxNodeID = n.ID
		}
	}

	// 2) Edges: unique ids, known members, sane omega.
	for _, e := range edges {
		if _, dup := h.edgeIndex[e.ID]; dup {
			return nil, fmt.Errorf("hyperedge %d: %w", e.ID, ErrDuplicateEdge)
		}
		if !validWeight(e.Omega) {
			return nil, fmt.Errorf("hyperedge %d: omega=%g: %w", e.ID, e.Omega, ErrBadWeight)
		}

		members := make([]int, 0, len(e.Nodes))
		seen := make(map[int]struct{}, len(e.Nodes))
		for _, u := range e.Nodes {
			if _, ok := h.nodeIndex[u]; !ok {
				return nil, fmt.Errorf("hyperedge %d: node %d: %w", e.ID, u, ErrUnknownNode)
			}
			if _, ok := seen[u]; ok {
				continue // collapse repeated members
			}
			seen[u] = struct{}{}
			members = append(members, u)
		}
		if len(members) == 0 {
			return nil, fmt.Errorf("hyperedge %d: %w", e.ID, ErrEmptyEdge)
		}

		h.edgeIndex[e.ID] = len(h.edges)
		h.edges = append(h.edges, HyperEdge{ID: e.ID, Nodes: members, Omega: e.Omega})
		h.incidence += len(members)
	}

	// 3) Weights: only the value domain is checked here.
	for _, w := range h.weights {
		if !validWeight(w.Gamma) {
			return nil, fmt.Errorf("weight (%d,%d): gamma=%g: %w", w.Edge, w.Node, w.Gamma, ErrBadWeight)
		}
	}

	return h, nil
}

// validWeight reports whether x is finite and non-negative.
func validWeight(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x >= 0
}

// Nodes returns a copy of the node list in input order.
func (h *Hypergraph) Nodes() []Node {
	return slices.Clone(h.nodes)
}

// Edges returns a copy of the hyperedge list in input order.
// Member slices are shared and must be treated as read-only.
func (h *Hypergraph) Edges() []HyperEdge {
	return slices.Clone(h.edges)
}

// Weights returns a copy of the explicit incidence weight records.
func (h *Hypergraph) Weights() []Weight {
	return slices.Clone(h.weights)
}

// NodeCount returns |V|.
func (h *Hypergraph) NodeCount() int { return len(h.nodes) }

// EdgeCount returns |E|.
func (h *Hypergraph) EdgeCount() int { return len(h.edges) }

// IncidenceCount returns Σ|e| over all hyperedges.
func (h *Hypergraph) IncidenceCount() int { return h.incidence }

// MaxNodeID returns the largest node id.
func (h *Hypergraph) MaxNodeID() int { return h.maxNodeID }

// NodeIndex returns the input position of node id.
func (h *Hypergraph) NodeIndex(id int) (int, bool) {
	i, ok := h.nodeIndex[id]
	return i, ok
}

// EdgeIndex returns the input position of hyperedge id.
func (h *Hypergraph) EdgeIndex(id int) (int, bool) {
	i, ok := h.edgeIndex[id]
	return i, ok
}

// Node returns the node with the given id.
func (h *Hypergraph) Node(id int) (Node, bool) {
	i, ok := h.nodeIndex[id]
	if !ok {
		return Node{}, false
	}
	return h.nodes[i], true
}

// Edge returns the hyperedge with the given id.
func (h *Hypergraph) Edge(id int) (HyperEdge, bool) {
	i, ok := h.edgeIndex[id]
	if !ok {
		return HyperEdge{}, false
	}
	return h.edges[i], true
}
