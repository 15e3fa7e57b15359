// SPDX-License-Identifier: MIT
//
// types.go declares Node, HyperEdge, Weight and the immutable Hypergraph.

package hypergraph

// Node is a hypergraph vertex.
//
// ID is a unique positive integer and the stable ordering key used by every
// output; Name is a display label.
type Node struct {
	ID   int
	Name string
}

// HyperEdge is a weighted set of nodes.
//
// Nodes keeps member ids in first-occurrence order with duplicates removed;
// this order drives feature-state allocation in the non-backtracking
// projection, so it is part of the deterministic output contract.
type HyperEdge struct {
	ID    int
	Nodes []int
	Omega float64
}

// Weight is an explicit incidence affinity record (edge, node) → Gamma.
type Weight struct {
	Edge  int
	Node  int
	Gamma float64
}

// Hypergraph is the validated, read-only model shared by all computations.
//
// Use New or Parse to obtain one; the zero value is not usable.
type Hypergraph struct {
	nodes   []Node
	edges   []HyperEdge
	weights []Weight

	nodeIndex map[int]int // node id → position in nodes
	edgeIndex map[int]int // edge id → position in edges
	maxNodeID int
	incidence int // Σ |e.Nodes|
}
