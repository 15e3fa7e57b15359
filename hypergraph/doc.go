// SPDX-License-Identifier: MIT
//
// Package hypergraph holds the immutable in-memory model of a weighted
// hypergraph: nodes, hyperedges with an edge weight (omega) and optional
// per-incidence affinity records (gamma).
//
// A Hypergraph is built once, either programmatically through New or from
// the text format through Parse / ParseFile, and is read-only afterwards.
// All downstream packages (flow, projection) share one instance without
// locking.
//
// Text format:
//
//	# comments start with '#'
//	*Vertices
//	1 "a"
//	2 "b"
//	3 "c"
//	*Hyperedges
//	# id member... omega
//	1 1 2 3 10
//	*Weights
//	# edge node gamma
//	1 3 2
//
// Sections may appear in any order; headers are case-insensitive.
// Incidences without a *Weights record default to gamma = 1 later, when the
// flow tables are computed.
//
// Errors:
//
//	ErrNoNodes       - the node list is empty.
//	ErrBadNodeID     - a node id is not positive.
//	ErrDuplicateNode - two nodes share an id.
//	ErrDuplicateEdge - two hyperedges share an id.
//	ErrEmptyEdge     - a hyperedge has no members.
//	ErrUnknownNode   - a hyperedge references a node id not in the node list.
//	ErrBadWeight     - omega or gamma is negative, NaN or infinite.
//	ErrSyntax        - an unparsable line in the text format (see ParseError).
package hypergraph
