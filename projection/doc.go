// SPDX-License-Identifier: MIT
//
// Package projection turns a hypergraph and its flow tables into the
// network representations used for flow-based community detection.
//
// Each representation encodes a different random walk over hyperedges:
//
//	Bipartite            node → feature(e) → node, one feature vertex per hyperedge.
//	NonBacktracking      bipartite with one feature state per incidence, so a
//	                     walk entering e from u can never return straight to u.
//	UnipartiteSelfLinks  node → node with the hyperedge step collapsed, self-loops kept.
//	Unipartite           as above without self-loops, destination re-normalized
//	                     over the remaining members.
//	MultilayerSelfLinks  (α,u) → (β,v) arcs remembering the previous hyperedge.
//	MultilayerStates     the multilayer network flattened to a state network.
//
// Transition quantities (see package flow for d, γ, δ, π):
//
//	P_enter(u→e)   = ω(e) / d(u)
//	P_exit(e→u)    = γ(e,u)                      (bipartite legs, un-normalized)
//	P(u→v via e)   = ω(e)/d(u) · γ(e,v)/δ(e)      (with self-links)
//	P(u→v via e)   = ω(e)/d(u) · γ(e,v)/(δ(e)−γ(e,u))  (without self-links)
//
// Sparsification: any candidate arc whose probability (bipartite variants:
// P_enter·P_exit) or weight (unipartite and multilayer) is below
// Options.Threshold (default 1e-10) is dropped and counted in
// network.Network.Dropped.
//
// Nodes with d(u) = 0 originate no arcs. Isolated nodes still appear in the
// vertex list of every output.
//
// Concurrency: every function reads the shared *flow.Quantities and builds
// its own network; All runs several projections in parallel goroutines.
//
// Determinism: iteration follows input order (edges, then members), and
// accumulated unipartite arcs are emitted in (source, target) order, so two
// runs over the same input produce identical networks.
//
// Errors:
//
//	ErrNilQuantities - nil flow tables.
//	ErrBadThreshold  - negative, NaN or infinite threshold.
//	ErrUnknownKind   - unrecognized projection kind or name.
//	ErrNotMultilayer - MultilayerStates on a non-multilayer network.
package projection
