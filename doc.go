// Package hypernet converts weighted hypergraphs into the network
// representations used for flow-based community detection with the map
// equation.
//
// A hypergraph (nodes, hyperedges with weight ω, optional per-incidence
// affinities γ) is read once, its stationary flow tables are computed, and
// any of six representations is produced from them:
//
//	bipartite                   node ↔ hyperedge feature vertices
//	bipartite_non_backtracking  feature states that forbid u → e → u
//	unipartite_self_links       node → node, hyperedge step collapsed
//	unipartite                  node → node without self-loops
//	multilayer_self_links       (layer, node) arcs with one hyperedge of memory
//	multilayer_states           the multilayer network as a state network
//
// Packages:
//
//	hypergraph/ model, validation, text parser, synthetic generator
//	flow/       degree, γ, δ, π and π_edge tables
//	network/    the abstract output graph (vertices, states, arcs)
//	projection/ the projections and the parallel driver All
//	pajek/      ".net" writer
//	cmd/hypernet command-line front end
//
// Quick start:
//
//	h, _ := hypergraph.ParseFile("paper.txt")
//	q, _ := flow.Compute(h)
//	n, _ := projection.Unipartite(q)
//	_ = pajek.WriteFile("unipartite_directed.net", n)
package hypernet
