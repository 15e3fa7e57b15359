// Package network defines the abstract weighted directed (multi-)graph that
// every hypergraph projection produces and every writer consumes.
//
// A Network is a flat, ordered container:
//
//	Vertices        – physical vertices (original nodes, feature vertices).
//	States          – state vertices (state id → physical vertex id); only
//	                  populated by state-expanded representations.
//	Links           – source → target arcs with a float64 weight.
//	MultilayerLinks – (layer1, source) → (layer2, target) arcs.
//
// Kind tells a writer which link section applies: KindLinks and KindStates
// use Links, KindBipartite uses Links plus BipartiteStart (first id of the
// second vertex class), KindMultilayer uses MultilayerLinks.
//
// Unlike a shared in-memory graph, a Network has a single owner (the
// projection that builds it) and therefore carries no locks. Once returned
// it must be treated as read-only.
//
// Errors:
//
//	ErrBadWeight    - NaN, infinite or negative arc weight.
//	ErrKindMismatch - arc type not allowed for the network kind.
package network
