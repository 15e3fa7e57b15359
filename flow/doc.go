// Package flow derives the stationary quantities every projection consumes
// from a hypergraph: node degree, per-incidence affinity (gamma) with
// defaulting, hyperedge normalization (delta), stationary node flow (pi) and
// stationary incidence flow (pi_edge).
//
// Definitions, for node u and hyperedge e:
//
//	E(u)          = { e : u ∈ e }
//	d(u)          = Σ_{e ∈ E(u)} ω(e)
//	γ(e,u)        = explicit weight record, else the default (1.0)
//	δ(e)          = Σ_{v ∈ e} γ(e,v)
//	π(u)          = Σ_{e ∈ E(u)} ω(e)·γ(e,u)
//	π_edge(e,u)   = ω(e)·γ(e,u)
//
// The tables are built once by Compute in two linear passes and are
// read-only afterwards, so a *Quantities may be shared by concurrent
// projections without synchronization.
//
// Isolated nodes (no incident hyperedge) are kept with d = π = 0 and an
// empty E(u). A node may also end up with d = 0 when all its hyperedges
// have ω = 0; consumers must not divide by such a degree.
//
// Errors:
//
//	ErrNilHypergraph   - Compute received nil.
//	ErrDegenerateEdge  - δ(e) = 0 (every member has γ = 0).
//	hypergraph.ErrUnknownNode (wrapped) - a member id is not in the node list.
//
// Example:
//
//	q, err := flow.Compute(h)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(q.Pi(1), q.Degree(1))
package flow
