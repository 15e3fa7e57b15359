package network

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// New returns an empty Network of the given kind.
// Complexity: O(1).
func New(name string, kind Kind) *Network {
	return &Network{Name: name, Kind: kind}
}

// AddVertex appends a physical vertex. Ids are not de-duplicated; callers
// allocate them from disjoint ranges.
func (n *Network) AddVertex(id int, name string) {
	n.Vertices = append(n.Vertices, Vertex{ID: id, Name: name})
}

// AddState appends a state vertex mapped to physical vertex nodeID.
func (n *Network) AddState(stateID, nodeID int) {
	n.States = append(n.States, StateNode{StateID: stateID, NodeID: nodeID})
}

// AddLink appends source → target with weight w.
// Returns ErrBadWeight for NaN/Inf/negative w, ErrKindMismatch on a multilayer network.
func (n *Network) AddLink(source, target int, w float64) error {
	if n.Kind == KindMultilayer {
		return fmt.Errorf("AddLink(%d→%d) on %s: %w", source, target, n.Kind, ErrKindMismatch)
	}
	if !validWeight(w) {
		return fmt.Errorf("AddLink(%d→%d, w=%g): %w", source, target, w, ErrBadWeight)
	}
	n.Links = append(n.Links, Link{Source: source, Target: target, Weight: w})
	return nil
}

// AddMultilayerLink appends (layer1, source) → (layer2, target) with weight w.
// Returns ErrBadWeight for NaN/Inf/negative w, ErrKindMismatch unless KindMultilayer.
func (n *Network) AddMultilayerLink(layer1, source, layer2, target int, w float64) error {
	if n.Kind != KindMultilayer {
		return fmt.Errorf("AddMultilayerLink on %s: %w", n.Kind, ErrKindMismatch)
	}
	if !validWeight(w) {
		return fmt.Errorf("AddMultilayerLink((%d,%d)→(%d,%d), w=%g): %w",
			layer1, source, layer2, target, w, ErrBadWeight)
	}
	n.MultilayerLinks = append(n.MultilayerLinks, MultilayerLink{
		Layer1: layer1, Source: source, Layer2: layer2, Target: target, Weight: w,
	})
	return nil
}

// Drop records one candidate arc discarded by sparsification.
func (n *Network) Drop() { n.Dropped++ }

// LinkCount returns the number of arcs in the active link section.
func (n *Network) LinkCount() int {
	if n.Kind == KindMultilayer {
		return len(n.MultilayerLinks)
	}
	return len(n.Links)
}

// Stats returns a size snapshot.
// Complexity: O(L).
func (n *Network) Stats() Stats {
	s := Stats{
		Kind:     n.Kind,
		Vertices: len(n.Vertices),
		States:   len(n.States),
		Links:    n.LinkCount(),
		Dropped:  n.Dropped,
	}
	for _, l := range n.Links {
		s.TotalWeight += l.Weight
	}
	for _, l := range n.MultilayerLinks {
		s.TotalWeight += l.Weight
	}
	return s
}

// OutWeight sums outgoing weight per source id (per physical source for
// multilayer networks).
func (n *Network) OutWeight() map[int]float64 {
	out := make(map[int]float64)
	for _, l := range n.Links {
		out[l.Source] += l.Weight
	}
	for _, l := range n.MultilayerLinks {
		out[l.Source] += l.Weight
	}
	return out
}

// SortLinks orders arcs canonically: Links by (Source, Target);
// MultilayerLinks by (Layer1, Source, Layer2, Target). The sort is stable so
// parallel arcs keep their emission order.
// Complexity: O(L log L).
func (n *Network) SortLinks() {
	slices.SortStableFunc(n.Links, func(a, b Link) int {
		return cmp.Or(cmp.Compare(a.Source, b.Source), cmp.Compare(a.Target, b.Target))
	})
	slices.SortStableFunc(n.MultilayerLinks, func(a, b MultilayerLink) int {
		return cmp.Or(
			cmp.Compare(a.Layer1, b.Layer1),
			cmp.Compare(a.Source, b.Source),
			cmp.Compare(a.Layer2, b.Layer2),
			cmp.Compare(a.Target, b.Target),
		)
	})
}

// Clone returns a deep copy.
// Complexity: O(V + S + L).
func (n *Network) Clone() *Network {
	c := *n
	c.Vertices = slices.Clone(n.Vertices)
	c.States = slices.Clone(n.States)
	c.Links = slices.Clone(n.Links)
	c.MultilayerLinks = slices.Clone(n.MultilayerLinks)
	return &c
}

func validWeight(w float64) bool {
	return !math.IsNaN(w) && !math.IsInf(w, 0) && w >= 0
}
