// SPDX-License-Identifier: MIT
//
// components.go: connected components by breadth-first search over the
// node/hyperedge incidence structure.
//
// Two nodes are connected when a chain of hyperedges links them. Every node
// belongs to exactly one component; an isolated node forms its own.
//
// Determinism:
//   - Roots are taken in node input order and neighbors in hyperedge then
//     member order, so component ids and member order are stable.
//
// Complexity: O(|V| + Σ|e|) time and space.

package hypergraph

// Components returns node ids grouped by connected component, in discovery
// order. Component i contains its root node first.
func (h *Hypergraph) Components() [][]int {
	// incident[i] lists edge positions containing node position i.
	incident := make([][]int, len(h.nodes))
	for j, e := range h.edges {
		for _, u := range e.Nodes {
			i := h.nodeIndex[u]
			incident[i] = append(incident[i], j)
		}
	}

	w := &walker{
		h:        h,
		incident: incident,
		visited:  make([]bool, len(h.nodes)),
		edgeSeen: make([]bool, len(h.edges)),
		queue:    make([]int, 0, len(h.nodes)),
	}

	var comps [][]int
	for root := range h.nodes {
		if w.visited[root] {
			continue
		}
		comps = append(comps, w.component(root))
	}
	return comps
}

// walker holds the mutable BFS state shared across roots.
type walker struct {
	h        *Hypergraph
	incident [][]int
	visited  []bool // by node position
	edgeSeen []bool // by edge position; each hyperedge is expanded once
	queue    []int
}

// component drains the BFS queue from root and returns the reached node ids.
func (w *walker) component(root int) []int {
	var ids []int
	w.enqueue(root)
	for len(w.queue) > 0 {
		i := w.queue[0]
		w.queue = w.queue[1:]
		ids = append(ids, w.h.nodes[i].ID)

		for _, j := range w.incident[i] {
			if w.edgeSeen[j] {
				continue
			}
			w.edgeSeen[j] = true
			for _, u := range w.h.edges[j].Nodes {
				if k := w.h.nodeIndex[u]; !w.visited[k] {
					w.enqueue(k)
				}
			}
		}
	}
	return ids
}

func (w *walker) enqueue(i int) {
	w.visited[i] = true
	w.queue = append(w.queue, i)
}
