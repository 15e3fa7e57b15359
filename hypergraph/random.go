// SPDX-License-Identifier: MIT
//
// random.go: deterministic synthetic hypergraphs for benchmarks and
// property tests.
//
// Contract:
//   - nNodes ≥ 1, nEdges ≥ 0, maxSize ≥ 1 (else ErrBadSize).
//   - Node ids are 1..nNodes, names "n<id>".
//   - Edge i (id i+1) draws 1..min(maxSize,nNodes) distinct members.
//   - Omega ∈ [1,10); roughly half of the incidences get an explicit gamma ∈ [0.5,2).
//
// Determinism:
//   - Fixed draw order (edges asc, members in permutation order) ⇒ identical
//     output for identical (nNodes, nEdges, maxSize, seed).

package hypergraph

import (
	"fmt"
	"math/rand"
)

const (
	methodRandom   = "Random"
	omegaMin       = 1.0
	omegaSpan      = 9.0
	gammaMin       = 0.5
	gammaSpan      = 1.5
	explicitChance = 0.5
)

// Random returns a synthetic Hypergraph drawn from a seeded RNG.
func Random(nNodes, nEdges, maxSize int, seed int64) (*Hypergraph, error) {
	if nNodes < 1 || nEdges < 0 || maxSize < 1 {
		return nil, fmt.Errorf("%s: nNodes=%d nEdges=%d maxSize=%d: %w",
			methodRandom, nNodes, nEdges, maxSize, ErrBadSize)
	}
	rng := rand.New(rand.NewSource(seed))

	nodes := make([]Node, nNodes)
	for i := range nodes {
		nodes[i] = Node{ID: i + 1, Name: fmt.Sprintf("n%d", i+1)}
	}

	limit := min(maxSize, nNodes)
	edges := make([]HyperEdge, 0, nEdges)
	var weights []Weight
	for i := 0; i < nEdges; i++ {
		size := 1 + rng.Intn(limit)
		perm := rng.Perm(nNodes)[:size]

		members := make([]int, size)
		for k, p := range perm {
			members[k] = p + 1
			if rng.Float64() < explicitChance {
				weights = append(weights, Weight{
					Edge:  i + 1,
					Node:  p + 1,
					Gamma: gammaMin + gammaSpan*rng.Float64(),
				})
			}
		}
		edges = append(edges, HyperEdge{
			ID:    i + 1,
			Nodes: members,
			Omega: omegaMin + omegaSpan*rng.Float64(),
		})
	}

	return New(nodes, edges, weights)
}
