// SPDX-License-Identifier: MIT
//
// states.go: flatten a multilayer network into a first-order state network.
//
// Every distinct (layer, node) pair becomes one state. State ids start at 1
// and follow first appearance while scanning arcs (source before target),
// which keeps the mapping deterministic for a deterministic input.

package projection

import (
	"fmt"

	"github.com/katalvlaran/hypernet/flow"
	"github.com/katalvlaran/hypernet/network"
)

const firstStateID = 1

type layerNode struct {
	layer, node int
}

// MultilayerStates converts ml (KindMultilayer) into a KindStates network.
// Vertices and the dropped counter are carried over.
func MultilayerStates(ml *network.Network) (*network.Network, error) {
	if ml == nil || ml.Kind != network.KindMultilayer {
		return nil, fmt.Errorf("MultilayerStates: %w", ErrNotMultilayer)
	}

	n := network.New(KindMultilayerStates.String(), network.KindStates)
	n.Vertices = append(n.Vertices, ml.Vertices...)
	n.Dropped = ml.Dropped

	ids := make(map[layerNode]int)
	stateOf := func(layer, node int) int {
		key := layerNode{layer: layer, node: node}
		if id, ok := ids[key]; ok {
			return id
		}
		id := firstStateID + len(ids)
		ids[key] = id
		n.AddState(id, node)
		return id
	}

	for _, l := range ml.MultilayerLinks {
		src := stateOf(l.Layer1, l.Source)
		dst := stateOf(l.Layer2, l.Target)
		if err := n.AddLink(src, dst, l.Weight); err != nil {
			return nil, fmt.Errorf("MultilayerStates: %w", err)
		}
	}

	return n, nil
}

// multilayerStates is the Kind-dispatch adapter: project, then flatten.
func multilayerStates(q *flow.Quantities, opts ...Option) (*network.Network, error) {
	ml, err := MultilayerSelfLinks(q, opts...)
	if err != nil {
		return nil, err
	}
	return MultilayerStates(ml)
}
