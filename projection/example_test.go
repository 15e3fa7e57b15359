package projection_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hypernet/flow"
	"github.com/katalvlaran/hypernet/hypergraph"
	"github.com/katalvlaran/hypernet/projection"
)

// ExampleUnipartite projects one hyperedge {A,B} with ω=2 onto A and B.
func ExampleUnipartite() {
	h, _ := hypergraph.New(
		[]hypergraph.Node{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}},
		[]hypergraph.HyperEdge{{ID: 1, Nodes: []int{1, 2}, Omega: 2}},
		nil,
	)
	q, _ := flow.Compute(h)

	withSelf, _ := projection.UnipartiteSelfLinks(q)
	for _, l := range withSelf.Links {
		fmt.Printf("%d -> %d %g\n", l.Source, l.Target, l.Weight)
	}
	plain, _ := projection.Unipartite(q)
	for _, l := range plain.Links {
		fmt.Printf("%d -> %d %g\n", l.Source, l.Target, l.Weight)
	}
	// Output:
	// 1 -> 1 1
	// 1 -> 2 1
	// 2 -> 1 1
	// 2 -> 2 1
	// 1 -> 2 2
	// 2 -> 1 2
}

// ExampleAll runs every representation and reports the arc counts.
func ExampleAll() {
	h, _ := hypergraph.New(
		[]hypergraph.Node{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}},
		[]hypergraph.HyperEdge{{ID: 1, Nodes: []int{1, 2}, Omega: 2}},
		nil,
	)
	q, _ := flow.Compute(h)

	res, err := projection.All(context.Background(), q, nil, projection.WithWorkers(1))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, r := range res {
		fmt.Println(r.Kind, r.Network.LinkCount())
	}
	// Output:
	// bipartite 4
	// bipartite_non_backtracking 4
	// unipartite_self_links 4
	// unipartite 2
	// multilayer_self_links 4
	// multilayer_states 4
}
