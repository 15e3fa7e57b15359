package network

import "errors"

// Sentinel errors for network construction.
var (
	// ErrBadWeight indicates a NaN, infinite or negative arc weight.
	ErrBadWeight = errors.New("network: weight must be finite and non-negative")

	// ErrKindMismatch indicates an arc type that the network kind does not carry.
	ErrKindMismatch = errors.New("network: link type does not match network kind")
)

// Kind selects the representation a Network encodes.
type Kind int

const (
	// KindLinks is a plain directed link list over Vertices.
	KindLinks Kind = iota

	// KindBipartite is a two-class link list; ids ≥ BipartiteStart form the second class.
	KindBipartite

	// KindMultilayer is a link list whose arcs carry a (layer, node) pair at each end.
	KindMultilayer

	// KindStates is a link list over state ids mapped to Vertices via States.
	KindStates
)

var kindNames = [...]string{"links", "bipartite", "multilayer", "states"}

// String returns a lower-case kind label.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Vertex is a physical vertex with a display label.
type Vertex struct {
	ID   int
	Name string
}

// StateNode maps a state id onto the physical vertex it belongs to.
type StateNode struct {
	StateID int
	NodeID  int
}

// Link is a weighted directed arc.
type Link struct {
	Source int
	Target int
	Weight float64
}

// MultilayerLink is a weighted arc between (layer, node) pairs.
type MultilayerLink struct {
	Layer1 int
	Source int
	Layer2 int
	Target int
	Weight float64
}

// Network is the output of one projection.
type Network struct {
	// Name identifies the representation (e.g. "bipartite").
	Name string

	// Kind selects the link section.
	Kind Kind

	// BipartiteStart is the first id of the second vertex class (KindBipartite only).
	BipartiteStart int

	Vertices        []Vertex
	States          []StateNode
	Links           []Link
	MultilayerLinks []MultilayerLink

	// Dropped counts candidate arcs discarded by sparsification.
	Dropped int
}

// Stats is a read-only snapshot of network size.
type Stats struct {
	Kind        Kind
	Vertices    int
	States      int
	Links       int
	TotalWeight float64
	Dropped     int
}
