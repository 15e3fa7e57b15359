package flow

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/hypernet/hypergraph"
)

// DefaultGamma is the affinity assumed for incidences without an explicit record.
const DefaultGamma = 1.0

// ErrNilHypergraph is returned when Compute receives a nil model.
var ErrNilHypergraph = errors.New("flow: hypergraph is nil")

// ErrDegenerateEdge is returned when a hyperedge has zero total affinity.
var ErrDegenerateEdge = errors.New("flow: hyperedge has zero total gamma")

// Quantities holds the derived tables, indexed by input position
// (node position from hypergraph.NodeIndex, edge position from EdgeIndex,
// member position k within HyperEdge.Nodes).
type Quantities struct {
	h     *hypergraph.Hypergraph
	edges []hypergraph.HyperEdge

	incident [][]int     // node pos → ascending edge positions
	degree   []float64   // node pos → d(u)
	pi       []float64   // node pos → π(u)
	delta    []float64   // edge pos → δ(e)
	gamma    [][]float64 // edge pos → γ aligned with Nodes
	explicit [][]bool    // edge pos → true where γ came from a record
	member   [][]int     // edge pos → node positions aligned with Nodes
}

// Option customizes Compute.
type Option func(*config)

type config struct {
	defaultGamma float64
}

// WithDefaultGamma overrides the affinity used for incidences without a record.
// Panics on a negative, NaN or infinite value.
func WithDefaultGamma(g float64) Option {
	if math.IsNaN(g) || math.IsInf(g, 0) || g < 0 {
		panic(fmt.Sprintf("flow: WithDefaultGamma(%g)", g))
	}
	return func(c *config) { c.defaultGamma = g }
}
