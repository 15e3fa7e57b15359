package runner

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/hypernet/flow"
	"github.com/katalvlaran/hypernet/hypergraph"
	"github.com/katalvlaran/hypernet/internal/config"
)

// NodeFlow is one row of the inspect table.
type NodeFlow struct {
	ID     int
	Name   string
	Degree float64
	Pi     float64
	Edges  int
}

// Summary describes a hypergraph and its flow tables.
type Summary struct {
	Nodes      int
	Edges      int
	Incidences int
	Explicit   int // incidences with a weight record
	Isolated   int // nodes with d(u) = 0
	Components int
	Largest    int // nodes in the largest component
	TotalFlow  float64
	Top        []NodeFlow // by descending π, then ascending id
}

// Inspect parses path, computes the flow tables and summarizes them,
// keeping the top nodes by stationary flow (all nodes when top ≤ 0).
func Inspect(path string, defaultGamma float64, top int) (*Summary, error) {
	if math.IsNaN(defaultGamma) || math.IsInf(defaultGamma, 0) || defaultGamma < 0 {
		return nil, fmt.Errorf("runner: default_gamma=%g: %w", defaultGamma, config.ErrInvalid)
	}
	h, err := hypergraph.ParseFile(path)
	if err != nil {
		return nil, err
	}
	q, err := flow.Compute(h, flow.WithDefaultGamma(defaultGamma))
	if err != nil {
		return nil, err
	}
	return Summarize(q, top), nil
}

// Summarize builds a Summary from computed tables.
func Summarize(q *flow.Quantities, top int) *Summary {
	h := q.Hypergraph()
	s := &Summary{
		Nodes:      h.NodeCount(),
		Edges:      h.EdgeCount(),
		Incidences: h.IncidenceCount(),
	}

	for _, comp := range h.Components() {
		s.Components++
		s.Largest = max(s.Largest, len(comp))
	}

	for _, e := range h.Edges() {
		for _, u := range e.Nodes {
			if q.Explicit(e.ID, u) {
				s.Explicit++
			}
		}
	}

	rows := make([]NodeFlow, 0, s.Nodes)
	for _, v := range h.Nodes() {
		row := NodeFlow{
			ID:     v.ID,
			Name:   v.Name,
			Degree: q.Degree(v.ID),
			Pi:     q.Pi(v.ID),
			Edges:  len(q.IncidentEdges(v.ID)),
		}
		if row.Degree <= 0 {
			s.Isolated++
		}
		s.TotalFlow += row.Pi
		rows = append(rows, row)
	}

	slices.SortStableFunc(rows, func(a, b NodeFlow) int {
		return cmp.Or(cmp.Compare(b.Pi, a.Pi), cmp.Compare(a.ID, b.ID))
	})
	if top > 0 && top < len(rows) {
		rows = rows[:top]
	}
	s.Top = rows
	return s
}
