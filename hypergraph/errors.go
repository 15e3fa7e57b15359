// SPDX-License-Identifier: MIT

package hypergraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for hypergraph construction and parsing.
// Callers branch with errors.Is; implementations attach context with %w.
var (
	// ErrNoNodes indicates that the node list is empty.
	ErrNoNodes = errors.New("hypergraph: no nodes")

	// ErrBadNodeID indicates a node id that is zero or negative.
	ErrBadNodeID = errors.New("hypergraph: node id must be positive")

	// ErrDuplicateNode indicates two nodes with the same id.
	ErrDuplicateNode = errors.New("hypergraph: duplicate node id")

	// ErrDuplicateEdge indicates two hyperedges with the same id.
	ErrDuplicateEdge = errors.New("hypergraph: duplicate hyperedge id")

	// ErrEmptyEdge indicates a hyperedge without members.
	ErrEmptyEdge = errors.New("hypergraph: hyperedge has no members")

	// ErrUnknownNode indicates a reference to a node id absent from the node list.
	ErrUnknownNode = errors.New("hypergraph: unknown node id")

	// ErrBadWeight indicates a negative, NaN or infinite omega or gamma.
	ErrBadWeight = errors.New("hypergraph: weight must be finite and non-negative")

	// ErrSyntax indicates a malformed record in the text format.
	ErrSyntax = errors.New("hypergraph: syntax error")

	// ErrBadSize indicates a non-positive size passed to Random.
	ErrBadSize = errors.New("hypergraph: invalid size")
)

// ParseError reports the 1-based line of a malformed or invalid record.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap exposes the underlying sentinel to errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }
