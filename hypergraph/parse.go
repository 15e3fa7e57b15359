// SPDX-License-Identifier: MIT
//
// parse.go: reader for the sectioned text format documented in doc.go.
//
// Contract:
//   - Blank lines and lines starting with '#' are ignored.
//   - A record before the first section header is a syntax error.
//   - Every syntax or validation failure is reported as *ParseError
//     (line-scoped) or as the wrapped New() sentinel (model-scoped).

package hypergraph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

type section int

const (
	sectionNone section = iota
	sectionVertices
	sectionHyperedges
	sectionWeights
)

const commentPrefix = "#"

// sectionHeaders maps lower-cased headers to sections.
var sectionHeaders = map[string]section{
	"*vertices":   sectionVertices,
	"*hyperedges": sectionHyperedges,
	"*weights":    sectionWeights,
}

// ParseFile opens path and delegates to Parse.
func ParseFile(path string) (*Hypergraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("hypergraph: open %s: %w", path, err)
	}
	defer f.Close()

	h, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return h, nil
}

// Parse reads the text format from r and returns a validated Hypergraph.
func Parse(r io.Reader) (*Hypergraph, error) {
	var (
		nodes   []Node
		edges   []HyperEdge
		weights []Weight
		current = sectionNone
		lineNo  int
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024) // long hyperedge lines
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		if strings.HasPrefix(line, "*") {
			sec, ok := sectionHeaders[strings.ToLower(strings.Fields(line)[0])]
			if !ok {
				return nil, &ParseError{Line: lineNo, Err: fmt.Errorf("unknown section %q: %w", line, ErrSyntax)}
			}
			current = sec
			continue
		}

		var err error
		switch current {
		case sectionVertices:
			var n Node
			n, err = parseNode(line)
			nodes = append(nodes, n)
		case sectionHyperedges:
			var e HyperEdge
			e, err = parseEdge(line)
			edges = append(edges, e)
		case sectionWeights:
			var w Weight
			w, err = parseWeight(line)
			weights = append(weights, w)
		default:
			err = fmt.Errorf("record outside of any section: %w", ErrSyntax)
		}
		if err != nil {
			return nil, &ParseError{Line: lineNo, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("hypergraph: read: %w", err)
	}

	return New(nodes, edges, weights)
}

// parseNode reads `id "name"`; an absent name falls back to the id.
func parseNode(line string) (Node, error) {
	idField, rest := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		idField, rest = line[:i], line[i:]
	}
	id, err := strconv.Atoi(idField)
	if err != nil {
		return Node{}, fmt.Errorf("vertex id %q: %w", idField, ErrSyntax)
	}

	name := strings.TrimSpace(rest)
	if len(name) >= 2 && name[0] == '"' && name[len(name)-1] == '"' {
		name = name[1 : len(name)-1]
	}
	if name == "" {
		name = idField
	}
	return Node{ID: id, Name: name}, nil
}

// parseEdge reads `id member... omega`.
func parseEdge(line string) (HyperEdge, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return HyperEdge{}, fmt.Errorf("hyperedge needs id, members and omega, got %d fields: %w", len(fields), ErrSyntax)
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return HyperEdge{}, fmt.Errorf("hyperedge id %q: %w", fields[0], ErrSyntax)
	}

	last := len(fields) - 1
	omega, err := strconv.ParseFloat(fields[last], 64)
	if err != nil {
		return HyperEdge{}, fmt.Errorf("hyperedge %d omega %q: %w", id, fields[last], ErrSyntax)
	}

	members := make([]int, 0, last-1)
	for _, f := range fields[1:last] {
		u, err := strconv.Atoi(f)
		if err != nil {
			return HyperEdge{}, fmt.Errorf("hyperedge %d member %q: %w", id, f, ErrSyntax)
		}
		members = append(members, u)
	}
	return HyperEdge{ID: id, Nodes: members, Omega: omega}, nil
}

// parseWeight reads `edge node gamma`.
func parseWeight(line string) (Weight, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Weight{}, fmt.Errorf("weight needs edge, node and gamma, got %d fields: %w", len(fields), ErrSyntax)
	}

	edge, err := strconv.Atoi(fields[0])
	if err != nil {
		return Weight{}, fmt.Errorf("weight edge %q: %w", fields[0], ErrSyntax)
	}
	node, err := strconv.Atoi(fields[1])
	if err != nil {
		return Weight{}, fmt.Errorf("weight node %q: %w", fields[1], ErrSyntax)
	}
	gamma, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Weight{}, fmt.Errorf("weight gamma %q: %w", fields[2], ErrSyntax)
	}
	return Weight{Edge: edge, Node: node, Gamma: gamma}, nil
}
