// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Bulk construction from plain node and link lists.

package core

import "fmt"

// EdgeSpec describes one link for FromLists.
type EdgeSpec struct {
	From string
	To   string
	Attributes
}

// FromLists builds a Graph from an explicit node list and link list.
//
// Contract:
//   - Every node ID must be non-empty; duplicates are tolerated.
//   - Every link endpoint must appear in nodes (no implicit vertices).
//   - Link rules are those of AddEdge.
//
// Any violation aborts construction with an error wrapping ErrInvalidGraph
// and the index of the offending entry.
//
// Complexity: O(V + E).
func FromLists(nodes []string, edges []EdgeSpec, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)
	var (
		i   int
		id  string
		es  EdgeSpec
		err error
	)
	for i, id = range nodes {
		if err = g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("%w: node[%d]: %w", ErrInvalidGraph, i, err)
		}
	}
	for i, es = range edges {
		if _, err = g.AddEdge(es.From, es.To, es.Attributes); err != nil {
			return nil, fmt.Errorf("edge[%d]: %w", i, err)
		}
	}

	return g, nil
}
