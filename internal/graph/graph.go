// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package graph

import (
	"fmt"
	"math"
)

// New creates an empty graph with the given ID.
func New(id string) Graph {
	return Graph{ID: id}
}

// Clone returns a deep copy of g. Value pointers are copied too, so writes to
// the clone never leak into g.
func Clone(g Graph) Graph {
	out := Graph{
		ID:    g.ID,
		Nodes: make([]Node, len(g.Nodes)),
		Edges: make([]Edge, len(g.Edges)),
	}
	for i, n := range g.Nodes {
		out.Nodes[i] = cloneNode(n)
	}
	copy(out.Edges, g.Edges)
	return out
}

func cloneNode(n Node) Node {
	if n.Data.Value != nil {
		v := *n.Data.Value
		n.Data.Value = &v
	}
	return n
}

// FindNode returns the node with the given ID.
func FindNode(g Graph, id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// FindEdgeTo returns the first edge bound to the input socket (target, handle).
func FindEdgeTo(g Graph, target, handle string) (Edge, bool) {
	for _, e := range g.Edges {
		if e.Target == target && e.TargetHandle == handle {
			return e, true
		}
	}
	return Edge{}, false
}

// HasEdgeFrom reports whether any edge leaves the output socket (source, handle).
func HasEdgeFrom(g Graph, source, handle string) bool {
	for _, e := range g.Edges {
		if e.Source == source && e.SourceHandle == handle {
			return true
		}
	}
	return false
}

// IncomingEdges returns every edge whose target is the given node, in graph order.
func IncomingEdges(g Graph, id string) []Edge {
	var edges []Edge
	for _, e := range g.Edges {
		if e.Target == id {
			edges = append(edges, e)
		}
	}
	return edges
}

// NodesOfType returns all nodes with the given registry type, in graph order.
func NodesOfType(g Graph, nodeType string) []Node {
	var nodes []Node
	for _, n := range g.Nodes {
		if n.Type == nodeType {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// AddNode appends n to the graph. The node ID must be non-empty and unique.
func AddNode(g Graph, n Node) (Graph, error) {
	if n.ID == "" {
		return g, fmt.Errorf("add node: %w", ErrEmptyID)
	}
	if _, exists := FindNode(g, n.ID); exists {
		return g, fmt.Errorf("add node %q: %w", n.ID, ErrDuplicateNode)
	}

	out := Clone(g)
	out.Nodes = append(out.Nodes, cloneNode(n))
	return out, nil
}

// AddEdge appends e to the graph. Both endpoints must exist. AddEdge does not
// check socket compatibility; callers run the connection validator first.
func AddEdge(g Graph, e Edge) (Graph, error) {
	if e.ID == "" {
		return g, fmt.Errorf("add edge: %w", ErrEmptyID)
	}
	for _, existing := range g.Edges {
		if existing.ID == e.ID {
			return g, fmt.Errorf("add edge %q: %w", e.ID, ErrDuplicateEdge)
		}
	}
	if _, ok := FindNode(g, e.Source); !ok {
		return g, fmt.Errorf("add edge %q: source %q: %w", e.ID, e.Source, ErrNodeNotFound)
	}
	if _, ok := FindNode(g, e.Target); !ok {
		return g, fmt.Errorf("add edge %q: target %q: %w", e.ID, e.Target, ErrNodeNotFound)
	}

	out := Clone(g)
	out.Edges = append(out.Edges, e)
	return out, nil
}

// SetNodeValue replaces the value of a single node. NaN is rejected.
func SetNodeValue(g Graph, id string, value float64) (Graph, error) {
	if math.IsNaN(value) {
		return g, fmt.Errorf("set value of %q: %w", id, ErrInvalidValue)
	}
	out := Clone(g)
	for i := range out.Nodes {
		if out.Nodes[i].ID == id {
			out.Nodes[i].Data.Value = Float(value)
			return out, nil
		}
	}
	return g, fmt.Errorf("set value of %q: %w", id, ErrNodeNotFound)
}

// DeleteNode removes the node with the given ID and every edge whose source
// or target is that node. Deleting an unknown ID returns an equal graph.
func DeleteNode(g Graph, id string) Graph {
	out := Graph{ID: g.ID}
	for _, n := range g.Nodes {
		if n.ID != id {
			out.Nodes = append(out.Nodes, cloneNode(n))
		}
	}
	for _, e := range g.Edges {
		if e.Source != id && e.Target != id {
			out.Edges = append(out.Edges, e)
		}
	}
	return out
}

// Validate checks the structural invariants of g: non-empty unique node IDs
// and no edge pointing at a missing node. Socket-level rules belong to the
// connection validator.
func Validate(g Graph) error {
	seen := make(map[string]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.ID == "" {
			return fmt.Errorf("node of type %q: %w", n.Type, ErrEmptyID)
		}
		if _, dup := seen[n.ID]; dup {
			return fmt.Errorf("node %q: %w", n.ID, ErrDuplicateNode)
		}
		seen[n.ID] = struct{}{}
	}
	for _, e := range g.Edges {
		if _, ok := seen[e.Source]; !ok {
			return fmt.Errorf("edge %q source %q: %w", e.ID, e.Source, ErrDanglingEdge)
		}
		if _, ok := seen[e.Target]; !ok {
			return fmt.Errorf("edge %q target %q: %w", e.ID, e.Target, ErrDanglingEdge)
		}
	}
	return nil
}
