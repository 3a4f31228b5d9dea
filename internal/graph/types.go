// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the plain value types that make up a graph.
package graph

// Position is the canvas location of a node. It has no effect on evaluation.
type Position struct {
	X float64
	Y float64
}

// NodeData holds the mutable payload of a node.
type NodeData struct {
	// Value is authoritative for source nodes (nodes without inputs). For
	// computed nodes it caches the result of the last evaluation pass.
	// A nil Value means "never set".
	Value *float64
	// Label is an optional display label.
	Label string
}

// Node is a single operator instance in the graph.
type Node struct {
	// ID is unique within a graph.
	ID string
	// Type is the node configuration registry key, e.g. "addNode".
	Type string
	Data     NodeData
	Position Position
}

// Edge connects an output socket of Source to an input socket of Target.
type Edge struct {
	ID           string
	Source       string
	SourceHandle string
	Target       string
	TargetHandle string
}

// Connection is a proposed edge that has not been assigned an ID yet.
type Connection struct {
	Source       string
	SourceHandle string
	Target       string
	TargetHandle string
}

// ToEdge turns the connection into an edge with the given ID.
func (c Connection) ToEdge(id string) Edge {
	return Edge{
		ID:           id,
		Source:       c.Source,
		SourceHandle: c.SourceHandle,
		Target:       c.Target,
		TargetHandle: c.TargetHandle,
	}
}

// Graph is a complete calculator program.
type Graph struct {
	ID    string
	Nodes []Node
	Edges []Edge
}

// Float returns a pointer to v. It is a convenience for building NodeData.
func Float(v float64) *float64 {
	return &v
}

// ValueOr returns the node's cached value, or def when it was never set.
func (n Node) ValueOr(def float64) float64 {
	if n.Data.Value == nil {
		return def
	}
	return *n.Data.Value
}
