package config

import "github.com/specialistvlad/nodecalc/internal/graph"

// Seed is the starting state of a session.
type Seed struct {
	// Graph holds the declared nodes and edges. Edges have not been through
	// the connection validator yet.
	Graph graph.Graph
	// Output optionally names the node to evaluate from.
	Output string
	// Files lists the source files in load order.
	Files []string
}
