package dag

import (
	"errors"
	"sync"
)

// ErrCycle is returned by DetectCycles when the graph is not acyclic.
var ErrCycle = errors.New("cycle detected")

// Graph is a collection of nodes and their dependencies.
// All operations on the graph are concurrency-safe.
type Graph struct {
	// mutex protects the nodes map during concurrent access.
	mutex sync.RWMutex
	// nodes stores all nodes in the graph, keyed by their unique ID.
	nodes map[string]*node
}

// node represents a single vertex in the graph. It is un-exported to
// enforce interaction with the graph via the public API (using string IDs),
// not by direct struct manipulation.
type node struct {
	id string
	// deps holds the nodes whose output feeds this node.
	deps map[string]*node
	// dependents holds the nodes this node feeds.
	dependents map[string]*node
}
