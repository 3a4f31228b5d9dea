// internal/nodeid/endpoint.go
package nodeid

import "github.com/specialistvlad/nodecalc/internal/graph"

// Endpoint names one socket of one node.
type Endpoint struct {
	Node   string
	Socket string
}

// String serializes the endpoint into its canonical `node.socket` form.
func (e Endpoint) String() string {
	if e.Node == "" && e.Socket == "" {
		return ""
	}
	return e.Node + "." + e.Socket
}

// Equal reports whether both endpoints name the same socket.
func (e Endpoint) Equal(other Endpoint) bool {
	return e == other
}

// Connection builds the connection request from an output endpoint to an
// input endpoint.
func Connection(from, to Endpoint) graph.Connection {
	return graph.Connection{
		Source:       from.Node,
		SourceHandle: from.Socket,
		Target:       to.Node,
		TargetHandle: to.Socket,
	}
}
