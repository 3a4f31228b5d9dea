// internal/nodeid/doc.go

/*
Package nodeid provides a structured representation of socket endpoints
within a calculator graph, based on the canonical format `node.socket`,
e.g., `add1.input-1`.

Seed files and command-line tooling refer to edge ends this way; the package
centralizes formatting and parsing of that form.
*/
package nodeid
