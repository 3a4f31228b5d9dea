// Package app wires the calculator together. It defines the App struct and its
// configuration, loads the seed graph, and runs a single evaluation whose
// values and generated code are written to the configured output. It does not
// know about flags or process exit codes; those belong to the cli package.
package app
