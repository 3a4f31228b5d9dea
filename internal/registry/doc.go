// Package registry provides the central "glue" for the operator system.
//
// The Registry maps the operator type names stored on graph nodes (e.g.
// "addNode") to their static contract: the typed input and output sockets,
// the evaluation function and the code-emission function. Operator families
// live in the top-level modules/ directory and add themselves through the
// Module interface.
//
// During application startup the registry is populated once and validated;
// after that it is treated as read-only and may be shared by any number of
// independent graphs.
package registry
