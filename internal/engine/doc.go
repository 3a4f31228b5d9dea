// Package engine evaluates a calculator graph.
//
// Evaluation is demand-driven. Starting from an output node the engine walks
// edges backwards in depth-first post-order, so every upstream node is
// processed before the node that consumes it. Each node's own value is
// computed at most once per pass regardless of fan-out; the memo table lives
// only for the duration of one EvaluateFromOutput call.
//
// The engine never fails because of the shape of the graph. Unknown node IDs,
// unregistered types and unconnected inputs all contribute zero. An operator
// that returns an error or panics keeps its previously cached value, and the
// rest of the pass continues.
//
// Cycles are not rejected. The visited set stops the walk the second time a
// node is reached, and a value requested while it is still being computed
// resolves to the node's previously cached value (or zero). The result is
// deterministic but truncated; hosts that care can check the graph with the
// dag package first.
package engine
