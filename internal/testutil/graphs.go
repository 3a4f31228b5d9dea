package testutil

import "github.com/specialistvlad/nodecalc/internal/graph"

// Float builds a floatNode with a value.
func Float(id string, v float64) graph.Node {
	return graph.Node{ID: id, Type: "floatNode", Data: graph.NodeData{Value: graph.Float(v)}}
}

// Op builds a node of the given type with no cached value.
func Op(id, nodeType string) graph.Node {
	return graph.Node{ID: id, Type: nodeType}
}

// Wire builds an edge from the standard output socket of source to the named
// input socket of target.
func Wire(id, source, target, targetHandle string) graph.Edge {
	return graph.Edge{
		ID:           id,
		Source:       source,
		SourceHandle: "output-1",
		Target:       target,
		TargetHandle: targetHandle,
	}
}

// SumGraph is 5 and 3 wired into an add node, wired into the output node.
func SumGraph() graph.Graph {
	return graph.Graph{
		ID: "sum-graph",
		Nodes: []graph.Node{
			Float("input1", 5),
			Float("input2", 3),
			Op("add1", "addNode"),
			Op("output1", "outputNode"),
		},
		Edges: []graph.Edge{
			Wire("e1", "input1", "add1", "input-1"),
			Wire("e2", "input2", "add1", "input-2"),
			Wire("e3", "add1", "output1", "input-1"),
		},
	}
}

// ChainGraph is (5 + 3) - 1 routed to the output node.
func ChainGraph() graph.Graph {
	return graph.Graph{
		ID: "chain-graph",
		Nodes: []graph.Node{
			Float("input1", 5),
			Float("input2", 3),
			Float("input3", 1),
			Op("add1", "addNode"),
			Op("minus1", "minusNode"),
			Op("output1", "outputNode"),
		},
		Edges: []graph.Edge{
			Wire("e1", "input1", "add1", "input-1"),
			Wire("e2", "input2", "add1", "input-2"),
			Wire("e3", "add1", "minus1", "input-1"),
			Wire("e4", "input3", "minus1", "input-2"),
			Wire("e5", "minus1", "output1", "input-1"),
		},
	}
}

// CycleGraph wires two add nodes into each other and feeds one into the output.
func CycleGraph() graph.Graph {
	return graph.Graph{
		ID: "cycle-graph",
		Nodes: []graph.Node{
			Float("seed", 2),
			Op("addA", "addNode"),
			Op("addB", "addNode"),
			Op("output1", "outputNode"),
		},
		Edges: []graph.Edge{
			Wire("e1", "seed", "addA", "input-1"),
			Wire("e2", "addB", "addA", "input-2"),
			Wire("e3", "addA", "addB", "input-1"),
			Wire("e4", "addA", "output1", "input-1"),
		},
	}
}
