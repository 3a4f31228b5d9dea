package session

import "github.com/specialistvlad/nodecalc/internal/graph"

// DemoGraph is the graph a fresh editor opens with: (5 + 3) - 1 routed to
// the output node.
func DemoGraph() graph.Graph {
	return graph.Graph{
		ID: "demo",
		Nodes: []graph.Node{
			{ID: "input1", Type: "floatNode", Data: graph.NodeData{Value: graph.Float(5)}, Position: graph.Position{X: 0, Y: 0}},
			{ID: "input2", Type: "floatNode", Data: graph.NodeData{Value: graph.Float(3)}, Position: graph.Position{X: 0, Y: 100}},
			{ID: "input3", Type: "floatNode", Data: graph.NodeData{Value: graph.Float(1)}, Position: graph.Position{X: 0, Y: 100}},
			{ID: "add1", Type: "addNode", Position: graph.Position{X: 200, Y: 50}},
			{ID: "minus1", Type: "minusNode", Position: graph.Position{X: 200, Y: 50}},
			{ID: "output1", Type: "outputNode", Position: graph.Position{X: 400, Y: 50}},
		},
		Edges: []graph.Edge{
			{ID: "e1", Source: "input1", SourceHandle: "output-1", Target: "add1", TargetHandle: "input-1"},
			{ID: "e2", Source: "input2", SourceHandle: "output-1", Target: "add1", TargetHandle: "input-2"},
			{ID: "e3", Source: "add1", SourceHandle: "output-1", Target: "minus1", TargetHandle: "input-1"},
			{ID: "e4", Source: "input3", SourceHandle: "output-1", Target: "minus1", TargetHandle: "input-2"},
			{ID: "e5", Source: "minus1", SourceHandle: "output-1", Target: "output1", TargetHandle: "input-1"},
		},
	}
}
