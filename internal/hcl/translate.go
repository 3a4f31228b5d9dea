package hcl

import (
	"fmt"

	"github.com/specialistvlad/nodecalc/internal/graph"
	"github.com/specialistvlad/nodecalc/internal/nodeid"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// translateNode converts a node block into a graph node.
func translateNode(nb *nodeBlock) (graph.Node, error) {
	n := graph.Node{
		ID:   nb.ID,
		Type: nb.Type,
		Data: graph.NodeData{Label: nb.Label},
	}

	if nb.Value != nil {
		v, err := decodeValue(*nb.Value)
		if err != nil {
			return graph.Node{}, fmt.Errorf("node %q: %w", nb.ID, err)
		}
		n.Data.Value = v
	}

	switch len(nb.Position) {
	case 0:
	case 2:
		n.Position = graph.Position{X: nb.Position[0], Y: nb.Position[1]}
	default:
		return graph.Node{}, fmt.Errorf("node %q: position must have exactly two elements, got %d", nb.ID, len(nb.Position))
	}

	return n, nil
}

// decodeValue flattens a literal into the float64 stored on a node.
// Booleans become 1 or 0. A null literal leaves the value unset.
func decodeValue(v cty.Value) (*float64, error) {
	if v.IsNull() {
		return nil, nil
	}
	if !v.IsWhollyKnown() {
		return nil, fmt.Errorf("value must be known at load time")
	}

	if v.Type() == cty.Bool {
		if v.True() {
			return graph.Float(1), nil
		}
		return graph.Float(0), nil
	}

	num, err := convert.Convert(v, cty.Number)
	if err != nil {
		return nil, fmt.Errorf("cannot use %s as a node value: %w", v.Type().FriendlyName(), err)
	}

	var f float64
	if err := gocty.FromCtyValue(num, &f); err != nil {
		return nil, fmt.Errorf("value out of range: %w", err)
	}
	return graph.Float(f), nil
}

// translateEdge converts an edge block into a graph edge.
func translateEdge(eb *edgeBlock) (graph.Edge, error) {
	from, err := nodeid.Parse(eb.From)
	if err != nil {
		return graph.Edge{}, fmt.Errorf("edge %q from: %w", eb.ID, err)
	}
	to, err := nodeid.Parse(eb.To)
	if err != nil {
		return graph.Edge{}, fmt.Errorf("edge %q to: %w", eb.ID, err)
	}
	return nodeid.Connection(from, to).ToEdge(eb.ID), nil
}
