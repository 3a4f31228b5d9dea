package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// fileRoot decodes the top-level blocks of a seed file.
type fileRoot struct {
	Graphs []*graphBlock `hcl:"graph,block"`
	Remain hcl.Body      `hcl:",remain"`
}

// graphBlock represents a `graph` block.
type graphBlock struct {
	Name   string       `hcl:"name,label"`
	Output string       `hcl:"output,optional"`
	Nodes  []*nodeBlock `hcl:"node,block"`
	Edges  []*edgeBlock `hcl:"edge,block"`
}

// nodeBlock represents a `node` block. Value accepts numbers, booleans and
// numeric strings.
type nodeBlock struct {
	Type     string     `hcl:"type,label"`
	ID       string     `hcl:"id,label"`
	Label    string     `hcl:"label,optional"`
	Value    *cty.Value `hcl:"value,optional"`
	Position []float64  `hcl:"position,optional"`
}

// edgeBlock represents an `edge` block. Both ends use the node.socket form.
type edgeBlock struct {
	ID   string `hcl:"id,label"`
	From string `hcl:"from"`
	To   string `hcl:"to"`
}
