package boolean

import (
	"strconv"

	"github.com/specialistvlad/nodecalc/internal/graph"
	"github.com/specialistvlad/nodecalc/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Type is the registry key of the boolean source node.
const Type = "booleanNode"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Evaluate treats any non-zero stored value as true.
func Evaluate(_ registry.EvalContext, node graph.Node) (cty.Value, error) {
	return cty.BoolVal(node.ValueOr(0) != 0), nil
}

// GenerateCode emits a boolean literal.
func GenerateCode(ctx registry.CodeContext, node graph.Node, _ graph.Graph) error {
	ctx.Emit(registry.Declare(ctx.VariableName(node.ID), strconv.FormatBool(node.ValueOr(0) != 0)))
	return nil
}

// Register registers the node config with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.MustRegister(registry.NodeConfig{
		Type:     Type,
		Label:    "Boolean",
		Category: "input",
		Color:    "#4f5",
		Outputs: []registry.Socket{
			{ID: registry.Output1, Kind: registry.KindBoolean, Multiple: true},
		},
		Evaluate:     Evaluate,
		GenerateCode: GenerateCode,
	})
}
