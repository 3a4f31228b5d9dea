package float

import (
	"github.com/specialistvlad/nodecalc/internal/graph"
	"github.com/specialistvlad/nodecalc/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Type is the registry key of the float source node.
const Type = "floatNode"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Evaluate returns the user-entered value, or zero when it was never set.
func Evaluate(_ registry.EvalContext, node graph.Node) (cty.Value, error) {
	return registry.FromFloat(node.ValueOr(0)), nil
}

// GenerateCode emits the literal value of the node.
func GenerateCode(ctx registry.CodeContext, node graph.Node, _ graph.Graph) error {
	ctx.Emit(registry.Declare(ctx.VariableName(node.ID), registry.FormatNumber(node.ValueOr(0))))
	return nil
}

// Register registers the node config with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.MustRegister(registry.NodeConfig{
		Type:      Type,
		Label:     "Float",
		Category:  "input",
		Color:     "#2255fc",
		VarPrefix: "input",
		Outputs: []registry.Socket{
			{ID: registry.Output1, Kind: registry.KindNumber, Multiple: true},
		},
		Evaluate:     Evaluate,
		GenerateCode: GenerateCode,
	})
}
