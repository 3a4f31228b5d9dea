package output

import (
	"github.com/specialistvlad/nodecalc/internal/graph"
	"github.com/specialistvlad/nodecalc/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Type is the registry key of the output node. Hosts look for a node of this
// type when no explicit output ID is given.
const Type = "outputNode"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Evaluate forwards whatever is wired into input-1.
func Evaluate(ctx registry.EvalContext, node graph.Node) (cty.Value, error) {
	return registry.NumberInput(ctx, node.ID, registry.Input1)
}

// GenerateCode binds the result variable to the input variable.
func GenerateCode(ctx registry.CodeContext, node graph.Node, _ graph.Graph) error {
	ctx.Emit(registry.Declare(ctx.VariableName(node.ID), ctx.InputVariable(node, registry.Input1)))
	return nil
}

// Register registers the node config with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.MustRegister(registry.NodeConfig{
		Type:      Type,
		Label:     "Output",
		Category:  "output",
		Color:     "#f3c",
		VarPrefix: "result",
		Inputs: []registry.Socket{
			{ID: registry.Input1, Kind: registry.KindNumber},
		},
		Evaluate:     Evaluate,
		GenerateCode: GenerateCode,
	})
}
