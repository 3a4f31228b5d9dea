package minus

import (
	"github.com/specialistvlad/nodecalc/internal/graph"
	"github.com/specialistvlad/nodecalc/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Type is the registry key of the subtraction node.
const Type = "minusNode"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Evaluate returns input-1 - input-2.
func Evaluate(ctx registry.EvalContext, node graph.Node) (cty.Value, error) {
	a, b, err := registry.NumberOperands(ctx, node.ID)
	if err != nil {
		return cty.NilVal, err
	}
	return a.Subtract(b), nil
}

// Register registers the node config with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.MustRegister(registry.NodeConfig{
		Type:      Type,
		Label:     "Minus",
		Category:  "math",
		Color:     "#1cf",
		VarPrefix: "diff",
		Inputs: []registry.Socket{
			{ID: registry.Input1, Kind: registry.KindNumber},
			{ID: registry.Input2, Kind: registry.KindNumber},
		},
		Outputs: []registry.Socket{
			{ID: registry.Output1, Kind: registry.KindNumber, Multiple: true},
		},
		Evaluate:     Evaluate,
		GenerateCode: registry.BinaryCode("-"),
	})
}
