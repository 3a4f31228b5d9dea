package add

import (
	"github.com/specialistvlad/nodecalc/internal/graph"
	"github.com/specialistvlad/nodecalc/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Type is the registry key of the addition node.
const Type = "addNode"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Evaluate returns input-1 + input-2.
func Evaluate(ctx registry.EvalContext, node graph.Node) (cty.Value, error) {
	a, b, err := registry.NumberOperands(ctx, node.ID)
	if err != nil {
		return cty.NilVal, err
	}
	return a.Add(b), nil
}

// Register registers the node config with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.MustRegister(registry.NodeConfig{
		Type:      Type,
		Label:     "Add",
		Category:  "math",
		Color:     "#1fc",
		VarPrefix: "sum",
		Inputs: []registry.Socket{
			{ID: registry.Input1, Kind: registry.KindNumber},
			{ID: registry.Input2, Kind: registry.KindNumber},
		},
		Outputs: []registry.Socket{
			{ID: registry.Output1, Kind: registry.KindNumber, Multiple: true},
		},
		Evaluate:     Evaluate,
		GenerateCode: registry.BinaryCode("+"),
	})
}
