package registry

import (
	"fmt"

	"github.com/specialistvlad/nodecalc/internal/graph"
)

// DeclKeyword is the keyword every generated statement starts with.
const DeclKeyword = "const"

// Declare renders a single variable declaration statement.
func Declare(name, expr string) string {
	return fmt.Sprintf("%s %s = %s;", DeclKeyword, name, expr)
}

// BinaryCode returns a CodeFunc that emits `<left> <op> <right>` over the
// two standard input sockets.
func BinaryCode(op string) CodeFunc {
	return func(ctx CodeContext, node graph.Node, _ graph.Graph) error {
		left := ctx.InputVariable(node, Input1)
		right := ctx.InputVariable(node, Input2)
		ctx.Emit(Declare(ctx.VariableName(node.ID), fmt.Sprintf("%s %s %s", left, op, right)))
		return nil
	}
}
