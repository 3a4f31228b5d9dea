package registry

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Socket IDs shared by the built-in operators.
const (
	Input1  = "input-1"
	Input2  = "input-2"
	Output1 = "output-1"
)

// ErrWrongKind is returned when a socket carries a value of an unexpected kind.
var ErrWrongKind = errors.New("value has the wrong kind")

// FromFloat wraps a float64 as a cty number. cty has no NaN, so NaN becomes
// zero.
func FromFloat(f float64) cty.Value {
	if math.IsNaN(f) {
		return cty.Zero
	}
	return cty.NumberFloatVal(f)
}

// ToFloat flattens an evaluation result into the float64 cached on a node.
// Booleans become 1 or 0; null, unknown and non-primitive values become 0.
func ToFloat(v cty.Value) float64 {
	if v.IsNull() || !v.IsKnown() {
		return 0
	}
	switch v.Type() {
	case cty.Bool:
		if v.True() {
			return 1
		}
		return 0
	case cty.Number:
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// NumberInput resolves an input socket and checks that it carries a number.
func NumberInput(ctx EvalContext, nodeID, handleID string) (cty.Value, error) {
	v := ctx.NodeValue(nodeID, handleID)
	if v.IsNull() || !v.IsKnown() {
		return cty.NilVal, fmt.Errorf("input '%s': %w: value is not set", handleID, ErrWrongKind)
	}
	if !v.Type().Equals(cty.Number) {
		return cty.NilVal, fmt.Errorf("input '%s': %w: got %s, want number", handleID, ErrWrongKind, v.Type().FriendlyName())
	}
	return v, nil
}

// NumberOperands resolves the two numeric inputs of a binary operator.
func NumberOperands(ctx EvalContext, nodeID string) (a, b cty.Value, err error) {
	a, err = NumberInput(ctx, nodeID, Input1)
	if err != nil {
		return cty.NilVal, cty.NilVal, err
	}
	b, err = NumberInput(ctx, nodeID, Input2)
	if err != nil {
		return cty.NilVal, cty.NilVal, err
	}
	return a, b, nil
}

// FormatNumber renders f as the shortest literal that round-trips.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
