package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/nodecalc/internal/graph"
	"github.com/specialistvlad/nodecalc/internal/registry"
	"github.com/specialistvlad/nodecalc/internal/testutil"
	"github.com/specialistvlad/nodecalc/modules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestEvaluateFromOutput_Sum(t *testing.T) {
	ctx, _ := testutil.LoggedContext(t)
	e := New(testutil.CoreRegistry())

	result, err := e.EvaluateFromOutput(ctx, testutil.SumGraph(), "output1")
	require.NoError(t, err)

	testutil.RequireNodeValue(t, result, "output1", 8)
	testutil.RequireNodeValue(t, result, "add1", 8)
	testutil.RequireNodeValue(t, result, "input1", 5)
	testutil.RequireNodeValue(t, result, "input2", 3)
}

func TestEvaluateFromOutput_Chain(t *testing.T) {
	ctx, _ := testutil.LoggedContext(t)
	e := New(testutil.CoreRegistry())

	result, err := e.EvaluateFromOutput(ctx, testutil.ChainGraph(), "output1")
	require.NoError(t, err)

	testutil.RequireNodeValue(t, result, "add1", 8)
	testutil.RequireNodeValue(t, result, "minus1", 7)
	testutil.RequireNodeValue(t, result, "output1", 7)
}

func TestEvaluateFromOutput_MissingInputsDefaultToZero(t *testing.T) {
	ctx, _ := testutil.LoggedContext(t)
	e := New(testutil.CoreRegistry())

	t.Run("add with no inputs", func(t *testing.T) {
		g := graph.Graph{
			Nodes: []graph.Node{testutil.Op("add1", "addNode"), testutil.Op("output1", "outputNode")},
			Edges: []graph.Edge{testutil.Wire("e1", "add1", "output1", "input-1")},
		}
		result, err := e.EvaluateFromOutput(ctx, g, "output1")
		require.NoError(t, err)
		testutil.RequireNodeValue(t, result, "output1", 0)
		testutil.RequireNodeValue(t, result, "add1", 0)
	})

	t.Run("add with one input", func(t *testing.T) {
		g := graph.Graph{
			Nodes: []graph.Node{
				testutil.Float("one", 1),
				testutil.Op("add1", "addNode"),
				testutil.Op("output1", "outputNode"),
			},
			Edges: []graph.Edge{
				testutil.Wire("e1", "one", "add1", "input-2"),
				testutil.Wire("e2", "add1", "output1", "input-1"),
			},
		}
		result, err := e.EvaluateFromOutput(ctx, g, "output1")
		require.NoError(t, err)
		testutil.RequireNodeValue(t, result, "add1", 1)
		testutil.RequireNodeValue(t, result, "output1", 1)
	})

	t.Run("lonely output node", func(t *testing.T) {
		g := graph.Graph{Nodes: []graph.Node{testutil.Op("output1", "outputNode")}}
		result, err := e.EvaluateFromOutput(ctx, g, "output1")
		require.NoError(t, err)
		testutil.RequireNodeValue(t, result, "output1", 0)
	})
}

func TestEvaluateFromOutput_Deterministic(t *testing.T) {
	ctx, _ := testutil.LoggedContext(t)
	e := New(testutil.CoreRegistry())
	g := testutil.ChainGraph()

	first, err := e.EvaluateFromOutput(ctx, g, "output1")
	require.NoError(t, err)
	second, err := e.EvaluateFromOutput(ctx, g, "output1")
	require.NoError(t, err)
	third, err := e.EvaluateFromOutput(ctx, first, "output1")
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated evaluation differs (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(first, third); diff != "" {
		t.Errorf("re-evaluating a result differs (-first +third):\n%s", diff)
	}
}

func TestEvaluateFromOutput_OnlyDependentsChange(t *testing.T) {
	ctx, _ := testutil.LoggedContext(t)
	e := New(testutil.CoreRegistry())

	g := testutil.SumGraph()
	g, err := graph.AddNode(g, testutil.Op("stray", "addNode"))
	require.NoError(t, err)
	g, err = graph.AddNode(g, testutil.Float("island", 11))
	require.NoError(t, err)

	first, err := e.EvaluateFromOutput(ctx, g, "output1")
	require.NoError(t, err)
	testutil.RequireNodeValue(t, first, "output1", 8)

	changed, err := graph.SetNodeValue(first, "input2", 10)
	require.NoError(t, err)

	second, err := e.EvaluateFromOutput(ctx, changed, "output1")
	require.NoError(t, err)

	testutil.RequireNodeValue(t, second, "add1", 15)
	testutil.RequireNodeValue(t, second, "output1", 15)
	testutil.RequireNodeValue(t, second, "input1", 5)
	testutil.RequireNoValue(t, second, "stray")
	testutil.RequireNodeValue(t, second, "island", 11)
}

func TestEvaluateFromOutput_DoesNotMutateInput(t *testing.T) {
	ctx, _ := testutil.LoggedContext(t)
	e := New(testutil.CoreRegistry())

	g := testutil.SumGraph()
	before := graph.Clone(g)

	_, err := e.EvaluateFromOutput(ctx, g, "output1")
	require.NoError(t, err)

	if diff := cmp.Diff(before, g); diff != "" {
		t.Errorf("input graph was modified (-before +after):\n%s", diff)
	}
}

func TestEvaluateFromOutput_UnknownOutput(t *testing.T) {
	ctx, logs := testutil.LoggedContext(t)
	e := New(testutil.CoreRegistry())
	g := testutil.SumGraph()

	result, err := e.EvaluateFromOutput(ctx, g, "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, graph.ErrNoOutput))
	assert.Equal(t, g, result)
	assert.Contains(t, logs.String(), "Output node not found")
}

func TestEvaluateFromOutput_UnregisteredTypeIsInert(t *testing.T) {
	ctx, _ := testutil.LoggedContext(t)
	e := New(testutil.CoreRegistry())

	g := graph.Graph{
		Nodes: []graph.Node{
			{ID: "weird", Type: "sqrtNode", Data: graph.NodeData{Value: graph.Float(4)}},
			testutil.Op("output1", "outputNode"),
		},
		Edges: []graph.Edge{testutil.Wire("e1", "weird", "output1", "input-1")},
	}

	result, err := e.EvaluateFromOutput(ctx, g, "output1")
	require.NoError(t, err)
	testutil.RequireNodeValue(t, result, "weird", 0)
	testutil.RequireNodeValue(t, result, "output1", 0)
}

func TestEvaluateFromOutput_CycleTerminates(t *testing.T) {
	ctx, logs := testutil.LoggedContext(t)
	e := New(testutil.CoreRegistry())

	result, err := e.EvaluateFromOutput(ctx, testutil.CycleGraph(), "output1")
	require.NoError(t, err)

	// addA = seed + addB, where addB is still being computed and falls back
	// to its (unset) cached value 0. addB = addA + 0.
	testutil.RequireNodeValue(t, result, "addA", 2)
	testutil.RequireNodeValue(t, result, "addB", 2)
	testutil.RequireNodeValue(t, result, "output1", 2)
	assert.Contains(t, logs.String(), "Cycle reached during evaluation")
}

func TestEvaluateFromOutput_SelfLoopTerminates(t *testing.T) {
	ctx, _ := testutil.LoggedContext(t)
	e := New(testutil.CoreRegistry())

	g := graph.Graph{
		Nodes: []graph.Node{
			testutil.Float("one", 1),
			{ID: "loop", Type: "addNode", Data: graph.NodeData{Value: graph.Float(10)}},
			testutil.Op("output1", "outputNode"),
		},
		Edges: []graph.Edge{
			testutil.Wire("e1", "one", "loop", "input-1"),
			testutil.Wire("e2", "loop", "loop", "input-2"),
			testutil.Wire("e3", "loop", "output1", "input-1"),
		},
	}

	result, err := e.EvaluateFromOutput(ctx, g, "output1")
	require.NoError(t, err)
	testutil.RequireNodeValue(t, result, "loop", 11)
	testutil.RequireNodeValue(t, result, "output1", 11)
}

// countingModule registers a source that counts its evaluations, and a
// source that always panics.
type countingModule struct {
	calls int
}

func (m *countingModule) Register(r *registry.Registry) {
	out := []registry.Socket{{ID: registry.Output1, Kind: registry.KindNumber, Multiple: true}}
	r.MustRegister(registry.NodeConfig{
		Type:    "counter",
		Outputs: out,
		Evaluate: func(registry.EvalContext, graph.Node) (cty.Value, error) {
			m.calls++
			return cty.NumberIntVal(2), nil
		},
	})
	r.MustRegister(registry.NodeConfig{
		Type:    "boom",
		Outputs: out,
		Evaluate: func(registry.EvalContext, graph.Node) (cty.Value, error) {
			panic("kaboom")
		},
	})
	r.MustRegister(registry.NodeConfig{
		Type:    "silent",
		Outputs: out,
	})
}

func customEngine() (*Engine, *countingModule) {
	m := &countingModule{}
	reg := registry.New(append(modules.Core(), m)...)
	return New(reg), m
}

func TestEvaluateFromOutput_SharedUpstreamEvaluatedOnce(t *testing.T) {
	ctx, _ := testutil.LoggedContext(t)
	e, counter := customEngine()

	g := graph.Graph{
		Nodes: []graph.Node{
			testutil.Op("src", "counter"),
			testutil.Op("left", "addNode"),
			testutil.Op("right", "addNode"),
			testutil.Op("top", "addNode"),
			testutil.Op("output1", "outputNode"),
		},
		Edges: []graph.Edge{
			testutil.Wire("e1", "src", "left", "input-1"),
			testutil.Wire("e2", "src", "left", "input-2"),
			testutil.Wire("e3", "src", "right", "input-1"),
			testutil.Wire("e4", "left", "top", "input-1"),
			testutil.Wire("e5", "right", "top", "input-2"),
			testutil.Wire("e6", "top", "output1", "input-1"),
		},
	}

	result, err := e.EvaluateFromOutput(ctx, g, "output1")
	require.NoError(t, err)
	assert.Equal(t, 1, counter.calls, "shared upstream node must be evaluated once per pass")
	testutil.RequireNodeValue(t, result, "output1", 6)

	_, err = e.EvaluateFromOutput(ctx, g, "output1")
	require.NoError(t, err)
	assert.Equal(t, 2, counter.calls, "memo must not survive across passes")
}

func TestEvaluateFromOutput_FailuresAreAbsorbed(t *testing.T) {
	ctx, logs := testutil.LoggedContext(t)
	e, _ := customEngine()

	g := graph.Graph{
		Nodes: []graph.Node{
			{ID: "bad", Type: "boom", Data: graph.NodeData{Value: graph.Float(9)}},
			testutil.Float("good", 4),
			testutil.Op("add1", "addNode"),
			testutil.Op("output1", "outputNode"),
		},
		Edges: []graph.Edge{
			testutil.Wire("e1", "bad", "add1", "input-1"),
			testutil.Wire("e2", "good", "add1", "input-2"),
			testutil.Wire("e3", "add1", "output1", "input-1"),
		},
	}

	result, err := e.EvaluateFromOutput(ctx, g, "output1")
	require.NoError(t, err)

	testutil.RequireNodeValue(t, result, "bad", 9)
	testutil.RequireNodeValue(t, result, "good", 4)
	testutil.RequireNodeValue(t, result, "add1", 13)
	testutil.RequireNodeValue(t, result, "output1", 13)
	assert.Contains(t, logs.String(), "kaboom")
}

func TestEvaluateFromOutput_WrongKindKeepsPreviousValue(t *testing.T) {
	ctx, _ := testutil.LoggedContext(t)
	e := New(testutil.CoreRegistry())

	// The connection validator would reject this edge; the engine must
	// still survive it.
	g := graph.Graph{
		Nodes: []graph.Node{
			{ID: "flag", Type: "booleanNode", Data: graph.NodeData{Value: graph.Float(1)}},
			testutil.Op("add1", "addNode"),
			testutil.Op("output1", "outputNode"),
		},
		Edges: []graph.Edge{
			testutil.Wire("e1", "flag", "add1", "input-1"),
			testutil.Wire("e2", "add1", "output1", "input-1"),
		},
	}

	result, err := e.EvaluateFromOutput(ctx, g, "output1")
	require.NoError(t, err)
	testutil.RequireNodeValue(t, result, "flag", 1)
	testutil.RequireNoValue(t, result, "add1")
	testutil.RequireNodeValue(t, result, "output1", 0)
}

func TestEvaluateFromOutput_MissingEvaluateIsZero(t *testing.T) {
	ctx, _ := testutil.LoggedContext(t)
	e, _ := customEngine()

	g := graph.Graph{
		Nodes: []graph.Node{
			{ID: "s", Type: "silent", Data: graph.NodeData{Value: graph.Float(3)}},
			testutil.Op("output1", "outputNode"),
		},
		Edges: []graph.Edge{testutil.Wire("e1", "s", "output1", "input-1")},
	}

	result, err := e.EvaluateFromOutput(ctx, g, "output1")
	require.NoError(t, err)
	testutil.RequireNodeValue(t, result, "s", 0)
	testutil.RequireNodeValue(t, result, "output1", 0)
}

func TestEvaluateFromOutput_BooleanResultsAreCachedAsNumbers(t *testing.T) {
	ctx, _ := testutil.LoggedContext(t)
	e := New(testutil.CoreRegistry())

	g := graph.Graph{
		Nodes: []graph.Node{
			testutil.Float("a", 2),
			testutil.Float("b", 2),
			testutil.Op("eq", "equalityNode"),
		},
		Edges: []graph.Edge{
			testutil.Wire("e1", "a", "eq", "input-1"),
			testutil.Wire("e2", "b", "eq", "input-2"),
		},
	}

	result, err := e.EvaluateFromOutput(ctx, g, "eq")
	require.NoError(t, err)
	testutil.RequireNodeValue(t, result, "eq", 1)
}

func TestEvaluateFromOutput_NaNSourceReadsAsZero(t *testing.T) {
	ctx, _ := testutil.LoggedContext(t)
	e := New(testutil.CoreRegistry())

	g := testutil.SumGraph()
	g.Nodes[0].Data.Value = graph.Float(math.NaN())

	var result graph.Graph
	require.NotPanics(t, func() {
		var err error
		result, err = e.EvaluateFromOutput(ctx, g, "output1")
		require.NoError(t, err)
	})

	testutil.RequireNodeValue(t, result, "input1", 0)
	testutil.RequireNodeValue(t, result, "add1", 3)
	testutil.RequireNodeValue(t, result, "output1", 3)
}
