package system

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/nodecalc/internal/ctxlog"
	"github.com/specialistvlad/nodecalc/internal/graph"
	"github.com/specialistvlad/nodecalc/internal/hcl"
	"github.com/specialistvlad/nodecalc/internal/nodeid"
	"github.com/specialistvlad/nodecalc/internal/registry"
	"github.com/specialistvlad/nodecalc/internal/session"
	"github.com/specialistvlad/nodecalc/modules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedHCL = `
graph "calc" {
  output = "output1"

  node "floatNode" "input1" {
    value = 5
  }
  node "floatNode" "input2" {
    value = 3
  }
  node "floatNode" "input3" {
    value = 1
  }
  node "addNode" "add1" {}
  node "minusNode" "minus1" {}
  node "outputNode" "output1" {}

  edge "e1" {
    from = "input1.output-1"
    to   = "add1.input-1"
  }
  edge "e2" {
    from = "input2.output-1"
    to   = "add1.input-2"
  }
  edge "e3" {
    from = "add1.output-1"
    to   = "minus1.input-1"
  }
  edge "e4" {
    from = "input3.output-1"
    to   = "minus1.input-2"
  }
  edge "e5" {
    from = "minus1.output-1"
    to   = "output1.input-1"
  }
}
`

// openSession loads seedHCL from disk into a fresh session over the core node types.
func openSession(t *testing.T) (context.Context, *session.Session, *bytes.Buffer) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "calc.hcl")
	require.NoError(t, os.WriteFile(path, []byte(seedHCL), 0600))

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	seed, err := hcl.NewLoader().Load(ctx, path)
	require.NoError(t, err)

	reg := registry.New(modules.Core()...)
	require.NoError(t, reg.Validate(ctx))

	s := session.New(reg, session.WithOutput(seed.Output))
	dropped, err := s.Load(ctx, seed.Graph)
	require.NoError(t, err)
	require.Empty(t, dropped)
	return ctx, s, logs
}

func valueOf(t *testing.T, g graph.Graph, id string) float64 {
	t.Helper()
	n, ok := graph.FindNode(g, id)
	require.True(t, ok, "node %q not found", id)
	require.NotNil(t, n.Data.Value, "node %q has no value", id)
	return *n.Data.Value
}

func TestEvaluation_SeedFileThroughEdits(t *testing.T) {
	ctx, s, _ := openSession(t)

	// --- Initial evaluation ---
	assert.Equal(t, 7.0, valueOf(t, s.Graph(), "output1"))
	assert.Equal(t, "const input_t1 = 5;\nconst input_t2 = 3;\nconst sum_d1 = input_t1 + input_t2;\nconst input_t3 = 1;\nconst diff_s1 = sum_d1 - input_t3;\nconst result_t1 = diff_s1;", s.Code())

	// --- Changing an input re-evaluates its dependents ---
	require.NoError(t, s.SetValue(ctx, "input3", 10))
	assert.Equal(t, -2.0, valueOf(t, s.Graph(), "minus1"))
	assert.Equal(t, -2.0, valueOf(t, s.Graph(), "output1"))
	assert.Contains(t, s.Code(), "const input_t3 = 10;")

	// --- Deleting a node removes its edges; the open input reads as zero ---
	s.DeleteNode(ctx, "input3")
	g := s.Graph()
	_, found := graph.FindNode(g, "input3")
	assert.False(t, found)
	for _, e := range g.Edges {
		assert.NotEqual(t, "input3", e.Source)
	}
	assert.Equal(t, 8.0, valueOf(t, g, "output1"))
	assert.Contains(t, s.Code(), "const diff_s1 = sum_d1 - 0;")

	// --- The freed input accepts a new wire ---
	to := nodeid.MustParse("minus1.input-2")
	_, ok := s.Connect(ctx, nodeid.Connection(nodeid.MustParse("input2.output-1"), nodeid.MustParse("add1.input-1")))
	assert.False(t, ok, "add1.input-1 is already wired to input1")

	n, err := s.AddNode(ctx, "floatNode", graph.Position{X: 10, Y: 20})
	require.NoError(t, err)
	require.NoError(t, s.SetValue(ctx, n.ID, 2.5))
	_, ok = s.Connect(ctx, nodeid.Connection(nodeid.Endpoint{Node: n.ID, Socket: "output-1"}, to))
	require.True(t, ok)
	assert.Equal(t, 5.5, valueOf(t, s.Graph(), "output1"))
}

func TestEvaluation_CycleIsTruncated(t *testing.T) {
	ctx, s, logs := openSession(t)

	// Free add1's second input, then feed minus1 back into it.
	s.DeleteNode(ctx, "input2")
	_, ok := s.Connect(ctx, nodeid.Connection(
		nodeid.MustParse("minus1.output-1"),
		nodeid.MustParse("add1.input-2"),
	))
	require.True(t, ok)

	// Evaluation finishes and the loop is cut where it closes.
	g := s.Graph()
	assert.Equal(t, valueOf(t, g, "minus1"), valueOf(t, g, "output1"))
	assert.Contains(t, logs.String(), "Graph contains a cycle, results are truncated.")
	assert.Equal(t, "const input_t1 = 5;\nconst sum_d1 = input_t1 + diff_s1;\nconst input_t3 = 1;\nconst diff_s1 = sum_d1 - input_t3;\nconst result_t1 = diff_s1;", s.Code())
}
