package testutil

import (
	"testing"

	"github.com/specialistvlad/nodecalc/internal/graph"
	"github.com/stretchr/testify/require"
)

// RequireNodeValue fails the test unless the node exists and caches want.
func RequireNodeValue(t *testing.T, g graph.Graph, id string, want float64) {
	t.Helper()

	n, ok := graph.FindNode(g, id)
	require.True(t, ok, "node %q not found in graph", id)
	require.NotNil(t, n.Data.Value, "node %q has no cached value", id)
	require.Equal(t, want, *n.Data.Value, "unexpected value for node %q", id)
}

// RequireNoValue fails the test if the node has a cached value.
func RequireNoValue(t *testing.T, g graph.Graph, id string) {
	t.Helper()

	n, ok := graph.FindNode(g, id)
	require.True(t, ok, "node %q not found in graph", id)
	require.Nil(t, n.Data.Value, "node %q should not have a cached value", id)
}
