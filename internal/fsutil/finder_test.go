package fsutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("# empty\n"), 0o600))
}

func TestFindFilesByExtension(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.hcl"))
	writeFile(t, filepath.Join(root, "a.hcl"))
	writeFile(t, filepath.Join(root, "nested", "c.hcl"))
	writeFile(t, filepath.Join(root, "notes.txt"))

	files, err := FindFilesByExtension(root, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.hcl"),
		filepath.Join(root, "b.hcl"),
		filepath.Join(root, "nested", "c.hcl"),
	}, files)

	assert.Panics(t, func() { _, _ = FindFilesByExtension(root, "") })
}

func TestResolvePath(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	single := filepath.Join(root, "graph.hcl")
	writeFile(t, single)
	other := filepath.Join(root, "graph.json")
	writeFile(t, other)

	t.Run("single file", func(t *testing.T) {
		files, err := ResolvePath(ctx, single, ".hcl")
		require.NoError(t, err)
		assert.Equal(t, []string{single}, files)
	})

	t.Run("directory", func(t *testing.T) {
		files, err := ResolvePath(ctx, root, ".hcl")
		require.NoError(t, err)
		assert.Equal(t, []string{single}, files)
	})

	t.Run("wrong extension", func(t *testing.T) {
		_, err := ResolvePath(ctx, other, ".hcl")
		assert.ErrorContains(t, err, "is not an .hcl file")
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := ResolvePath(ctx, filepath.Join(root, "nope"), ".hcl")
		assert.ErrorContains(t, err, "path not found")
	})
}
