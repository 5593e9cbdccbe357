package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiskWriter_WritesAndSkipsUnchanged(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "models", "samples"), 0o750))
	w := NewDiskWriter(root)

	res, err := w.WriteFile("models/samples/README.md", "# Samples Model\n")
	require.NoError(t, err)
	require.True(t, res.Changed)
	require.NotEmpty(t, res.Fingerprint)

	data, err := os.ReadFile(filepath.Join(root, "models", "samples", "README.md"))
	require.NoError(t, err)
	require.Equal(t, "# Samples Model\n", string(data))

	again, err := w.WriteFile("models/samples/README.md", "# Samples Model\n")
	require.NoError(t, err)
	require.False(t, again.Changed)
	require.Equal(t, res.Fingerprint, again.Fingerprint)

	changed, err := w.WriteFile("models/samples/README.md", "# Samples Model\n\nmore\n")
	require.NoError(t, err)
	require.True(t, changed.Changed)
	require.NotEqual(t, res.Fingerprint, changed.Fingerprint)
}

func TestDiskWriter_RejectsEscapingPaths(t *testing.T) {
	w := NewDiskWriter(t.TempDir())
	_, err := w.WriteFile("../outside.md", "x")
	require.Error(t, err)
	_, err = w.WriteFile("/abs.md", "x")
	require.Error(t, err)
}

func TestMemoryWriter(t *testing.T) {
	w := NewMemoryWriter()
	res, err := w.WriteFile("b.md", "b")
	require.NoError(t, err)
	require.True(t, res.Changed)
	res, err = w.WriteFile("b.md", "b")
	require.NoError(t, err)
	require.False(t, res.Changed)
	_, _ = w.WriteFile("a.md", "a")
	require.Equal(t, map[string]string{"a.md": "a", "b.md": "b"}, w.Files)
}

func TestFingerprint_Stable(t *testing.T) {
	require.Equal(t, Fingerprint("same"), Fingerprint("same"))
	require.NotEqual(t, Fingerprint("one"), Fingerprint("two"))
}

func TestDiskWriter_CreatesMissingDirectory(t *testing.T) {
	root := t.TempDir()
	res, err := NewDiskWriter(root).WriteFile("models/README.md", "# Models\n")
	require.NoError(t, err)
	require.True(t, res.Changed)
	require.FileExists(t, filepath.Join(root, "models", "README.md"))
}
