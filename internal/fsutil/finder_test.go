package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	t.Run("finds files recursively in lexical order", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
		for _, name := range []string{"b.tf", "a.tf", "notes.txt", filepath.Join("sub", "c.tf")} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(""), 0o644))
		}

		files, err := FindFilesByExtension(dir, ".tf")
		require.NoError(t, err)

		want := []string{
			filepath.Join(dir, "a.tf"),
			filepath.Join(dir, "b.tf"),
			filepath.Join(dir, "sub", "c.tf"),
		}
		assert.Equal(t, want, files)
	})

	t.Run("empty directory yields no files", func(t *testing.T) {
		files, err := FindFilesByExtension(t.TempDir(), ".tf")
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("missing root is an error", func(t *testing.T) {
		_, err := FindFilesByExtension(filepath.Join(t.TempDir(), "nope"), ".tf")
		assert.Error(t, err)
	})

	t.Run("empty extension is an error", func(t *testing.T) {
		_, err := FindFilesByExtension(t.TempDir(), "")
		assert.Error(t, err)
	})
}
