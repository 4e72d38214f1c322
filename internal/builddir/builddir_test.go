package builddir

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Run("posix candidate derived from os name", func(t *testing.T) {
		t.Chdir(t.TempDir())
		require.NoError(t, os.MkdirAll(filepath.Join("build_linux", "src"), 0755))

		assert.Equal(t, "build_linux/src", resolve(context.Background(), "linux"))
	})

	t.Run("windows probes candidates in order", func(t *testing.T) {
		t.Chdir(t.TempDir())
		require.NoError(t, os.MkdirAll(filepath.Join("build_mingw64", "src"), 0755))

		assert.Equal(t, "build_mingw64/src", resolve(context.Background(), "windows"))

		// msvc takes precedence once present
		require.NoError(t, os.MkdirAll(filepath.Join("build_msvc", "src"), 0755))
		assert.Equal(t, "build_msvc/src", resolve(context.Background(), "windows"))
	})

	t.Run("unresolved is a soft failure", func(t *testing.T) {
		t.Chdir(t.TempDir())
		assert.Equal(t, "", resolve(context.Background(), "linux"))
		assert.Equal(t, "", resolve(context.Background(), "windows"))
	})
}
