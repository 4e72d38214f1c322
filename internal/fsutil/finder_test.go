package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFirstFile(t *testing.T) {
	tmp := t.TempDir()
	first := filepath.Join(tmp, "first")
	second := filepath.Join(tmp, "second")
	require.NoError(t, os.Mkdir(first, 0755))
	require.NoError(t, os.Mkdir(second, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(second, "avrdude.conf"), []byte("x"), 0644))

	t.Run("first existing candidate wins", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(first, "avrdude.conf"), []byte("x"), 0644))
		path, ok := FindFirstFile([]string{first, second}, "avrdude.conf")
		require.True(t, ok)
		assert.Equal(t, filepath.Join(first, "avrdude.conf"), path)
	})

	t.Run("later candidates are probed", func(t *testing.T) {
		path, ok := FindFirstFile([]string{filepath.Join(tmp, "missing"), second}, "avrdude.conf")
		require.True(t, ok)
		assert.Equal(t, filepath.Join(second, "avrdude.conf"), path)
	})

	t.Run("empty candidates are skipped", func(t *testing.T) {
		path, ok := FindFirstFile([]string{"", second}, "avrdude.conf")
		require.True(t, ok)
		assert.Equal(t, filepath.Join(second, "avrdude.conf"), path)
	})

	t.Run("directories do not count as files", func(t *testing.T) {
		dirAsFile := filepath.Join(tmp, "third")
		require.NoError(t, os.MkdirAll(filepath.Join(dirAsFile, "avrdude.conf"), 0755))
		_, ok := FindFirstFile([]string{dirAsFile}, "avrdude.conf")
		assert.False(t, ok)
	})

	t.Run("no candidate resolves", func(t *testing.T) {
		_, ok := FindFirstFile([]string{filepath.Join(tmp, "nope")}, "avrdude.conf")
		assert.False(t, ok)
	})
}

func TestFirstExistingDir(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "present")
	require.NoError(t, os.Mkdir(dir, 0755))

	assert.Equal(t, dir, FirstExistingDir([]string{filepath.Join(tmp, "absent"), dir}))
	assert.Equal(t, "", FirstExistingDir([]string{filepath.Join(tmp, "absent")}))

	file := filepath.Join(tmp, "plainfile")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	assert.Equal(t, "", FirstExistingDir([]string{file}))
}
