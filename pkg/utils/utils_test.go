package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "package.json")
	require.NoError(t, os.WriteFile(file, []byte("{}"), 0644))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(dir))
	assert.True(t, DirExists(dir))
	assert.False(t, DirExists(file))
	assert.False(t, FileExists(filepath.Join(dir, "missing")))
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, EnsureDir(dir))
	assert.True(t, DirExists(dir))
	require.NoError(t, EnsureDir(dir))
}

func TestFindExecutableFallback(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "kivagen-fake-tool")
	require.NoError(t, os.WriteFile(bin, []byte(""), 0755))

	assert.Equal(t, bin, FindExecutable("kivagen-fake-tool", []string{filepath.Join(dir, "kivagen-*")}))
	assert.Empty(t, FindExecutable("kivagen-fake-tool", nil))
}
