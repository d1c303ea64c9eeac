package git

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kerrors "github.com/phravins/kivagen/internal/errors"
)

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeEmbedded, ParseMode("embedded"))
	assert.Equal(t, ModeEmbedded, ParseMode(" Embedded "))
	assert.Equal(t, ModeExec, ParseMode("exec"))
	assert.Equal(t, ModeExec, ParseMode(""))
	assert.Equal(t, ModeExec, ParseMode("svn"))
}

func TestInitEmbedded(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(context.Background(), dir, ModeEmbedded))

	info, err := os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Running again on an existing repository is not an error.
	assert.NoError(t, Init(context.Background(), dir, ModeEmbedded))
}

func TestInitExec(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
	dir := t.TempDir()
	require.NoError(t, Init(context.Background(), dir, ModeExec))
	assert.DirExists(t, filepath.Join(dir, ".git"))
}

func TestInitExecMissingDir(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
	err := Init(context.Background(), filepath.Join(t.TempDir(), "missing"), ModeExec)
	require.Error(t, err)
	assert.True(t, errors.Is(err, kerrors.ErrExternalProcess))
}
