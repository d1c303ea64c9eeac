package project

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kerrors "github.com/phravins/kivagen/internal/errors"
)

func TestRender(t *testing.T) {
	ctx := testContext()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"known keys", "{{name}}@{{version}}: {{description}}", "my-cool-app@2.0.0: demo"},
		{"author", "by {{author}}", "by jane"},
		{"unknown key untouched", "{{name}} {{missing}}", "my-cool-app {{missing}}"},
		{"repeated", "{{name}}/{{name}}", "my-cool-app/my-cool-app"},
		{"no placeholders", "const a = {b: 1};", "const a = {b: 1};"},
		{"unterminated", "{{name", "{{name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.in, ctx))
		})
	}
}

func TestCopierWritesRenderedFiles(t *testing.T) {
	src := afero.NewMemMapFs()
	writeTree(t, src, "/tpl", map[string]string{
		"README.md":     "# {{name}}\n{{description}}\n",
		"a/b/deep.txt":  "v{{version}}",
		"gitignore":     "node_modules/\n",
		"a/gitignore":   "dist/\n",
		"untouched.txt": "{{unknown}}",
	})
	dst := afero.NewMemMapFs()

	c := &Copier{Source: src, Target: dst}
	require.NoError(t, CopyTree(src, "/tpl", testContext(), c.Write))

	readme, err := afero.ReadFile(dst, "README.md")
	require.NoError(t, err)
	assert.Equal(t, "# my-cool-app\ndemo\n", string(readme))

	deep, err := afero.ReadFile(dst, "a/b/deep.txt")
	require.NoError(t, err)
	assert.Equal(t, "v2.0.0", string(deep))

	for _, p := range []string{".gitignore", "a/.gitignore"} {
		ok, err := afero.Exists(dst, p)
		require.NoError(t, err)
		assert.True(t, ok, p)
	}
	gone, err := afero.Exists(dst, "gitignore")
	require.NoError(t, err)
	assert.False(t, gone)

	unknown, err := afero.ReadFile(dst, "untouched.txt")
	require.NoError(t, err)
	assert.Equal(t, "{{unknown}}", string(unknown))

	assert.Len(t, c.Created(), 5)
	assert.Empty(t, c.Skipped())
}

func TestCopierConflicts(t *testing.T) {
	src := afero.NewMemMapFs()
	writeTree(t, src, "/tpl", map[string]string{"a.txt": "{{name}}"})

	t.Run("identical file is skipped", func(t *testing.T) {
		dst := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(dst, "a.txt", []byte("my-cool-app"), 0644))

		c := &Copier{Source: src, Target: dst}
		require.NoError(t, CopyTree(src, "/tpl", testContext(), c.Write))
		assert.Equal(t, []string{"a.txt"}, c.Skipped())
		assert.Empty(t, c.Created())
	})

	t.Run("different file conflicts", func(t *testing.T) {
		dst := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(dst, "a.txt", []byte("local edits"), 0644))

		c := &Copier{Source: src, Target: dst}
		err := CopyTree(src, "/tpl", testContext(), c.Write)
		require.Error(t, err)
		assert.True(t, errors.Is(err, kerrors.ErrConflict))

		data, _ := afero.ReadFile(dst, "a.txt")
		assert.Equal(t, "local edits", string(data))
	})

	t.Run("force overwrites", func(t *testing.T) {
		dst := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(dst, "a.txt", []byte("local edits"), 0644))

		c := &Copier{Source: src, Target: dst, Force: true}
		require.NoError(t, CopyTree(src, "/tpl", testContext(), c.Write))

		data, _ := afero.ReadFile(dst, "a.txt")
		assert.Equal(t, "my-cool-app", string(data))
	})
}

func TestCopierWriteFailure(t *testing.T) {
	src := afero.NewMemMapFs()
	writeTree(t, src, "/tpl", map[string]string{"a.txt": "x"})

	c := &Copier{Source: src, Target: afero.NewReadOnlyFs(afero.NewMemMapFs())}
	err := CopyTree(src, "/tpl", testContext(), c.Write)
	require.Error(t, err)
	assert.True(t, errors.Is(err, kerrors.ErrIO))
}

func TestCopierMissingSource(t *testing.T) {
	c := &Copier{Source: afero.NewMemMapFs(), Target: afero.NewMemMapFs()}
	err := c.Write("a.txt", Entry{AbsPath: "/tpl/a.txt", RelPath: "a.txt", Name: "a.txt"}, testContext())
	require.Error(t, err)
	assert.True(t, errors.Is(err, kerrors.ErrNotFound))
}

func TestContextIsImmutable(t *testing.T) {
	ctx := testContext()
	values := ctx.Values()
	values["name"] = "changed"

	name, ok := ctx.Get("name")
	require.True(t, ok)
	assert.Equal(t, "my-cool-app", name)

	_, ok = ctx.Get("missing")
	assert.False(t, ok)
}
