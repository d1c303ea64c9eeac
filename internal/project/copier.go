package project

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/valyala/fasttemplate"

	kerrors "github.com/phravins/kivagen/internal/errors"
	"github.com/phravins/kivagen/internal/output"
)

// Placeholder delimiters. A placeholder whose key is missing from the context
// is written back unchanged.
const (
	StartTag = "{{"
	EndTag   = "}}"
)

// Copier reads template files from Source, substitutes placeholders and
// writes the result into Target.
type Copier struct {
	Source afero.Fs
	Target afero.Fs
	Force  bool

	created []string
	skipped []string
}

// Render substitutes every placeholder in content that ctx knows about.
func Render(content string, ctx Context) string {
	return fasttemplate.ExecuteStringStd(content, StartTag, EndTag, ctx.Values())
}

// Write implements WriteFunc.
func (c *Copier) Write(dest string, entry Entry, ctx Context) error {
	content, err := readAll(c.Source, entry.AbsPath)
	if err != nil {
		return err
	}
	if err := c.put(dest, []byte(Render(string(content), ctx))); err != nil {
		return err
	}
	output.Debug("rendered template", "src", entry.RelPath, "dest", dest)
	return nil
}

// Created lists destination paths written so far.
func (c *Copier) Created() []string { return c.created }

// Skipped lists destination paths left alone because they already matched.
func (c *Copier) Skipped() []string { return c.skipped }

// put writes data to dest unless an identical file is already there. A
// different existing file is a conflict unless Force is set.
func (c *Copier) put(dest string, data []byte) error {
	existing, err := afero.ReadFile(c.Target, dest)
	switch {
	case err == nil && bytes.Equal(existing, data):
		c.skipped = append(c.skipped, dest)
		return nil
	case err == nil && !c.Force:
		return kerrors.NewConflictError(dest)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return kerrors.NewIOError("read", dest, err)
	}

	if dir := filepath.Dir(dest); dir != "." {
		if err := c.Target.MkdirAll(dir, 0755); err != nil {
			return kerrors.NewIOError("mkdir", dir, err)
		}
	}
	if err := writeAll(c.Target, dest, data); err != nil {
		return err
	}
	c.created = append(c.created, dest)
	return nil
}

func readAll(fsys afero.Fs, path string) ([]byte, error) {
	in, err := fsys.Open(path)
	if err != nil {
		return nil, statError(path, err)
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, kerrors.NewIOError("read", path, err)
	}
	return data, nil
}

func writeAll(fsys afero.Fs, path string, data []byte) error {
	out, err := fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return kerrors.NewIOError("write", path, err)
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return kerrors.NewIOError("write", path, err)
	}
	if err := out.Close(); err != nil {
		return kerrors.NewIOError("write", path, err)
	}
	return nil
}
