package project

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	kerrors "github.com/phravins/kivagen/internal/errors"
)

// ReservedGitignore is shipped in template trees in place of ".gitignore",
// which packaging tools drop from template payloads.
const ReservedGitignore = "gitignore"

// Entry is one template file found during a walk.
type Entry struct {
	AbsPath string
	RelPath string
	Name    string
}

// WriteFunc receives the computed destination for each template file.
type WriteFunc func(dest string, entry Entry, ctx Context) error

// Walk visits every file below root. It keeps an explicit stack instead of
// recursing; the order files are visited in is unspecified.
func Walk(fsys afero.Fs, root string, fn func(Entry) error) error {
	children, err := readNames(fsys, root, "")
	if err != nil {
		return err
	}

	stack := children
	for len(stack) > 0 {
		rel := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		abs := filepath.Join(root, rel)
		info, err := fsys.Stat(abs)
		if err != nil {
			return statError(abs, err)
		}

		if info.IsDir() {
			sub, err := readNames(fsys, abs, rel)
			if err != nil {
				return err
			}
			stack = append(stack, sub...)
			continue
		}

		if err := fn(Entry{AbsPath: abs, RelPath: rel, Name: filepath.Base(rel)}); err != nil {
			return err
		}
	}
	return nil
}

// DestPath mirrors the entry's relative path, renaming a "gitignore" file to
// ".gitignore" at any depth.
func DestPath(entry Entry) string {
	if entry.Name == ReservedGitignore {
		return filepath.Join(filepath.Dir(entry.RelPath), ".gitignore")
	}
	return entry.RelPath
}

// CopyTree walks root and hands each file to write with its destination. The
// first error stops the walk; files already written stay in place.
func CopyTree(fsys afero.Fs, root string, ctx Context, write WriteFunc) error {
	return Walk(fsys, root, func(entry Entry) error {
		return write(DestPath(entry), entry, ctx)
	})
}

// readNames lists dir and returns the children joined onto prefix.
func readNames(fsys afero.Fs, dir, prefix string) ([]string, error) {
	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, statError(dir, err)
	}
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, filepath.Join(prefix, info.Name()))
	}
	return names, nil
}

func statError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return kerrors.NewNotFoundError(path, err)
	}
	return kerrors.NewIOError("read", path, err)
}
