package project

import (
	"context"

	"github.com/spf13/afero"

	kerrors "github.com/phravins/kivagen/internal/errors"
	"github.com/phravins/kivagen/internal/git"
	"github.com/phravins/kivagen/internal/output"
)

// Generator materializes a template tree plus the manifest into Target.
type Generator struct {
	Templates afero.Fs
	Root      string
	Target    afero.Fs
	Force     bool
}

// Result reports what a run wrote.
type Result struct {
	Created []string
	Skipped []string
}

// Generate writes the manifest, then every template file rendered with ctx.
func (g Generator) Generate(ctx Context, m Manifest) (Result, error) {
	copier := &Copier{Source: g.Templates, Target: g.Target, Force: g.Force}

	// 1. Manifest
	data, err := m.Encode()
	if err != nil {
		return Result{}, kerrors.NewIOError("encode", ManifestFile, err)
	}
	if err := copier.put(ManifestFile, data); err != nil {
		return Result{}, err
	}

	// 2. Template tree
	err = CopyTree(g.Templates, g.Root, ctx, copier.Write)
	return Result{Created: copier.Created(), Skipped: copier.Skipped()}, err
}

// initGit runs git init in dir. Failures are logged and otherwise ignored.
func initGit(ctx context.Context, dir string, mode git.Mode) bool {
	if err := git.Init(ctx, dir, mode); err != nil {
		output.Warn("git init failed", "dir", dir, "err", err)
		return false
	}
	output.Debug("initialised git repository", "dir", dir, "mode", mode)
	return true
}
