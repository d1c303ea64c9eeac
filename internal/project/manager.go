package project

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/phravins/kivagen/assets"
	kerrors "github.com/phravins/kivagen/internal/errors"
	"github.com/phravins/kivagen/internal/git"
	"github.com/phravins/kivagen/internal/history"
	"github.com/phravins/kivagen/internal/output"
	"github.com/phravins/kivagen/internal/prompt"
	"github.com/phravins/kivagen/pkg/utils"
)

// Manager handles high-level project operations
type Manager struct {
	Workspace string

	// TemplateDir overrides the embedded template tree when set.
	TemplateDir string
	Author      string
	Force       bool
	InitGit     bool
	GitMode     git.Mode

	// History records each generated project when non-nil.
	History *history.Store
}

// CreateResult describes one finished scaffold.
type CreateResult struct {
	Result
	Dir      string
	Manifest Manifest
	GitReady bool
}

func NewManager(workspace string) *Manager {
	if workspace == "" {
		workspace, _ = os.Getwd()
	}
	return &Manager{Workspace: workspace, InitGit: true, GitMode: git.ModeExec}
}

// Destination resolves dir against the workspace.
func (m *Manager) Destination(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	dir = m.ExpandPath(dir)
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(m.Workspace, dir)
	}
	return filepath.Abs(dir)
}

// Templates returns the template source and its root directory.
func (m *Manager) Templates() (afero.Fs, string, error) {
	if m.TemplateDir == "" {
		return afero.FromIOFS{FS: assets.GetTemplatesFS()}, assets.TemplateRoot, nil
	}
	dir, err := m.ValidateParentDir(m.TemplateDir)
	if err != nil {
		return nil, "", err
	}
	return afero.NewOsFs(), dir, nil
}

// CreateProject scaffolds a project into dir from the collected answers.
func (m *Manager) CreateProject(ctx context.Context, dir string, answers prompt.Answers) (CreateResult, error) {
	dest, err := m.Destination(dir)
	if err != nil {
		return CreateResult{}, kerrors.NewIOError("resolve", dir, err)
	}

	src, root, err := m.Templates()
	if err != nil {
		return CreateResult{}, err
	}

	if err := utils.EnsureDir(dest); err != nil {
		return CreateResult{}, kerrors.NewIOError("mkdir", dest, err)
	}

	author := m.Author
	if author == "" {
		author = Author()
	}

	manifest := NewManifest(answers, author)
	gen := Generator{
		Templates: src,
		Root:      root,
		Target:    afero.NewBasePathFs(afero.NewOsFs(), dest),
		Force:     m.Force,
	}

	output.Debug("Generating project", "dir", dest, "templates", root)
	res, err := gen.Generate(NewContext(answers, author), manifest)
	out := CreateResult{Result: res, Dir: dest, Manifest: manifest}
	if err != nil {
		return out, err
	}

	if m.History != nil {
		if err := m.History.Add(answers.Name, answers.Version, dest); err != nil {
			output.Warn("could not record history", "err", err)
		}
	}

	if m.InitGit {
		out.GitReady = initGit(ctx, dest, m.GitMode)
	}
	return out, nil
}

// ValidateParentDir checks if the path exists and is a directory
func (m *Manager) ValidateParentDir(path string) (string, error) {
	expanded := m.ExpandPath(path)
	info, err := os.Stat(expanded)
	if os.IsNotExist(err) {
		return "", kerrors.NewNotFoundError(expanded, err)
	}
	if err != nil {
		return "", kerrors.NewIOError("stat", expanded, err)
	}
	if !info.IsDir() {
		return "", kerrors.NewIOError("stat", expanded, fmt.Errorf("path is not a directory"))
	}
	return expanded, nil
}

func (m *Manager) ExpandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				return home
			}
			if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
				return filepath.Join(home, path[2:])
			}
		}
	}
	return os.ExpandEnv(path)
}
