// Package git initialises a version-control repository in a generated project.
package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	gogit "github.com/go-git/go-git/v5"

	kerrors "github.com/phravins/kivagen/internal/errors"
	"github.com/phravins/kivagen/pkg/utils"
)

// Mode selects how the repository is created.
type Mode string

const (
	// ModeExec spawns the git binary.
	ModeExec Mode = "exec"

	// ModeEmbedded creates the repository in-process.
	ModeEmbedded Mode = "embedded"
)

// ParseMode maps a config value onto a Mode. Unknown values fall back to exec.
func ParseMode(s string) Mode {
	if Mode(strings.ToLower(strings.TrimSpace(s))) == ModeEmbedded {
		return ModeEmbedded
	}
	return ModeExec
}

// Init creates a repository in dir. An existing repository is left as is.
func Init(ctx context.Context, dir string, mode Mode) error {
	if mode == ModeEmbedded {
		_, err := gogit.PlainInit(dir, false)
		if err != nil && !errors.Is(err, gogit.ErrRepositoryAlreadyExists) {
			return fmt.Errorf("%w: go-git init: %v", kerrors.ErrExternalProcess, err)
		}
		return nil
	}

	bin := utils.FindExecutable("git", nil)
	if bin == "" {
		return fmt.Errorf("%w: git not found in PATH", kerrors.ErrExternalProcess)
	}
	cmd := exec.CommandContext(ctx, bin, "init")
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: git init: %v: %s", kerrors.ErrExternalProcess, err, strings.TrimSpace(string(out)))
	}
	return nil
}
