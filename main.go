package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/phravins/kivagen/internal/config"
	kerrors "github.com/phravins/kivagen/internal/errors"
	"github.com/phravins/kivagen/internal/git"
	"github.com/phravins/kivagen/internal/history"
	"github.com/phravins/kivagen/internal/output"
	"github.com/phravins/kivagen/internal/project"
	"github.com/phravins/kivagen/internal/prompt"
	"github.com/phravins/kivagen/internal/tui"
)

// generateOptions holds the root command flags.
type generateOptions struct {
	Yes         bool
	Name        string
	PkgVersion  string
	Description string
	AnswersFile string
	Force       bool
	NoGit       bool
	TemplateDir string
}

var (
	flagVerbose bool
	genOpts     generateOptions
)

var rootCmd = &cobra.Command{
	Use:     "kivagen [directory]",
	Version: config.Version,
	Short:   "Scaffold a React + TypeScript front-end project",
	Long: `kivagen asks for a package name, version and description, then writes a
webpack/jest front-end skeleton into the target directory (default: the
current directory), generates package.json and runs git init.

Examples:
  # Interactive, in the current directory
  kivagen

  # Non-interactive, into ./my-app
  kivagen my-app --yes --pkg-version 2.0.0 --description "demo"`,
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: initializeGlobals,
	SilenceUsage:      true,
	SilenceErrors:     true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}
		opts := genOpts
		if !opts.Yes && !isInteractive() {
			opts.Yes = true
		}
		return runGenerate(cmd.Context(), dir, opts, cfg, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "increase output verbosity")

	f := rootCmd.Flags()
	f.BoolVarP(&genOpts.Yes, "yes", "y", false, "do not prompt; use flags, answers file and defaults")
	f.StringVar(&genOpts.Name, "name", "", "package name (normalized to kebab-case)")
	f.StringVar(&genOpts.PkgVersion, "pkg-version", "", "package version (semver)")
	f.StringVar(&genOpts.Description, "description", "", "package description")
	f.StringVar(&genOpts.AnswersFile, "answers", "", "YAML file with name, version and description")
	f.BoolVar(&genOpts.Force, "force", false, "overwrite existing files with different content")
	f.BoolVar(&genOpts.NoGit, "no-git", false, "skip git init")
	f.StringVar(&genOpts.TemplateDir, "template-dir", "", "use this template tree instead of the built-in one")

	rootCmd.AddCommand(newManifestCmd())
	rootCmd.AddCommand(newTemplatesCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// initializeGlobals sets up logging based on global flags.
func initializeGlobals(_ *cobra.Command, _ []string) error {
	output.SetupLogging(flagVerbose)
	output.Debug("kivagen started", "version", config.Version)
	return nil
}

func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// presets gathers answers given up front: answers file first, flags on top.
func (o generateOptions) presets() (map[string]string, error) {
	presets := map[string]string{}
	if o.AnswersFile != "" {
		loaded, err := prompt.LoadAnswersFile(o.AnswersFile)
		if err != nil {
			return nil, err
		}
		presets = loaded
	}
	for key, v := range map[string]string{
		prompt.KeyName:        o.Name,
		prompt.KeyVersion:     o.PkgVersion,
		prompt.KeyDescription: o.Description,
	} {
		if v != "" {
			presets[key] = v
		}
	}
	return presets, nil
}

// collectAnswers resolves the answers for a project rooted at dest.
func collectAnswers(dest string, opts generateOptions, cfg *config.Config, w io.Writer) (prompt.Answers, error) {
	presets, err := opts.presets()
	if err != nil {
		return prompt.Answers{}, err
	}

	fields := prompt.Fields(filepath.Base(dest), cfg.DefaultVersion)
	if opts.Yes {
		return prompt.Resolve(fields, presets)
	}

	fmt.Fprintln(w, output.Welcome())
	return tui.RunPrompts(prompt.WithDefaults(fields, presets))
}

func runGenerate(ctx context.Context, dir string, opts generateOptions, cfg *config.Config, w io.Writer) error {
	mgr := project.NewManager("")
	mgr.Author = cfg.Author
	mgr.Force = opts.Force
	mgr.InitGit = cfg.GitInit && !opts.NoGit
	mgr.GitMode = git.ParseMode(cfg.GitMode)
	mgr.TemplateDir = cfg.TemplateDir
	if opts.TemplateDir != "" {
		mgr.TemplateDir = opts.TemplateDir
	}
	if cfg.History {
		if store, err := history.DefaultStore(); err == nil {
			mgr.History = store
		}
	}

	dest, err := mgr.Destination(dir)
	if err != nil {
		return kerrors.NewIOError("resolve", dir, err)
	}

	answers, err := collectAnswers(dest, opts, cfg, w)
	if err != nil {
		return err
	}

	res, err := mgr.CreateProject(ctx, dest, answers)
	output.FileList(w, res.Created, res.Skipped)
	if err != nil {
		return err
	}

	output.Info("Project generated", "name", answers.Name, "dir", res.Dir, "git", res.GitReady)
	output.Goodbye(w, dir)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *kerrors.ExitError
		if !errors.As(kerrors.Wrap(err), &exitErr) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(kerrors.ExitGeneralError)
		}
		if errors.Is(err, kerrors.ErrAborted) {
			fmt.Fprintln(os.Stderr, "Aborted.")
		} else {
			fmt.Fprintln(os.Stderr, output.ErrorStyle.Render(err.Error()))
		}
		os.Exit(exitErr.Code)
	}
}
