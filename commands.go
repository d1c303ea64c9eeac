package main

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/phravins/kivagen/internal/config"
	kerrors "github.com/phravins/kivagen/internal/errors"
	"github.com/phravins/kivagen/internal/history"
	"github.com/phravins/kivagen/internal/output"
	"github.com/phravins/kivagen/internal/project"
	"github.com/phravins/kivagen/internal/prompt"
)

func newManifestCmd() *cobra.Command {
	var opts generateOptions

	c := &cobra.Command{
		Use:   "manifest [directory]",
		Short: "Print the package.json that would be generated",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			opts.Yes = true
			return runManifest(dir, opts, cfg, cmd.OutOrStdout())
		},
	}

	c.Flags().StringVar(&opts.Name, "name", "", "package name (normalized to kebab-case)")
	c.Flags().StringVar(&opts.PkgVersion, "pkg-version", "", "package version (semver)")
	c.Flags().StringVar(&opts.Description, "description", "", "package description")
	c.Flags().StringVar(&opts.AnswersFile, "answers", "", "YAML file with name, version and description")
	return c
}

func runManifest(dir string, opts generateOptions, cfg *config.Config, w io.Writer) error {
	mgr := project.NewManager("")
	dest, err := mgr.Destination(dir)
	if err != nil {
		return kerrors.NewIOError("resolve", dir, err)
	}

	answers, err := collectAnswers(dest, opts, cfg, w)
	if err != nil {
		return err
	}

	author := cfg.Author
	if author == "" {
		author = project.Author()
	}
	data, err := project.NewManifest(answers, author).Encode()
	if err != nil {
		return err
	}
	fmt.Fprint(w, output.Highlight(string(data), "json"))
	return nil
}

func newTemplatesCmd() *cobra.Command {
	var templateDir string

	c := &cobra.Command{
		Use:   "templates [query]",
		Short: "List the files of the template tree and where they are written",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			mgr := project.NewManager("")
			mgr.TemplateDir = cfg.TemplateDir
			if templateDir != "" {
				mgr.TemplateDir = templateDir
			}
			query := ""
			if len(args) > 0 {
				query = args[0]
			}
			return listTemplates(mgr, query, cmd.OutOrStdout())
		},
	}

	c.Flags().StringVar(&templateDir, "template-dir", "", "template tree to inspect instead of the built-in one")
	return c
}

func listTemplates(mgr *project.Manager, query string, w io.Writer) error {
	src, root, err := mgr.Templates()
	if err != nil {
		return err
	}

	dests := map[string]string{}
	var rels []string
	err = project.Walk(src, root, func(e project.Entry) error {
		rels = append(rels, e.RelPath)
		dests[e.RelPath] = project.DestPath(e)
		return nil
	})
	if err != nil {
		return err
	}

	if query == "" {
		sort.Strings(rels)
	} else {
		matches := fuzzy.Find(query, rels)
		rels = rels[:0:0]
		for _, m := range matches {
			rels = append(rels, m.Str)
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, rel := range rels {
		if dest := dests[rel]; dest != rel {
			fmt.Fprintf(tw, "%s\t-> %s\n", filepath.ToSlash(rel), filepath.ToSlash(dest))
			continue
		}
		fmt.Fprintf(tw, "%s\t\n", filepath.ToSlash(rel))
	}
	return tw.Flush()
}

func newHistoryCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "history",
		Short: "Show projects generated on this machine",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := history.DefaultStore()
			if err != nil {
				return err
			}
			return printHistory(store, cmd.OutOrStdout())
		},
	}

	var days int
	clean := &cobra.Command{
		Use:   "clean",
		Short: "Remove history entries older than --days",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := history.DefaultStore()
			if err != nil {
				return err
			}
			removed, err := store.DeleteOld(days)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d entries older than %d days\n", removed, days)
			return nil
		},
	}
	clean.Flags().IntVar(&days, "days", 30, "keep entries newer than this many days")
	c.AddCommand(clean)
	return c
}

func printHistory(store *history.Store, w io.Writer) error {
	entries, err := store.Load()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, "No projects generated yet.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tVERSION\tCREATED\tPATH")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Name, e.Version, e.CreatedAt.Format("2006-01-02 15:04"), e.Path)
	}
	return tw.Flush()
}

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Show or change kivagen settings (~/.kivagen.yaml)",
	}

	c.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := config.LoadConfig(); err != nil {
				return err
			}
			for _, key := range config.Keys() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", key, viper.Get(key))
			}
			return nil
		},
	})

	c.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Persist one setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := config.LoadConfig(); err != nil {
				return err
			}
			key, value, err := parseSetting(args[0], args[1])
			if err != nil {
				return err
			}
			if err := config.SaveConfig(key, value); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", key, value)
			return nil
		},
	})
	return c
}

// parseSetting validates key and converts value to the type the key holds.
func parseSetting(key, raw string) (string, interface{}, error) {
	key = strings.ToLower(key)
	if !config.IsKey(key) {
		return "", nil, kerrors.NewValidationError(key,
			fmt.Sprintf("unknown config key %q", key),
			"Valid keys: "+strings.Join(config.Keys(), ", "))
	}

	switch key {
	case config.KeyGitInit, config.KeyHistory:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return "", nil, kerrors.NewValidationError(key, fmt.Sprintf("%q is not a boolean", raw), "Use true or false")
		}
		return key, b, nil
	case config.KeyGitMode:
		if raw != "exec" && raw != "embedded" {
			return "", nil, kerrors.NewValidationError(key, fmt.Sprintf("unknown git mode %q", raw), "Use exec or embedded")
		}
	case config.KeyDefaultVersion:
		if err := prompt.ValidateVersion(prompt.CleanVersion(raw)); err != nil {
			return "", nil, err
		}
		return key, prompt.CleanVersion(raw), nil
	}
	return key, raw, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the kivagen version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "kivagen", config.Version)
		},
	}
}
