package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/phravins/kivagen/assets"
	"github.com/phravins/kivagen/internal/project"
	"github.com/phravins/kivagen/internal/prompt"
	"github.com/phravins/kivagen/pkg/utils"
)

func main() {
	fmt.Println("Verifying embedded templates...")

	testDir, err := os.MkdirTemp("", "kivagen-verify-")
	if err != nil {
		fmt.Printf("FAILED: %v\n", err)
		os.Exit(1)
	}
	defer os.RemoveAll(testDir)

	answers := prompt.Answers{Name: "verify-app", Version: "1.0.0", Description: "verify"}
	gen := &project.Generator{
		Templates: afero.FromIOFS{FS: assets.GetTemplatesFS()},
		Root:      assets.TemplateRoot,
		Target:    afero.NewBasePathFs(afero.NewOsFs(), testDir),
	}
	res, err := gen.Generate(project.NewContext(answers, "kivagen"), project.NewManifest(answers, "kivagen"))
	if err != nil {
		fmt.Printf("FAILED: %v\n", err)
		os.Exit(1)
	}

	listed, err := assets.ListAssets()
	if err != nil {
		fmt.Printf("FAILED: %v\n", err)
		os.Exit(1)
	}
	if len(res.Created) != len(listed)+1 {
		fmt.Printf("FAILED: wrote %d files for %d templates\n", len(res.Created), len(listed))
		os.Exit(1)
	}

	for _, dir := range []string{"src", "tests/__mocks__"} {
		if !utils.DirExists(filepath.Join(testDir, filepath.FromSlash(dir))) {
			fmt.Printf("FAILED: directory %s missing\n", dir)
			os.Exit(1)
		}
	}

	for _, name := range []string{".gitignore", project.ManifestFile} {
		fmt.Printf("Check: %s... ", name)
		if !utils.FileExists(filepath.Join(testDir, name)) {
			fmt.Println("FAILED (missing)")
			os.Exit(1)
		}
		fmt.Println("PASSED")
	}
	if utils.FileExists(filepath.Join(testDir, project.ReservedGitignore)) {
		fmt.Println("FAILED: gitignore was not renamed")
		os.Exit(1)
	}

	for _, rel := range res.Created {
		content, err := os.ReadFile(filepath.Join(testDir, rel))
		if err != nil {
			fmt.Printf("FAILED (Read Error): %v\n", err)
			os.Exit(1)
		}
		if strings.Contains(string(content), "{{name}}") {
			fmt.Printf("FAILED: placeholder left in %s\n", rel)
			os.Exit(1)
		}
	}

	fmt.Printf("All %d files verified!\n", len(res.Created))
}
