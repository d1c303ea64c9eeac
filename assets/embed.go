package assets

import (
	"embed"
	"io/fs"
	"path"
)

// TemplateRoot is the directory inside the embedded filesystem holding the
// default project template.
const TemplateRoot = "templates"

//go:embed all:templates
var assetsFS embed.FS

// GetTemplatesFS exposes the embedded filesystem that contains TemplateRoot.
func GetTemplatesFS() fs.FS {
	return assetsFS
}

// ListAssets returns every template file as a slash path relative to
// TemplateRoot, in lexical order.
func ListAssets() ([]string, error) {
	var files []string
	err := fs.WalkDir(assetsFS, TemplateRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			rel := p[len(TemplateRoot)+1:]
			files = append(files, path.Clean(rel))
		}
		return nil
	})
	return files, err
}
