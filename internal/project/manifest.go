package project

import (
	"bytes"
	"encoding/json"
	"os"
	"os/user"

	"github.com/phravins/kivagen/internal/prompt"
)

// ManifestFile is the generated package manifest.
const ManifestFile = "package.json"

// Scripts is the fixed npm script table. Field order is the output order.
type Scripts struct {
	Dev        string `json:"dev"`
	Build      string `json:"build"`
	Update     string `json:"update"`
	Plop       string `json:"plop"`
	LintStyle  string `json:"lint:style"`
	LintScript string `json:"lint:script"`
	TestUnit   string `json:"test:unit"`
	Prepare    string `json:"prepare"`
}

// Manifest is the package.json document written into every project.
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description"`
	Private         bool              `json:"private"`
	Scripts         Scripts           `json:"scripts"`
	Author          string            `json:"author"`
	License         string            `json:"license"`
	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

// DefaultScripts are shared by every generated project.
var DefaultScripts = Scripts{
	Dev:        "webpack serve --mode development",
	Build:      "webpack --mode production",
	Update:     "node scripts/updatePackage.js",
	Plop:       "plop",
	LintStyle:  "stylelint src/**/*.{css,less} --fix",
	LintScript: "eslint src/**/*.{js,jsx,ts,tsx} --fix",
	TestUnit:   "jest",
	Prepare:    "husky install",
}

// Dependencies are the pinned runtime dependencies.
var Dependencies = map[string]string{
	"@ant-design/icons":     "^4.7.0",
	"@babel/polyfill":       "^7.12.1",
	"@systemlight/pure.css": "^1.0.0",
	"antd":                  "^4.16.13",
	"axios":                 "^0.21.1",
	"core-js":               "^3.9.0",
	"prop-types":            "^15.7.2",
	"qs":                    "^6.9.6",
	"react":                 "^17.0.2",
	"react-dom":             "^17.0.1",
}

// DevDependencies are the pinned development dependencies.
var DevDependencies = map[string]string{
	"@systemlight/fabric":                "^1.1.0",
	"@systemlight/webpack-config":        "^1.0.0",
	"@types/enzyme":                      "^3.10.9",
	"@types/jest":                        "^27.0.2",
	"@types/qs":                          "^6.9.5",
	"@types/react-dom":                   "^17.0.1",
	"@wojtekmaj/enzyme-adapter-react-17": "^0.6.3",
	"enzyme":                             "^3.11.0",
	"husky":                              "^7.0.2",
	"jest":                               "^27.2.5",
	"jest-enzyme":                        "^7.1.2",
	"lint-staged":                        "^11.2.3",
	"plop":                               "^2.7.4",
	"ts-jest":                            "^27.0.5",
}

// NewManifest builds the manifest for the given answers.
func NewManifest(answers prompt.Answers, author string) Manifest {
	return Manifest{
		Name:            answers.Name,
		Version:         answers.Version,
		Description:     answers.Description,
		Private:         true,
		Scripts:         DefaultScripts,
		Author:          author,
		License:         "MIT",
		Dependencies:    copyMap(Dependencies),
		DevDependencies: copyMap(DevDependencies),
	}
}

// Encode renders m as two-space indented JSON with a trailing newline.
func (m Manifest) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Author returns the user name of the invoking OS account.
func Author() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return os.Getenv("USERNAME")
}

func copyMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
