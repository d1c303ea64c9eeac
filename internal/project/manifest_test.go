package project

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phravins/kivagen/internal/prompt"
)

func TestNewManifest(t *testing.T) {
	m := NewManifest(prompt.Answers{Name: "my-cool-app", Version: "2.0.0", Description: "demo"}, "jane")

	data, err := m.Encode()
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "my-cool-app", doc["name"])
	assert.Equal(t, "2.0.0", doc["version"])
	assert.Equal(t, "demo", doc["description"])
	assert.Equal(t, true, doc["private"])
	assert.Equal(t, "MIT", doc["license"])
	assert.Equal(t, "jane", doc["author"])

	assert.Equal(t, map[string]interface{}{
		"dev":         "webpack serve --mode development",
		"build":       "webpack --mode production",
		"update":      "node scripts/updatePackage.js",
		"plop":        "plop",
		"lint:style":  "stylelint src/**/*.{css,less} --fix",
		"lint:script": "eslint src/**/*.{js,jsx,ts,tsx} --fix",
		"test:unit":   "jest",
		"prepare":     "husky install",
	}, doc["scripts"])

	deps := doc["dependencies"].(map[string]interface{})
	assert.Equal(t, "^17.0.2", deps["react"])
	devDeps := doc["devDependencies"].(map[string]interface{})
	assert.Equal(t, "^27.2.5", devDeps["jest"])
}

func TestManifestEncodeKeyOrder(t *testing.T) {
	data, err := NewManifest(prompt.Answers{Name: "a", Version: "1.0.0"}, "u").Encode()
	require.NoError(t, err)
	s := string(data)

	order := []string{`"name"`, `"version"`, `"description"`, `"private"`, `"scripts"`, `"author"`, `"license"`, `"dependencies"`, `"devDependencies"`}
	last := -1
	for _, key := range order {
		idx := strings.Index(s, key)
		require.GreaterOrEqual(t, idx, 0, key)
		assert.Greater(t, idx, last, key)
		last = idx
	}

	scripts := []string{`"dev"`, `"build"`, `"update"`, `"plop"`, `"lint:style"`, `"lint:script"`, `"test:unit"`, `"prepare"`}
	last = -1
	for _, key := range scripts {
		idx := strings.Index(s, key)
		assert.Greater(t, idx, last, key)
		last = idx
	}

	assert.True(t, strings.HasSuffix(s, "}\n"))
	assert.Contains(t, s, "\n  \"name\": \"a\"")
}

func TestManifestDoesNotEscapeHTML(t *testing.T) {
	data, err := NewManifest(prompt.Answers{Name: "a", Version: "1.0.0", Description: "<b>&</b>"}, "u").Encode()
	require.NoError(t, err)
	assert.Contains(t, string(data), "<b>&</b>")
}

func TestManifestDependencyTablesAreCopies(t *testing.T) {
	m := NewManifest(prompt.Answers{}, "")
	m.Dependencies["react"] = "^99.0.0"
	assert.Equal(t, "^17.0.2", Dependencies["react"])
}
