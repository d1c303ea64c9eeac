package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLoggingLevels(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggingTo(&buf, false)
	Debug("hidden")
	Info("shown", "file", "a.txt")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "a.txt")

	buf.Reset()
	SetupLoggingTo(&buf, true)
	Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")
}

func TestNextSteps(t *testing.T) {
	md := NextSteps("my-app")
	assert.Contains(t, md, "cd my-app")
	assert.Contains(t, md, "git init")
	assert.Contains(t, md, "npm i")

	assert.NotContains(t, NextSteps("."), "cd .")
}

func TestWelcome(t *testing.T) {
	assert.Contains(t, Welcome(), welcomeMessage)
}

func TestHighlightKeepsContent(t *testing.T) {
	src := `{"name": "demo"}`
	out := Highlight(src, "json")
	assert.Contains(t, out, "name")
	assert.Contains(t, out, "demo")
}

func TestFileList(t *testing.T) {
	var buf bytes.Buffer
	FileList(&buf, []string{"package.json"}, []string{"README.md"})
	assert.Contains(t, buf.String(), "package.json")
	assert.Contains(t, buf.String(), "README.md")
}
