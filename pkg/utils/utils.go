package utils

import (
	"os"
	"os/exec"
	"path/filepath"
)

// FileExists returns true if the given path exists and is a file
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// DirExists returns true if the given path exists and is a directory
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// EnsureDir creates a directory (and any parents) if it doesn't exist
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// FindExecutable looks cmdName up in PATH, then in the fallback glob patterns.
// It returns "" when nothing matches.
func FindExecutable(cmdName string, fallbackGlobs []string) string {
	if path, err := exec.LookPath(cmdName); err == nil {
		return path
	}

	for _, pattern := range fallbackGlobs {
		matches, err := filepath.Glob(pattern)
		if err == nil && len(matches) > 0 {
			return matches[0]
		}
	}

	return ""
}
