// Package fsutil provides file system utility functions.
package fsutil

import (
	"os"
	"path/filepath"
)

// FindFirstFile probes each candidate directory in order for a regular file
// with the given name and returns the full path of the first hit. The bool
// result reports whether any candidate resolved. Empty candidate entries
// are skipped.
func FindFirstFile(dirs []string, name string) (string, bool) {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.Mode().IsRegular() {
			return path, true
		}
	}
	return "", false
}

// FirstExistingDir returns the first candidate that exists and is a
// directory, or "" if none do.
func FirstExistingDir(candidates []string) string {
	for _, dir := range candidates {
		info, err := os.Stat(dir)
		if err == nil && info.IsDir() {
			return dir
		}
	}
	return ""
}
