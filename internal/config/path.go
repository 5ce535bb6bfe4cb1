package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath turns a config file path as a user would type it into an absolute path. "~" alone, or followed by a slash or backslash, becomes the home directory on
// every OS. Relative paths resolve against the working directory. If either lookup fails, the path is returned with what could be expanded.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if rest, ok := strings.CutPrefix(path, "~"); ok && (rest == "" || rest[0] == '/' || rest[0] == '\\') {
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			path = filepath.Join(home, strings.TrimLeft(rest, `/\`))
		}
	}
	if filepath.IsAbs(path) {
		return path
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// FindNearest searches upward from start (a directory or a file; the working directory if empty) for the first readable, non-empty file named fileName, and returns
// its path. It returns "" if none is found. fileName must be relative; FindNearest panics otherwise.
func FindNearest(fileName string, start string) string {
	if filepath.IsAbs(fileName) {
		panic("fileName shouldn't be absolute")
	}

	if start == "" {
		if wd, err := os.Getwd(); err == nil {
			start = wd
		}
	}
	if start == "" {
		return ""
	}
	if fi, err := os.Stat(start); err == nil && !fi.IsDir() {
		start = filepath.Dir(start)
	}

	for dir := start; ; dir = filepath.Dir(dir) {
		candidate := filepath.Join(dir, fileName)
		if data, err := os.ReadFile(candidate); err == nil && strings.TrimSpace(string(data)) != "" {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
	}
}
