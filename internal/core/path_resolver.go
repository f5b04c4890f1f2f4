package core

import (
	"os"
	"path/filepath"
	"strings"
)

// PathResolver turns the paths given on the command line (config files,
// identity files, export targets) into absolute paths. A leading '~' expands
// to the user's home directory and relative paths are rooted at baseDir.
type PathResolver struct {
	baseDir string
}

// NewPathResolver returns a resolver rooted at baseDir. An empty baseDir
// resolves relative paths against the working directory.
func NewPathResolver(baseDir string) PathResolver {
	return PathResolver{baseDir: baseDir}
}

// Resolve returns the absolute form of p. An empty p stays empty, which the
// commands read as "use the embedded record".
func (pr PathResolver) Resolve(p string) (string, error) {
	if p == "" {
		return "", nil
	}

	if p == "~" || strings.HasPrefix(p, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		p = filepath.Join(homeDir, strings.TrimPrefix(p, "~"))
	}

	if filepath.IsAbs(p) {
		return filepath.Clean(p), nil
	}

	if pr.baseDir != "" {
		return filepath.Join(pr.baseDir, p), nil
	}

	return filepath.Abs(p)
}
