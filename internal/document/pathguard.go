package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PathGuard confines file access to a configured root directory when the
// pipeline runs as a service, so tool callers cannot reach outside it.
type PathGuard struct {
	root string
}

// NewPathGuard creates a guard for the given directory. The directory is not
// required to exist yet.
func NewPathGuard(root string) (*PathGuard, error) {
	if root == "" {
		return nil, fmt.Errorf("configured directory cannot be empty")
	}
	return &PathGuard{root: root}, nil
}

// Root returns the configured directory.
func (g *PathGuard) Root() string {
	return g.root
}

// Validate checks that path resolves inside the configured directory.
// Symlinks are resolved on both sides before the prefix comparison.
func (g *PathGuard) Validate(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	// If the configured directory does not exist yet, skip confinement.
	if _, err := os.Stat(g.root); os.IsNotExist(err) {
		return nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}
	absRoot, err := filepath.Abs(g.root)
	if err != nil {
		return fmt.Errorf("failed to resolve configured directory: %w", err)
	}

	realPath := filepath.Clean(absPath)
	if resolved, err := filepath.EvalSymlinks(realPath); err == nil {
		realPath = resolved
	}
	realRoot := filepath.Clean(absRoot)
	if resolved, err := filepath.EvalSymlinks(realRoot); err == nil {
		realRoot = resolved
	}

	rootWithSep := realRoot
	if !strings.HasSuffix(rootWithSep, string(filepath.Separator)) {
		rootWithSep += string(filepath.Separator)
	}
	if realPath != realRoot && !strings.HasPrefix(realPath, rootWithSep) {
		return fmt.Errorf("path is outside configured directory: %s", path)
	}
	return nil
}
