// Package fs provides file system adapters for locating and removing project files.
package fs

import (
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/xambuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProjectFinder = (*Finder)(nil)

// Finder implements ports.ProjectFinder using filepath.Glob.
type Finder struct{}

// NewFinder creates a new Finder.
func NewFinder() *Finder {
	return &Finder{}
}

// FindDir returns the first directory directly under root whose name matches pattern.
// Glob results are sorted, so "first" is lexical order.
func (f *Finder) FindDir(root, pattern string) (string, bool, error) {
	matches, err := glob(filepath.Join(root, pattern))
	if err != nil {
		return "", false, err
	}
	for _, match := range matches {
		if f.IsDir(match) {
			return match, true, nil
		}
	}
	return "", false, nil
}

// IsDir reports whether path exists and is a directory.
func (f *Finder) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ProjectFiles returns the regular files in dir matching pattern.
func (f *Finder) ProjectFiles(dir, pattern string) ([]string, error) {
	matches, err := glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, err
	}
	return filterFiles(matches), nil
}

// ChildDirs returns the immediate child directories of root.
func (f *Finder) ChildDirs(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read directory"), "path", root)
	}

	var dirs []string
	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())
		// Follow symlinks so linked project folders count.
		if entry.IsDir() || (entry.Type()&os.ModeSymlink != 0 && f.IsDir(path)) {
			dirs = append(dirs, path)
		}
	}
	return dirs, nil
}

// NestedProjectFiles returns files matching pattern one and two levels below root.
func (f *Finder) NestedProjectFiles(root, pattern string) ([]string, error) {
	var result []string
	for _, p := range []string{
		filepath.Join(root, "*", pattern),
		filepath.Join(root, "*", "*", pattern),
	} {
		matches, err := glob(p)
		if err != nil {
			return nil, err
		}
		result = append(result, filterFiles(matches)...)
	}
	sort.Strings(result)
	return result, nil
}

func glob(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "pattern", pattern)
	}
	return matches, nil
}

func filterFiles(paths []string) []string {
	files := make([]string, 0, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err == nil && info.Mode().IsRegular() {
			files = append(files, path)
		}
	}
	return files
}
