package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xambuild/internal/adapters/fs"
)

func mkdirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0o750))
	}
}

func touch(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte("<Project />"), 0o600))
	}
}

func TestFinder_FindDir_FirstLexicalMatch(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "Zeta.Droid", "Alpha.Droid", "App.iOS", "Core")

	dir, ok, err := fs.NewFinder().FindDir(root, "*.Droid*")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(root, "Alpha.Droid"), dir)
}

func TestFinder_FindDir_SkipsFiles(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "A.Droid.txt")
	mkdirs(t, root, "B.Droid")

	dir, ok, err := fs.NewFinder().FindDir(root, "*.Droid*")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(root, "B.Droid"), dir)
}

func TestFinder_FindDir_NoMatch(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "App.Core")

	_, ok, err := fs.NewFinder().FindDir(root, "*.iOS*")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFinder_FindDir_GlobError(t *testing.T) {
	_, _, err := fs.NewFinder().FindDir(t.TempDir(), "[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to glob path")
}

func TestFinder_IsDir(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "file.txt")
	f := fs.NewFinder()

	assert.True(t, f.IsDir(root))
	assert.False(t, f.IsDir(filepath.Join(root, "file.txt")))
	assert.False(t, f.IsDir(filepath.Join(root, "missing")))
}

func TestFinder_ProjectFiles(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "B.csproj", "A.csproj", "readme.md")
	mkdirs(t, root, "Dir.csproj")

	files, err := fs.NewFinder().ProjectFiles(root, "*.csproj")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "A.csproj"),
		filepath.Join(root, "B.csproj"),
	}, files)
}

func TestFinder_ProjectFiles_Empty(t *testing.T) {
	files, err := fs.NewFinder().ProjectFiles(t.TempDir(), "*.csproj")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFinder_ChildDirs(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "b", "a", "a/nested")
	touch(t, root, "file.txt")

	dirs, err := fs.NewFinder().ChildDirs(root)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "a"), filepath.Join(root, "b")}, dirs)
}

func TestFinder_ChildDirs_MissingRoot(t *testing.T) {
	dirs, err := fs.NewFinder().ChildDirs(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Empty(t, dirs)
}

func TestFinder_NestedProjectFiles_TwoLevels(t *testing.T) {
	root := t.TempDir()
	touch(t, root,
		"Root.csproj",
		"App.Droid/App.Droid.csproj",
		"src/Core/Core.csproj",
		"src/a/b/TooDeep.csproj",
	)

	files, err := fs.NewFinder().NestedProjectFiles(root, "*.csproj")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "App.Droid", "App.Droid.csproj"),
		filepath.Join(root, "src", "Core", "Core.csproj"),
	}, files)
}
