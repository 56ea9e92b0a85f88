package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xambuild/internal/adapters/fs"
)

func TestRemover_RemoveAll(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "bin/Debug/App.dll")

	require.NoError(t, fs.NewRemover().RemoveAll(filepath.Join(root, "bin")))

	_, err := os.Stat(filepath.Join(root, "bin"))
	assert.True(t, os.IsNotExist(err))
}

func TestRemover_RemoveAll_Missing(t *testing.T) {
	err := fs.NewRemover().RemoveAll(filepath.Join(t.TempDir(), "obj"))
	assert.NoError(t, err)
}
