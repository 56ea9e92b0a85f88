package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xambuild/internal/core/domain"
)

func writeFile(t *testing.T, path, content string, mode os.FileMode) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), mode))
}

// setupProject creates a project root and points the environment at it.
func setupProject(t *testing.T, buildTool string) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range domain.EnvVars {
		t.Setenv(name, "")
	}
	t.Setenv(domain.EnvProjectDir, root)
	t.Setenv("NO_COLOR", "1")

	if buildTool != "" {
		writeFile(t, filepath.Join(root, domain.SettingsFile), "tools:\n  msbuild: "+buildTool+"\n", 0o600)
	}
	return root
}

func TestRun(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(t *testing.T)
		args         []string
		expectedExit int
	}{
		{
			name: "build runs the build tool",
			setup: func(t *testing.T) {
				root := setupProject(t, "echo")
				writeFile(t, filepath.Join(root, "App.Droid", "App.csproj"), "<Project />", 0o600)
			},
			args:         []string{"build"},
			expectedExit: 0,
		},
		{
			name: "tool exit code passes through",
			setup: func(t *testing.T) {
				root := t.TempDir()
				script := filepath.Join(root, "fail.sh")
				writeFile(t, script, "#!/bin/sh\nexit 7\n", 0o700)
				project := setupProject(t, script)
				writeFile(t, filepath.Join(project, "App.iOS", "App.csproj"), "<Project />", 0o600)
				t.Setenv(domain.EnvPlatform, "ios")
			},
			args:         []string{"clean"},
			expectedExit: 7,
		},
		{
			name: "missing tool",
			setup: func(t *testing.T) {
				root := setupProject(t, "xambuild-test-no-such-tool")
				writeFile(t, filepath.Join(root, "App.Droid", "App.csproj"), "<Project />", 0o600)
			},
			args:         []string{"build"},
			expectedExit: domain.ExitNotStarted,
		},
		{
			name: "unknown platform",
			setup: func(t *testing.T) {
				setupProject(t, "echo")
				t.Setenv(domain.EnvPlatform, "windows")
			},
			args:         []string{"build"},
			expectedExit: domain.ExitUnknownPlatform,
		},
		{
			name: "no project file",
			setup: func(t *testing.T) {
				root := setupProject(t, "echo")
				require.NoError(t, os.MkdirAll(filepath.Join(root, "App.Droid"), 0o750))
			},
			args:         []string{"build"},
			expectedExit: domain.ExitProjectFile,
		},
		{
			name: "no platform directory",
			setup: func(t *testing.T) {
				setupProject(t, "echo")
			},
			args:         []string{"build"},
			expectedExit: domain.ExitDirNotFound,
		},
		{
			name: "invalid action",
			setup: func(t *testing.T) {
				setupProject(t, "")
			},
			args:         []string{"deploy"},
			expectedExit: domain.ExitInvalidAction,
		},
		{
			name: "no action",
			setup: func(t *testing.T) {
				setupProject(t, "")
			},
			args:         nil,
			expectedExit: domain.ExitInvalidAction,
		},
		{
			name: "nuget restoreAll with a bad platform",
			setup: func(t *testing.T) {
				root := setupProject(t, "")
				writeFile(t, filepath.Join(root, domain.SettingsFile), "tools:\n  nuget: xambuild-test-no-such-tool\n", 0o600)
				writeFile(t, filepath.Join(root, "App", "App.csproj"), "<Project />", 0o600)
			},
			args:         []string{"-p", "windows", "nuget", "restoreAll"},
			expectedExit: domain.ExitUnknownPlatform,
		},
		{
			name: "list environment variables with a bad platform",
			setup: func(t *testing.T) {
				setupProject(t, "")
				t.Setenv(domain.EnvPlatform, "windows")
			},
			args:         []string{"listEnvVars"},
			expectedExit: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)
			assert.Equal(t, tt.expectedExit, run(tt.args, io.Discard))
		})
	}
}

func TestRun_NuGetWipe(t *testing.T) {
	root := setupProject(t, "")
	writeFile(t, filepath.Join(root, domain.SettingsFile), "tools:\n  nuget: true\n", 0o600)

	for _, dir := range []string{"App", "App.Droid", "Docs"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir, "bin"), 0o750))
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir, "obj"), 0o750))
	}
	writeFile(t, filepath.Join(root, "App", "App.csproj"), "<Project />", 0o600)
	writeFile(t, filepath.Join(root, "App.Droid", "App.Droid.csproj"), "<Project />", 0o600)

	require.Equal(t, 0, run([]string{"nuget", "wipe"}, io.Discard))

	assert.NoDirExists(t, filepath.Join(root, "App", "bin"))
	assert.NoDirExists(t, filepath.Join(root, "App.Droid", "obj"))
	assert.DirExists(t, filepath.Join(root, "Docs", "bin"))
	assert.DirExists(t, filepath.Join(root, "Docs", "obj"))
}

func TestRun_ErrorMessageOnStderr(t *testing.T) {
	setupProject(t, "")

	var stderr bytes.Buffer
	require.Equal(t, domain.ExitInvalidAction, run([]string{"deploy"}, &stderr))
	assert.Contains(t, stderr.String(), "Error: invalid action")
}

func TestRun_PlatformErrorOnStderr(t *testing.T) {
	setupProject(t, "")

	var stderr bytes.Buffer
	require.Equal(t, domain.ExitUnknownPlatform, run([]string{"-p", "windows", "nuget", "wipe"}, &stderr))
	assert.Contains(t, stderr.String(), "Error: ")
	assert.Contains(t, stderr.String(), domain.EnvPlatform)
}
