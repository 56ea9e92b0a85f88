package app

import (
	"path/filepath"
	"strings"

	"go.trai.ch/xambuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolve picks the first non-empty value of flag and env.
// def is only called when both are empty.
func Resolve(flag, env string, def func() string) string {
	if flag != "" {
		return flag
	}
	if env != "" {
		return env
	}
	return def()
}

// Configure builds the invocation configuration for a run.
// Platform directories stay empty unless given explicitly; they are
// discovered on demand by PlatformDir.
func (a *App) Configure(opts Options, args []string) *domain.InvocationConfig {
	projectDir := a.absolute(Resolve(opts.ProjectDir, a.lookupEnv(domain.EnvProjectDir), a.workingDir))
	settings := a.loadSettings(projectDir)
	tools := domain.DefaultTools()

	return &domain.InvocationConfig{
		ProjectDir: projectDir,
		Platform: domain.Platform(strings.ToLower(strings.TrimSpace(Resolve(opts.Platform,
			a.lookupEnv(domain.EnvPlatform), fallback(settings.Platform, string(domain.DefaultPlatform)))))),
		Configuration: Resolve(opts.Configuration, a.lookupEnv(domain.EnvConfiguration),
			fallback(settings.Configuration, domain.DefaultConfiguration)),
		DroidDir: a.absolute(Resolve(opts.DroidDir, a.lookupEnv(domain.EnvDroidDir), fallback(settings.DroidDir, ""))),
		IOSDir:   a.absolute(Resolve(opts.IOSDir, a.lookupEnv(domain.EnvIOSDir), fallback(settings.IOSDir, ""))),
		Args:     args,
		Tools: domain.Tools{
			Build:   firstNonEmpty(settings.Tools.MSBuild, tools.Build),
			Package: firstNonEmpty(settings.Tools.NuGet, tools.Package),
		},
	}
}

// PlatformDir returns the directory holding the selected platform's project.
func (a *App) PlatformDir(cfg *domain.InvocationConfig) (string, error) {
	platform := cfg.Platform
	if dir := cfg.PlatformDir(platform); dir != "" {
		if !a.finder.IsDir(dir) {
			err := zerr.With(zerr.With(domain.ErrPlatformDirNotFound, "platform", platform.String()), "dir", dir)
			return "", domain.NewExitError(domain.ExitDirNotFound, err)
		}
		return dir, nil
	}

	dir, ok, err := a.finder.FindDir(cfg.ProjectDir, platform.DirPattern())
	if err != nil {
		return "", domain.NewExitError(domain.ExitDirNotFound, err)
	}
	if !ok {
		err := zerr.With(zerr.With(domain.ErrPlatformDirNotFound, "pattern", platform.DirPattern()),
			"project_dir", cfg.ProjectDir)
		return "", domain.NewExitError(domain.ExitDirNotFound, err)
	}
	return dir, nil
}

// ProjectFile returns the .csproj file inside the platform directory.
// When several match, the first in lexical order is used.
func (a *App) ProjectFile(cfg *domain.InvocationConfig) (string, error) {
	dir, err := a.PlatformDir(cfg)
	if err != nil {
		return "", err
	}

	files, err := a.finder.ProjectFiles(dir, domain.ProjectFilePattern)
	if err != nil {
		return "", domain.NewExitError(domain.ExitProjectFile, err)
	}
	if len(files) == 0 {
		err := zerr.With(zerr.With(domain.ErrProjectFileNotFound, "dir", dir), "env", cfg.Platform.DirEnv())
		return "", domain.NewExitError(domain.ExitProjectFile, err)
	}
	if len(files) > 1 {
		a.logger.Warn("multiple project files in " + dir + ", using " + filepath.Base(files[0]))
	}
	return files[0], nil
}

func (a *App) lookupEnv(key string) string {
	value, _ := a.env.Lookup(key)
	return value
}

func (a *App) workingDir() string {
	wd, err := a.getwd()
	if err != nil {
		a.logger.Warn("cannot determine working directory: " + err.Error())
		return "."
	}
	return wd
}

func (a *App) absolute(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	wd, err := a.getwd()
	if err != nil {
		return filepath.Clean(path)
	}
	return filepath.Join(wd, path)
}

func (a *App) loadSettings(projectDir string) domain.Settings {
	settings, err := a.settings.Load(projectDir)
	if err != nil {
		a.logger.Warn("ignoring settings file: " + err.Error())
		return domain.Settings{}
	}
	if settings == nil {
		return domain.Settings{}
	}
	return *settings
}

func fallback(value, def string) func() string {
	return func() string {
		return firstNonEmpty(value, def)
	}
}

func firstNonEmpty(value, def string) string {
	if value != "" {
		return value
	}
	return def
}
