package app

import (
	"context"
	"path/filepath"

	"go.trai.ch/xambuild/internal/core/domain"
	"go.trai.ch/zerr"
)

func (a *App) nuget(ctx context.Context, cfg *domain.InvocationConfig) error {
	if len(cfg.Args) > 0 {
		switch cfg.Args[0] {
		case domain.NuGetWipe:
			return a.wipe(ctx, cfg)
		case domain.NuGetRestoreAll:
			return a.restoreAll(ctx, cfg)
		}
	}

	a.reporter.Step("Running nuget...")
	return a.run(ctx, domain.NewCommand(cfg.Tools.Package, cfg.Args...))
}

// wipe clears the nuget caches and removes bin and obj from every project
// directory directly below the root. Removal failures are logged only.
func (a *App) wipe(ctx context.Context, cfg *domain.InvocationConfig) error {
	dirs, err := a.finder.ChildDirs(cfg.ProjectDir)
	if err != nil {
		return domain.NewExitError(domain.ExitDirNotFound, err)
	}
	if len(dirs) == 0 {
		return domain.NewExitError(domain.ExitDirNotFound,
			zerr.With(domain.ErrNoProjectDirs, "project_dir", cfg.ProjectDir))
	}

	a.reporter.Step("Wiping nuget caches and build output...")

	var result error
	if err := a.run(ctx, domain.NewCommand(cfg.Tools.Package, "locals", "all", "-clear")); err != nil {
		if domain.ExitCode(err) == domain.ExitInterrupted {
			return err
		}
		a.logger.Error(err)
		result = err
	}

	for _, dir := range dirs {
		projects, err := a.finder.ProjectFiles(dir, domain.ProjectFilePattern)
		if err != nil {
			a.logger.Error(err)
			continue
		}
		if len(projects) == 0 {
			continue
		}

		for _, name := range domain.WipeDirs {
			if ctx.Err() != nil {
				return domain.Interrupted("wipe")
			}

			target := filepath.Join(dir, name)
			a.reporter.Command("rm -rf " + target)
			if err := a.remover.RemoveAll(target); err != nil {
				a.logger.Error(err)
			}
		}
	}

	return result
}

// restoreAll restores every project one or two levels below the root.
// It keeps going after a failure and reports the first one.
func (a *App) restoreAll(ctx context.Context, cfg *domain.InvocationConfig) error {
	projects, err := a.finder.NestedProjectFiles(cfg.ProjectDir, domain.ProjectFilePattern)
	if err != nil {
		return domain.NewExitError(domain.ExitDirNotFound, err)
	}
	if len(projects) == 0 {
		return domain.NewExitError(domain.ExitDirNotFound,
			zerr.With(domain.ErrNoProjectDirs, "project_dir", cfg.ProjectDir))
	}

	a.reporter.Step("Restoring nuget packages...")

	var first error
	for _, project := range projects {
		err := a.run(ctx, domain.NewCommand(cfg.Tools.Package, "restore", project))
		if err == nil {
			continue
		}
		if domain.ExitCode(err) == domain.ExitInterrupted {
			return err
		}
		a.logger.Warn("restore failed for " + project)
		if first == nil {
			first = err
		}
	}
	return first
}
