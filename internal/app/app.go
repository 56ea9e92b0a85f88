// Package app implements the application layer for xambuild.
package app

import (
	"context"
	"os"

	"go.trai.ch/xambuild/internal/core/domain"
	"go.trai.ch/xambuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options holds the values given on the command line. Empty fields are unset.
type Options struct {
	Platform      string
	ProjectDir    string
	Configuration string
	DroidDir      string
	IOSDir        string
}

// Handler runs a single action against a resolved configuration.
type Handler func(ctx context.Context, cfg *domain.InvocationConfig) error

// App represents the main application logic.
type App struct {
	env      ports.Environment
	finder   ports.ProjectFinder
	remover  ports.Remover
	settings ports.SettingsLoader
	executor ports.Executor
	reporter ports.Reporter
	logger   ports.Logger

	handlers map[string]Handler
	getwd    func() (string, error)
}

// New creates a new App instance.
func New(
	env ports.Environment,
	finder ports.ProjectFinder,
	remover ports.Remover,
	settings ports.SettingsLoader,
	executor ports.Executor,
	reporter ports.Reporter,
	logger ports.Logger,
) *App {
	a := &App{
		env:      env,
		finder:   finder,
		remover:  remover,
		settings: settings,
		executor: executor,
		reporter: reporter,
		logger:   logger,
		getwd:    os.Getwd,
	}
	a.handlers = a.actions()
	return a
}

// WithWorkingDir overrides how the current directory is determined.
func (a *App) WithWorkingDir(getwd func() (string, error)) *App {
	a.getwd = getwd
	return a
}

// Run resolves the configuration and dispatches args[0] as the action.
// The remaining args are handed to the action unchanged. The platform is
// checked before any action except listEnvVars runs.
func (a *App) Run(ctx context.Context, opts Options, args []string) error {
	if len(args) == 0 {
		return domain.NewExitError(domain.ExitInvalidAction, domain.ErrNoAction)
	}

	action := args[0]
	handler, ok := a.handlers[action]
	if !ok {
		return domain.NewExitError(domain.ExitInvalidAction, zerr.With(domain.ErrInvalidAction, "action", action))
	}

	cfg := a.Configure(opts, args[1:])
	if action != domain.ActionListEnvVars {
		platform, err := domain.ParsePlatform(string(cfg.Platform))
		if err != nil {
			return err
		}
		cfg.Platform = platform
	}

	if err := handler(ctx, cfg); err != nil {
		return err
	}

	a.reporter.Done()
	return nil
}

// Actions returns the names of all supported actions.
func (a *App) Actions() []string {
	return []string{
		domain.ActionBuild,
		domain.ActionBuildAndDeploy,
		domain.ActionClean,
		domain.ActionUpdateAndroidResources,
		domain.ActionAndroidSign,
		domain.ActionListEnvVars,
		domain.ActionNuGet,
	}
}

// run echoes the command line and hands it to the executor.
func (a *App) run(ctx context.Context, cmd domain.Command) error {
	a.reporter.Command(cmd.String())
	return a.executor.Run(ctx, cmd)
}
