package app

import (
	"context"
	"fmt"

	"go.trai.ch/xambuild/internal/core/domain"
)

// msbuildAction describes an action that runs the build tool on the project file.
type msbuildAction struct {
	step   string
	target string
}

var msbuildActions = map[string]msbuildAction{
	domain.ActionBuild:                  {step: "Building with '%s' configuration..."},
	domain.ActionBuildAndDeploy:         {step: "Building and deploying with '%s' configuration...", target: domain.TargetInstall},
	domain.ActionClean:                  {step: "Cleaning with '%s' configuration...", target: domain.TargetClean},
	domain.ActionUpdateAndroidResources: {step: "Updating android resources with '%s' configuration...", target: domain.TargetUpdateAndroidResources},
	domain.ActionAndroidSign:            {step: "Signing android package with '%s' configuration...", target: domain.TargetSignAndroidPackage},
}

func (a *App) actions() map[string]Handler {
	handlers := make(map[string]Handler, len(msbuildActions)+2)
	for name, action := range msbuildActions {
		handlers[name] = a.msbuild(action)
	}
	handlers[domain.ActionListEnvVars] = a.listEnvVars
	handlers[domain.ActionNuGet] = a.nuget
	return handlers
}

// MSBuildArgs returns the build tool arguments for project.
// An empty target leaves the tool's default target in place.
func MSBuildArgs(project, configuration, target string) []string {
	args := []string{project, "/p:Configuration=" + configuration}
	if target != "" {
		args = append(args, "/t:"+target)
	}
	return args
}

func (a *App) msbuild(action msbuildAction) Handler {
	return func(ctx context.Context, cfg *domain.InvocationConfig) error {
		project, err := a.ProjectFile(cfg)
		if err != nil {
			return err
		}

		a.reporter.Step(fmt.Sprintf(action.step, cfg.Configuration))
		return a.run(ctx, domain.NewCommand(cfg.Tools.Build, MSBuildArgs(project, cfg.Configuration, action.target)...))
	}
}

func (a *App) listEnvVars(_ context.Context, _ *domain.InvocationConfig) error {
	a.reporter.Step("Environment variables:")
	for _, name := range domain.EnvVars {
		if value, ok := a.env.Lookup(name); ok && value != "" {
			a.reporter.Line(name + "=" + value)
			continue
		}
		a.reporter.Line(name + " not set")
	}
	return nil
}
