package domain

// Action names accepted as the first positional argument.
const (
	ActionBuild                  = "build"
	ActionBuildAndDeploy         = "buildAndDeploy"
	ActionClean                  = "clean"
	ActionUpdateAndroidResources = "updateAndroidResources"
	ActionAndroidSign            = "androidSign"
	ActionListEnvVars            = "listEnvVars"
	ActionNuGet                  = "nuget"
)

// Sub-actions of ActionNuGet handled by xambuild itself.
// Anything else is passed through to the package manager.
const (
	NuGetWipe       = "wipe"
	NuGetRestoreAll = "restoreAll"
)

// MSBuild targets appended to the build invocation.
const (
	TargetInstall                = "Install"
	TargetClean                  = "Clean"
	TargetUpdateAndroidResources = "UpdateAndroidResources"
	TargetSignAndroidPackage     = "SignAndroidPackage"
)

// Build output folders removed by a nuget wipe.
var WipeDirs = []string{"bin", "obj"}

// ProjectFilePattern matches platform project files.
const ProjectFilePattern = "*.csproj"
