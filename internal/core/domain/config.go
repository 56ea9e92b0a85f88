package domain

// Default values for the computed-default tier.
const (
	DefaultConfiguration = "Debug"
	DefaultBuildTool     = "msbuild"
	DefaultPackageTool   = "nuget"
)

// Tools names the external executables xambuild drives.
type Tools struct {
	Build   string
	Package string
}

// DefaultTools returns the executables used when no settings override them.
func DefaultTools() Tools {
	return Tools{Build: DefaultBuildTool, Package: DefaultPackageTool}
}

// InvocationConfig is the resolved configuration of a single invocation.
// It is built once before dispatch and treated as read-only afterwards.
type InvocationConfig struct {
	// ProjectDir is the absolute project root.
	ProjectDir string
	// Platform is the selected platform. Dispatch validates it before any
	// action other than listEnvVars runs.
	Platform Platform
	// Configuration is the build configuration, e.g. "Debug" or "Release".
	Configuration string
	// DroidDir and IOSDir hold the platform directories as given by flag,
	// environment or settings. Empty means discover on demand.
	DroidDir string
	IOSDir   string
	// Args are the positional arguments that follow the action name.
	Args  []string
	Tools Tools
}

// PlatformDir returns the explicitly configured directory for p, if any.
func (c *InvocationConfig) PlatformDir(p Platform) string {
	if p == PlatformIOS {
		return c.IOSDir
	}
	return c.DroidDir
}

// Settings is the optional per-project settings file.
// Every field is optional; empty fields fall through to the built-in defaults.
type Settings struct {
	Platform      string        `yaml:"platform"`
	Configuration string        `yaml:"configuration"`
	DroidDir      string        `yaml:"droidDir"`
	IOSDir        string        `yaml:"iosDir"`
	Tools         SettingsTools `yaml:"tools"`
}

// SettingsTools overrides the external executables.
type SettingsTools struct {
	MSBuild string `yaml:"msbuild"`
	NuGet   string `yaml:"nuget"`
}

// SettingsFile is the settings filename looked up in the project root.
const SettingsFile = ".xambuild.yaml"
