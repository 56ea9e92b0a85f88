package domain

// Environment variables consulted by xambuild.
const (
	EnvProjectDir    = "XAMBUILD_PROJECT_DIR"
	EnvDroidDir      = "XAMBUILD_DROID_DIR"
	EnvIOSDir        = "XAMBUILD_IOS_DIR"
	EnvPlatform      = "XAMBUILD_PLATFORM"
	EnvConfiguration = "XAMBUILD_CONFIGURATION"
)

// EnvVars lists every recognized environment variable in display order.
var EnvVars = []string{
	EnvProjectDir,
	EnvDroidDir,
	EnvIOSDir,
	EnvPlatform,
	EnvConfiguration,
}
