package domain

import "go.trai.ch/zerr"

var (
	// ErrNoAction is returned when no action was given on the command line.
	ErrNoAction = zerr.New("no action given, try 'xambuild --help'")

	// ErrInvalidAction is returned when the action name is not one of the known actions.
	ErrInvalidAction = zerr.New("invalid action, try 'xambuild --help'")

	// ErrInterrupted is returned when a running command is cancelled by an interrupt.
	ErrInterrupted = zerr.New("cancelled by keyboard interrupt")

	// ErrUnknownPlatform is returned when the platform is neither android nor ios.
	ErrUnknownPlatform = zerr.New("error parsing platform, check " + EnvPlatform + " and the --platform argument")

	// ErrPlatformDirNotFound is returned when no platform directory can be resolved.
	ErrPlatformDirNotFound = zerr.New("unable to find the platform directory in the project directory")

	// ErrProjectFileNotFound is returned when the platform directory holds no project file.
	ErrProjectFileNotFound = zerr.New("no csproj file found for the specified platform, try setting " +
		EnvDroidDir + " or " + EnvIOSDir)

	// ErrNoProjectDirs is returned when the project root holds no project folders.
	ErrNoProjectDirs = zerr.New("no project folders found in the project directory, check " + EnvProjectDir)

	// ErrCommandFailed is returned when an external command exits with a nonzero code.
	ErrCommandFailed = zerr.New("command failed")

	// ErrCommandNotStarted is returned when an external command could not be started.
	ErrCommandNotStarted = zerr.New("command could not be started")
)

var (
	// ErrSettingsReadFailed is returned when the settings file exists but cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")

	// ErrSettingsParseFailed is returned when the settings file is not valid YAML.
	ErrSettingsParseFailed = zerr.New("failed to parse settings file")
)
