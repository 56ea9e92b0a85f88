package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Platform is a supported mobile target.
type Platform string

const (
	// PlatformAndroid targets Xamarin.Android.
	PlatformAndroid Platform = "android"
	// PlatformIOS targets Xamarin.iOS.
	PlatformIOS Platform = "ios"
)

// DefaultPlatform is used when neither a flag nor the environment names one.
const DefaultPlatform = PlatformAndroid

// ParsePlatform normalizes raw and checks it names a known platform.
// The returned error maps to ExitUnknownPlatform.
func ParsePlatform(raw string) (Platform, error) {
	switch p := Platform(strings.ToLower(strings.TrimSpace(raw))); p {
	case PlatformAndroid, PlatformIOS:
		return p, nil
	default:
		return "", NewExitError(ExitUnknownPlatform, zerr.With(ErrUnknownPlatform, "platform", raw))
	}
}

// DirPattern is the glob matched against directory names under the project
// root when looking for the platform project directory.
func (p Platform) DirPattern() string {
	if p == PlatformIOS {
		return "*.iOS*"
	}
	return "*.Droid*"
}

// DirEnv is the environment variable that overrides the platform directory.
func (p Platform) DirEnv() string {
	if p == PlatformIOS {
		return EnvIOSDir
	}
	return EnvDroidDir
}

func (p Platform) String() string {
	return string(p)
}
