// Package env provides access to environment variables.
package env

import (
	"os"

	"go.trai.ch/xambuild/internal/core/ports"
)

var (
	_ ports.Environment = OS{}
	_ ports.Environment = Map(nil)
)

// OS reads variables from the process environment.
type OS struct{}

// Lookup returns the value of key from the process environment.
func (OS) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Map is a fixed environment, used when the process environment must not leak in.
type Map map[string]string

// Lookup returns the value of key from the map.
func (m Map) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
