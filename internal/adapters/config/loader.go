// Package config provides the project settings loader for xambuild.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/xambuild/internal/core/domain"
	"go.trai.ch/xambuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.SettingsLoader = (*Loader)(nil)

// Loader implements ports.SettingsLoader using a YAML file in the project root.
type Loader struct {
	Filename string
}

// NewLoader creates a new Loader reading domain.SettingsFile.
func NewLoader() *Loader {
	return &Loader{Filename: domain.SettingsFile}
}

// Load reads the settings file from projectDir.
// Relative platform directories in the file are resolved against projectDir.
func (l *Loader) Load(projectDir string) (*domain.Settings, error) {
	path := filepath.Join(projectDir, l.Filename)

	var settings domain.Settings
	found, err := readAndUnmarshalYAML(path, &settings)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	if !found {
		return &settings, nil
	}

	settings.DroidDir = rebase(projectDir, settings.DroidDir)
	settings.IOSDir = rebase(projectDir, settings.IOSDir)
	return &settings, nil
}

// readAndUnmarshalYAML decodes the YAML file at path into target.
// It reports false when the file does not exist.
func readAndUnmarshalYAML[T any](path string, target *T) (bool, error) {
	// #nosec G304 -- path is the project root joined with a fixed filename
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.Wrap(err, domain.ErrSettingsReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return false, zerr.Wrap(err, domain.ErrSettingsParseFailed.Error())
	}
	return true, nil
}

func rebase(root, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Clean(filepath.Join(root, path))
}
