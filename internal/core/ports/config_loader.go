package ports

import "go.trai.ch/xambuild/internal/core/domain"

// SettingsLoader defines the interface for loading per-project settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type SettingsLoader interface {
	// Load reads the settings file from the given project directory.
	// A missing file yields empty settings and no error.
	Load(projectDir string) (*domain.Settings, error)
}
