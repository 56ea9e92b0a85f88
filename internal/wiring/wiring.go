// Package wiring registers all Graft nodes for xambuild.
package wiring

import (
	// Adapters.
	_ "go.trai.ch/xambuild/internal/adapters/config"
	_ "go.trai.ch/xambuild/internal/adapters/console"
	_ "go.trai.ch/xambuild/internal/adapters/env"
	_ "go.trai.ch/xambuild/internal/adapters/fs"
	_ "go.trai.ch/xambuild/internal/adapters/logger"
	_ "go.trai.ch/xambuild/internal/adapters/shell"
	// Application.
	_ "go.trai.ch/xambuild/internal/app"
)
