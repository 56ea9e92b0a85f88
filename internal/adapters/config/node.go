package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xambuild/internal/core/ports"
)

// NodeID is the graft node that provides ports.SettingsLoader.
const NodeID graft.ID = "adapter.settings_loader"

func init() {
	graft.Register(graft.Node[ports.SettingsLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SettingsLoader, error) {
			return NewLoader(), nil
		},
	})
}
