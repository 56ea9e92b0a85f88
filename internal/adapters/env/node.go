package env

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xambuild/internal/core/ports"
)

// NodeID is the graft node that provides ports.Environment.
const NodeID graft.ID = "adapter.environment"

func init() {
	graft.Register(graft.Node[ports.Environment]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Environment, error) {
			return OS{}, nil
		},
	})
}
