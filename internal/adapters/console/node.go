package console

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/xambuild/internal/core/ports"
)

// NodeID is the graft node that provides ports.Reporter.
const NodeID graft.ID = "adapter.console"

func init() {
	graft.Register(graft.Node[ports.Reporter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Reporter, error) {
			return New(os.Stdout), nil
		},
	})
}
