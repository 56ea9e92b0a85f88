package shell

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/xambuild/internal/core/ports"
)

// NodeID is the graft node that provides ports.Executor.
const NodeID graft.ID = "adapter.executor"

func init() {
	graft.Register(graft.Node[ports.Executor]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Executor, error) {
			return NewExecutor(os.Stdout, os.Stderr), nil
		},
	})
}
