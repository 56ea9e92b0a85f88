package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xambuild/internal/core/ports"
)

const (
	// FinderNodeID is the graft node that provides ports.ProjectFinder.
	FinderNodeID graft.ID = "adapter.fs.finder"
	// RemoverNodeID is the graft node that provides ports.Remover.
	RemoverNodeID graft.ID = "adapter.fs.remover"
)

func init() {
	graft.Register(graft.Node[ports.ProjectFinder]{
		ID:        FinderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProjectFinder, error) {
			return NewFinder(), nil
		},
	})

	graft.Register(graft.Node[ports.Remover]{
		ID:        RemoverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Remover, error) {
			return NewRemover(), nil
		},
	})
}
