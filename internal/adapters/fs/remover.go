package fs

import (
	"os"

	"go.trai.ch/xambuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Remover = (*Remover)(nil)

// Remover implements ports.Remover with os.RemoveAll.
type Remover struct{}

// NewRemover creates a new Remover.
func NewRemover() *Remover {
	return &Remover{}
}

// RemoveAll removes path and any children it contains.
func (r *Remover) RemoveAll(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove directory"), "path", path)
	}
	return nil
}
