package conan

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/recipe/internal/adapters/shell"
	"go.trai.ch/recipe/internal/core/ports"
)

// NodeID is the unique identifier for the conan host Graft node.
const NodeID graft.ID = "adapter.conan"

func init() {
	graft.Register(graft.Node[ports.DependencyResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.DependencyResolver, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			return NewHost(runner), nil
		},
	})
}
