package lifecycle

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/recipe/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/recipe/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/recipe/internal/core/ports"
)

// NodeID is the unique identifier for the lifecycle runner Graft node.
const NodeID graft.ID = "engine.lifecycle"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Runner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[*progrock.Recorder](ctx)
			if err != nil {
				return nil, err
			}

			return NewRunner(log, telemetry), nil
		},
	})
}
