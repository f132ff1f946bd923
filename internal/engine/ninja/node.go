package ninja

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ninjify/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ninjify/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ninjify/internal/core/ports"
)

// NodeID is the unique identifier for the generator Graft node.
const NodeID graft.ID = "engine.ninja"

func init() {
	graft.Register(graft.Node[*Generator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Generator, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewGenerator(log, tracer), nil
		},
	})
}
