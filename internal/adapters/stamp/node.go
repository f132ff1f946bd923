package stamp

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ninjify/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/ninjify/internal/core/ports"
)

const NodeID graft.ID = "adapter.stamp"

func init() {
	graft.Register(graft.Node[ports.Stamper]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Stamper, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWriter(log), nil
		},
	})
}
