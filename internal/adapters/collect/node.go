package collect

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shipwright/internal/adapters/logger"
	"go.trai.ch/shipwright/internal/core/ports"
)

// NodeID is the unique identifier for the collector factory Graft node.
const NodeID graft.ID = "adapter.collector_factory"

func init() {
	graft.Register(graft.Node[ports.CollectorFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.CollectorFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(log), nil
		},
	})
}
