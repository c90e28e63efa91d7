package provision

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shipwright/internal/adapters/logger"
	"go.trai.ch/shipwright/internal/adapters/shell"
	"go.trai.ch/shipwright/internal/core/ports"
)

// NodeID is the unique identifier for the provisioner factory Graft node.
const NodeID graft.ID = "adapter.provisioner_factory"

func init() {
	graft.Register(graft.Node[ports.ProvisionerFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ProvisionerFactory, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(executor, log), nil
		},
	})
}
