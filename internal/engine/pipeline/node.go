package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shipwright/internal/adapters/collect"
	"go.trai.ch/shipwright/internal/adapters/freeze"
	"go.trai.ch/shipwright/internal/adapters/git"
	"go.trai.ch/shipwright/internal/adapters/logger"
	"go.trai.ch/shipwright/internal/adapters/provision"
	"go.trai.ch/shipwright/internal/adapters/telemetry"
	"go.trai.ch/shipwright/internal/core/ports"
)

// NodeID is the unique identifier for the pipeline runner Graft node.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			git.NodeID,
			provision.NodeID,
			freeze.NodeID,
			collect.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Runner, error) {
			resolver, err := graft.Dep[ports.VersionResolver](ctx)
			if err != nil {
				return nil, err
			}
			provisioners, err := graft.Dep[ports.ProvisionerFactory](ctx)
			if err != nil {
				return nil, err
			}
			freezers, err := graft.Dep[ports.FreezerFactory](ctx)
			if err != nil {
				return nil, err
			}
			collectors, err := graft.Dep[ports.CollectorFactory](ctx)
			if err != nil {
				return nil, err
			}
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(resolver, provisioners, freezers, collectors, tel, log), nil
		},
	})
}
