package service

import (
	"context"

	"github.com/yndnr/iotlab-go/internal/cli/connection"
	"github.com/yndnr/iotlab-go/internal/core/domain"
)

// ResourceFetcher returns the nodes allocated to an experiment.
type ResourceFetcher interface {
	GetExperimentResources(ctx context.Context, id int) (*domain.ExperimentResources, error)
}

// NodeCommander sends lifecycle commands to experiment nodes.
type NodeCommander interface {
	NodeCommand(ctx context.Context, cmd domain.Command, id int, nodes domain.NodeSet) (connection.Result, error)
	NodeUpdate(ctx context.Context, id int, files connection.Files) (connection.Result, error)
}

// ExperimentLister lists the user's experiments.
type ExperimentLister interface {
	GetExperiments(ctx context.Context, state string, limit, offset int) (connection.Result, error)
}

// NodeAPI is everything the node service needs from the remote API.
// *api.Client implements it.
type NodeAPI interface {
	ResourceFetcher
	NodeCommander
	ExperimentLister
}
