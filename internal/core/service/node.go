package service

import (
	"context"

	"github.com/yndnr/iotlab-go/internal/cli/connection"
	"github.com/yndnr/iotlab-go/internal/core/domain"
	"github.com/yndnr/iotlab-go/internal/telemetry/logger"
)

// NodeRequest is one node command as entered by the user.
type NodeRequest struct {
	Command domain.Command
	// ExperimentID of 0 selects the single running experiment.
	ExperimentID int
	// Include and Exclude are node groups; nil means the flag was absent.
	Include      [][]string
	Exclude      [][]string
	FirmwarePath string
	// DryRun stops after node selection.
	DryRun bool
}

// NodePlan is what a node command targets.
type NodePlan struct {
	Command      domain.Command `json:"command" yaml:"command"`
	ExperimentID int            `json:"experiment_id" yaml:"experiment_id"`
	Nodes        domain.NodeSet `json:"nodes" yaml:"nodes"`
	Firmware     string         `json:"firmware,omitempty" yaml:"firmware,omitempty"`
}

// NodeService runs node commands end to end.
type NodeService struct {
	api        NodeAPI
	selector   *NodeSelector
	dispatcher *Dispatcher
}

// NewNodeService creates a NodeService over api.
func NewNodeService(api NodeAPI) *NodeService {
	return &NodeService{
		api:        api,
		selector:   NewNodeSelector(api),
		dispatcher: NewDispatcher(api),
	}
}

// Run resolves the experiment and the node set, then dispatches the command.
// For a dry run the result is nil and nothing is sent.
func (s *NodeService) Run(ctx context.Context, req NodeRequest) (*NodePlan, connection.Result, error) {
	if !req.Command.Valid() {
		return nil, nil, domain.ErrUnknownCommand.WithDetails(string(req.Command))
	}
	if req.Command.NeedsFirmware() && req.FirmwarePath == "" {
		return nil, nil, domain.ErrFirmwareRequired
	}

	expID := req.ExperimentID
	if expID == 0 {
		id, err := CurrentExperiment(ctx, s.api)
		if err != nil {
			return nil, nil, err
		}
		expID = id
	}

	nodes, err := s.selector.Resolve(ctx, expID, req.Include, req.Exclude)
	if err != nil {
		return nil, nil, err
	}

	plan := &NodePlan{
		Command:      req.Command,
		ExperimentID: expID,
		Nodes:        nodes,
		Firmware:     req.FirmwarePath,
	}
	log := logger.L(ctx)
	log.Info("node command", "command", plan.Command, "experiment", expID, "nodes", len(nodes))

	if req.DryRun {
		return plan, nil, nil
	}

	res, err := s.dispatcher.Dispatch(ctx, req.Command, expID, nodes, req.FirmwarePath)
	if err != nil {
		return plan, nil, err
	}
	return plan, res, nil
}
