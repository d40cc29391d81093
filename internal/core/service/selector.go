package service

import (
	"context"
	"fmt"

	"github.com/yndnr/iotlab-go/internal/core/domain"
)

// NodeSelector turns inclusion or exclusion lists into the node set a
// command is sent to.
type NodeSelector struct {
	resources ResourceFetcher
}

// NewNodeSelector creates a selector fetching experiment resources from r.
func NewNodeSelector(r ResourceFetcher) *NodeSelector {
	return &NodeSelector{resources: r}
}

// Resolve picks the target nodes of experiment expID.
//
// A non-nil include list wins and is used as given. Otherwise a non-nil
// exclude list is subtracted from the experiment's nodes, in server order;
// excluded nodes unknown to the experiment are ignored. With neither, the
// result is an empty set, which the server reads as every node.
func (s *NodeSelector) Resolve(ctx context.Context, expID int, include, exclude [][]string) (domain.NodeSet, error) {
	switch {
	case include != nil:
		return domain.Flatten(include), nil
	case exclude != nil:
		excluded := domain.Flatten(exclude)
		res, err := s.resources.GetExperimentResources(ctx, expID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch resources of experiment %d: %w", expID, err)
		}
		return res.Addresses().Without(excluded), nil
	default:
		return domain.NodeSet{}, nil
	}
}
