package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/yndnr/iotlab-go/internal/cli/connection"
	"github.com/yndnr/iotlab-go/internal/core/domain"
)

// SubmitExperiment posts an experiment description and its firmwares.
func (c *Client) SubmitExperiment(ctx context.Context, files connection.Files) (connection.Result, error) {
	return c.call(ctx, "experiments", connection.PostMultipart{Files: files})
}

// GetExperiments lists the user's experiments in state. A limit of 0 means no limit.
func (c *Client) GetExperiments(ctx context.Context, state string, limit, offset int) (connection.Result, error) {
	path := fmt.Sprintf("experiments?state=%s&limit=%d&offset=%d", url.QueryEscape(state), limit, offset)
	return c.call(ctx, path, connection.Get{})
}

// GetExperimentInfo returns one experiment, restricted by option.
func (c *Client) GetExperimentInfo(ctx context.Context, id int, option domain.InfoOption) (connection.Result, error) {
	if err := option.Validate(); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("experiment/%d", id)
	if option != domain.InfoAll {
		path += "?" + string(option)
	}
	return c.call(ctx, path, connection.Get{})
}

// GetExperimentResources returns the nodes allocated to experiment id.
func (c *Client) GetExperimentResources(ctx context.Context, id int) (*domain.ExperimentResources, error) {
	res, err := c.GetExperimentInfo(ctx, id, domain.InfoResources)
	if err != nil {
		return nil, err
	}

	s, ok := res.(connection.Structured)
	if !ok {
		return nil, domain.ErrUnexpectedResponse.WithDetails(fmt.Sprintf("experiment %d resources are not JSON", id))
	}
	var resources domain.ExperimentResources
	if err := s.Decode(&resources); err != nil {
		return nil, domain.ErrUnexpectedResponse.WithCause(err)
	}
	return &resources, nil
}

// StopExperiment stops experiment id.
func (c *Client) StopExperiment(ctx context.Context, id int) (connection.Result, error) {
	return c.call(ctx, fmt.Sprintf("experiments/%d", id), connection.Delete{})
}
