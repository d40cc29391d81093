package api

import (
	"context"
	"fmt"

	"github.com/yndnr/iotlab-go/internal/cli/connection"
	"github.com/yndnr/iotlab-go/internal/core/domain"
)

// NodeCommand sends start, stop or reset to nodes of experiment id.
// An empty node set targets every node of the experiment.
func (c *Client) NodeCommand(ctx context.Context, cmd domain.Command, id int, nodes domain.NodeSet) (connection.Result, error) {
	switch cmd {
	case domain.CommandStart, domain.CommandStop, domain.CommandReset:
	default:
		return nil, domain.ErrUnknownCommand.WithDetails(fmt.Sprintf("%q is not a plain node command", cmd))
	}
	if nodes == nil {
		nodes = domain.NodeSet{}
	}
	path := fmt.Sprintf("experiments/%d/nodes?%s", id, cmd)
	return c.call(ctx, path, connection.PostJSON{Body: nodes})
}

// NodeUpdate flashes nodes of experiment id. files holds the firmware
// followed by nodes.json.
func (c *Client) NodeUpdate(ctx context.Context, id int, files connection.Files) (connection.Result, error) {
	path := fmt.Sprintf("experiments/%d/nodes?%s", id, domain.CommandUpdate)
	return c.call(ctx, path, connection.PostMultipart{Files: files})
}
