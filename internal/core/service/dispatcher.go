package service

import (
	"context"

	"github.com/yndnr/iotlab-go/internal/cli/connection"
	"github.com/yndnr/iotlab-go/internal/core/domain"
)

// Dispatcher maps a command kind to the matching API call.
type Dispatcher struct {
	api NodeCommander
}

// NewDispatcher creates a dispatcher sending commands through api.
func NewDispatcher(api NodeCommander) *Dispatcher {
	return &Dispatcher{api: api}
}

// Dispatch sends cmd to nodes of experiment expID. firmwarePath is only
// read for update; an update without it fails before any network call.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd domain.Command, expID int, nodes domain.NodeSet, firmwarePath string) (connection.Result, error) {
	switch cmd {
	case domain.CommandStart, domain.CommandStop, domain.CommandReset:
		return d.api.NodeCommand(ctx, cmd, expID, nodes)
	case domain.CommandUpdate:
		files, err := updateBundle(firmwarePath, nodes)
		if err != nil {
			return nil, err
		}
		return d.api.NodeUpdate(ctx, expID, files)
	default:
		return nil, domain.ErrUnknownCommand.WithDetails(string(cmd))
	}
}

// updateBundle builds the two multipart parts of a firmware update:
// the image under its file name, then nodes.json.
func updateBundle(firmwarePath string, nodes domain.NodeSet) (connection.Files, error) {
	if firmwarePath == "" {
		return nil, domain.ErrFirmwareRequired
	}
	fw, err := loadFirmware(firmwarePath)
	if err != nil {
		return nil, err
	}
	nf, err := nodesFile(nodes)
	if err != nil {
		return nil, err
	}
	return connection.Files{fw, nf}, nil
}
