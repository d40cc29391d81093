package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yndnr/iotlab-go/internal/cli/connection"
	"github.com/yndnr/iotlab-go/internal/core/domain"
)

// loadFirmware reads the firmware image at path. The file is closed
// before returning. The part name is the base name of path.
func loadFirmware(path string) (connection.File, error) {
	if strings.ContainsRune(path, 0) {
		return connection.File{}, domain.ErrFirmwareRead.WithDetails("path contains null byte")
	}
	path = filepath.Clean(path)

	f, err := os.Open(path)
	if err != nil {
		return connection.File{}, domain.ErrFirmwareRead.WithDetails(path).WithCause(err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return connection.File{}, domain.ErrFirmwareRead.WithDetails(path).WithCause(err)
	}

	return connection.File{Name: filepath.Base(path), Data: data}, nil
}

// nodesFile encodes nodes as the nodes.json part of an update bundle.
func nodesFile(nodes domain.NodeSet) (connection.File, error) {
	data, err := nodes.MarshalJSON()
	if err != nil {
		return connection.File{}, fmt.Errorf("encode nodes.json: %w", err)
	}
	return connection.File{Name: "nodes.json", Data: data}, nil
}
