package main

import (
	"fmt"
	"os"

	"github.com/yndnr/iotlab-go/internal/cli/command"
	"github.com/yndnr/iotlab-go/internal/core/domain"
	"github.com/yndnr/iotlab-go/internal/telemetry/logger"
)

func main() {
	if err := command.App().Run(os.Args); err != nil {
		if code := domain.GetErrorCode(err); code != "" {
			logger.Default().Debug("command failed", "code", code)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
