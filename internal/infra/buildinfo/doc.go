// Package buildinfo exposes build-time information injected via ldflags:
//
//   - Version: release version (e.g., "1.0.0")
//   - Commit: Git commit hash
//   - BuildTime: build timestamp
//
// Usage:
//
//	go build -ldflags "-X github.com/yndnr/iotlab-go/internal/infra/buildinfo.Version=1.0.0" ./cmd/iotlab-cli
package buildinfo
