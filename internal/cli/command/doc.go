// Package command defines the iotlab-cli commands using urfave/cli/v2.
//
//   - root.go: App, global flags, configuration and client setup
//   - node.go: node start/stop/reset/update
//   - experiment.go: experiment submit/list/get/stop
//   - profile.go: monitoring profiles
//   - resources.go: testbed nodes and sites
//
// Actions parse flags, call the API client or the node service, and print
// the result in the selected output format.
package command
