// Package main provides the entry point for iotlab-cli.
//
// iotlab-cli drives the testbed REST API: it submits and stops
// experiments, starts, stops, resets and flashes nodes, and manages
// monitoring profiles.
//
// Usage:
//
//	iotlab-cli [global flags] <command> [command flags]
//
// Run "iotlab-cli --help" for the list of commands.
package main
