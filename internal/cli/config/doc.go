// Package config resolves the iotlab-cli configuration.
//
//   - spec.go: CLIConfig struct and defaults
//   - loader.go: layered loading from files, environment and flags
//
// Only this package reads the environment and the dotfiles; everything
// below it receives resolved values.
package config
