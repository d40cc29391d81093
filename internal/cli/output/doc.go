// Package output prints command results for iotlab-cli.
//
//   - formatter.go: format selection and Result unwrapping
//   - json.go: indented JSON (default)
//   - yaml.go: YAML via gopkg.in/yaml.v3
//   - table.go: aligned tables for listings
package output
