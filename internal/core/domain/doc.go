// Package domain defines the core domain models for iotlab-cli.
//
// Domain models are pure values without any IO dependencies:
//
//   - Command: the node lifecycle actions (start, stop, reset, update)
//   - NodeSet: ordered node address lists and their JSON encoding
//   - ParseNodeList: "site,archi,1-5+7" node list expansion
//   - InfoOption: experiment info selectors
//   - Errors: coded domain errors shared by the service and API layers
package domain
