// Package service holds the node command logic of iotlab-cli.
//
// NodeSelector decides which nodes a command targets, Dispatcher turns a
// command kind into the matching API call, and NodeService chains them
// after finding the experiment. Remote access goes through the small
// interfaces in interfaces.go so the logic can be tested without HTTP.
package service
