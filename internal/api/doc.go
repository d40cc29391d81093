// Package api is the client of the testbed REST service.
//
// Each method maps to one remote operation and returns the transport
// result or error unchanged. Paths are relative to the API root.
package api
