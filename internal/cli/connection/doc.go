// Package connection is the HTTP transport of iotlab-cli.
//
// Every call to the testbed API goes through Transport.Do, which takes one
// of four request shapes (Get, PostJSON, PostMultipart, Delete) and returns
// either a Result or an error:
//
//   - 200 OK with a JSON body: Structured
//   - 200 OK with any other body: Raw
//   - any other status: *HTTPError
package connection
