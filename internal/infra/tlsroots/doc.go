// Package tlsroots builds the CA pool used to reach the testbed API.
//
// The system roots are always trusted; --ca-cert adds a PEM bundle on top
// of them for self-hosted deployments.
package tlsroots
