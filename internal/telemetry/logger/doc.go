// Package logger provides structured logging for iotlab-cli.
//
//   - logger.go: Logger interface over log/slog, level and format selection
//   - context.go: logger and request ID propagation through context.Context
//   - redact.go: removal of passwords and auth headers from log attributes
package logger
