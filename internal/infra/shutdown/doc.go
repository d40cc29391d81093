// Package shutdown provides signal handling and exit hooks for iotlab-cli.
//
// Usage:
//
//	h := shutdown.NewHandler(5 * time.Second)
//	ctx, stop := h.Context(context.Background())
//	defer stop()
//	h.OnShutdown(writeMetrics)
//	err := run(ctx)
//	_ = h.Shutdown()
package shutdown
