// Package httpserver runs the site's HTTP server with graceful shutdown.
//
// Run listens on the configured address, serves until the context is cancelled
// or the process receives SIGINT/SIGTERM, then drains in-flight requests
// within Config.ShutdownTimeout. Pending SSE streams observe request context
// cancellation during the drain.
//
//	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
