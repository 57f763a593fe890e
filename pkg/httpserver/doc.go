// Package httpserver runs an http.Server bound to a context.
//
// Run blocks until its context is cancelled, then shuts the server down
// gracefully within the configured timeout, so a request in flight keeps its
// tenant scope until the handler returns. The listener is opened before the
// start hooks fire, which lets tests bind "127.0.0.1:0" and learn the port.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	if err := srv.Run(ctx, handler); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// HealthCheckHandler builds liveness and readiness probe handlers.
package httpserver
