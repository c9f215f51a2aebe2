package server

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"AstroServe/pkg/config"
	xhttp "AstroServe/pkg/http"
	"AstroServe/pkg/http/middleware"
	applogger "AstroServe/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	handler    xhttp.Handler
	httpServer *xhttp.Server
	closers    []io.Closer
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, l *applogger.Logger, handler xhttp.Handler) *App {
	return &App{
		cfg:     cfg,
		logger:  l,
		handler: handler,
	}
}

// AddCloser registers a resource to close on shutdown, e.g. the cache client.
func (a *App) AddCloser(c io.Closer) {
	if c != nil {
		a.closers = append(a.closers, c)
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	opts := []xhttp.ServerOption{
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithCORSOrigins(a.cfg.CORS.Origins),
	}
	metricsPath := a.cfg.Metrics.Path
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	if a.cfg.Metrics.Enabled {
		opts = append(opts, xhttp.WithMetrics(metricsPath))
	}
	if a.cfg.RateLimit.Enabled {
		opts = append(opts, xhttp.WithRateLimit(middleware.RateLimitConfig{
			Rate:   a.cfg.RateLimit.Rate,
			Burst:  a.cfg.RateLimit.Burst,
			Header: a.cfg.Auth.Header,
		}))
	}
	if a.cfg.Auth.Enabled {
		skip := []string{"/health"}
		if a.cfg.Metrics.Enabled {
			skip = append(skip, metricsPath)
		}
		opts = append(opts, xhttp.WithAuth(middleware.APIKeyConfig{
			Header: a.cfg.Auth.Header,
			Keys:   a.cfg.Auth.APIKeys,
			Skip:   skip,
		}))
	}

	a.httpServer = xhttp.NewServer(a.handler, a.logger, opts...)

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start", applogger.Error(err))
		return err
	}

	// Wait for interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown()
}

// shutdown gracefully stops the HTTP server and closes resources.
func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(ctx); err != nil {
		a.logger.Error("http shutdown", applogger.Error(err))
	}

	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.logger.Warn("resource close", applogger.Error(err))
		}
	}

	a.logger.Info("shutdown complete")
	return nil
}
