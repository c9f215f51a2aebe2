package di

import (
    "fmt"
    "io"
    "time"

    "AstroServe/internal/domain/repository"
    "AstroServe/internal/domain/service"
    "AstroServe/internal/handler/api"
    "AstroServe/internal/service/ephemeris"
    "AstroServe/internal/usecase"
    "AstroServe/pkg/cache"
    "AstroServe/pkg/config"
    xhttp "AstroServe/pkg/http"
    applogger "AstroServe/pkg/logger"
    "AstroServe/pkg/metrics"
    "AstroServe/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	lcfg := &applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}
	if lcfg.Level == "" {
		lcfg.Level = "info"
	}
	if lcfg.Format == "" {
		lcfg.Format = "json"
	}
	if lcfg.Output == "" {
		lcfg.Output = "stdout"
	}
	return applogger.New(lcfg)
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideCache creates the ephemeris sample cache: memory-only by default,
// layered over Redis when configured. Returns nil when caching is disabled.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}
	if !cfg.Cache.Redis.Enabled {
		return cache.NewMemoryCache(), nil
	}

	prefix := cfg.Cache.KeyPrefix
	if prefix == "" {
		prefix = "astroserve"
	}
	redisCache, err := cache.NewRedisCache(
		cache.WithRedisHost(cfg.Cache.Redis.Host),
		cache.WithRedisPort(cfg.Cache.Redis.Port),
		cache.WithRedisPassword(cfg.Cache.Redis.Password),
		cache.WithRedisDB(cfg.Cache.Redis.DB),
		cache.WithRedisPrefix(prefix),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return cache.NewLayeredCache(redisCache), nil
}

// ProvideEphemeris creates the ephemeris engine, memoized when a cache is
// available. Samples are pure functions of their inputs, so the TTL only
// bounds cache growth.
func ProvideEphemeris(cfg *config.Config, c cache.Service) service.Ephemeris {
	engine := ephemeris.New()
	if c == nil {
		return engine
	}
	ttl := cfg.Cache.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return ephemeris.NewCached(engine, c, ttl)
}

// ProvideAssembler creates the chart assembler with configured defaults.
func ProvideAssembler(cfg *config.Config, ephem service.Ephemeris, m repository.Metrics) *usecase.Assembler {
	return usecase.NewAssembler(ephem, m, cfg.DefaultHouseSystem(), cfg.DefaultOrbs())
}

// ProvideComparator creates the synastry/composite/transit comparator.
func ProvideComparator(asm *usecase.Assembler, m repository.Metrics) *usecase.Comparator {
	return usecase.NewComparator(asm, m)
}

// ProvideHandler creates the Echo HTTP handler.
func ProvideHandler(l *applogger.Logger, asm *usecase.Assembler, cmp *usecase.Comparator) xhttp.Handler {
	return api.NewChartsEchoHandler(l, asm, cmp)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, h xhttp.Handler, c cache.Service) *server.App {
	app := server.New(cfg, l, h)
	if closer, ok := c.(io.Closer); ok {
		app.AddCloser(closer)
	}
	return app
}
