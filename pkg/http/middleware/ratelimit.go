package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"AstroServe/internal/service/ratelimit"
)

// RateLimitConfig holds token bucket parameters applied per client.
type RateLimitConfig struct {
	Rate   float64 // tokens per second
	Burst  int     // bucket capacity
	Header string  // when set, limit by this header value instead of client IP
}

// RateLimit enforces a per-client token bucket and answers 429 when drained.
func RateLimit(cfg RateLimitConfig) echo.MiddlewareFunc {
	limiter := ratelimit.New()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP()
			if cfg.Header != "" {
				if v := c.Request().Header.Get(cfg.Header); v != "" {
					key = v
				}
			}
			if !limiter.Allow(key, float64(cfg.Burst), cfg.Rate) {
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"status":  http.StatusTooManyRequests,
					"message": "rate limit exceeded",
				})
			}
			return next(c)
		}
	}
}
