package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// APIKeyConfig holds API key authentication configuration.
type APIKeyConfig struct {
	Header string   // header carrying the key, e.g. X-API-Key
	Keys   []string // accepted keys
	Skip   []string // route paths exempt from auth, e.g. /health
}

// APIKey rejects requests without a key (401) or with an unknown key (403).
// Key comparison is constant-time.
func APIKey(cfg APIKeyConfig) echo.MiddlewareFunc {
	header := cfg.Header
	if header == "" {
		header = "X-API-Key"
	}
	skip := make(map[string]struct{}, len(cfg.Skip))
	for _, p := range cfg.Skip {
		skip[p] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := skip[c.Path()]; ok {
				return next(c)
			}

			key := c.Request().Header.Get(header)
			if key == "" {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"status":  http.StatusUnauthorized,
					"message": "missing API key",
				})
			}
			for _, allowed := range cfg.Keys {
				if subtle.ConstantTimeCompare([]byte(key), []byte(allowed)) == 1 {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]interface{}{
				"status":  http.StatusForbidden,
				"message": "invalid API key",
			})
		}
	}
}
