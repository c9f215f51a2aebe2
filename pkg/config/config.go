package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"AstroServe/internal/domain/models"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Auth struct {
		Enabled bool     `yaml:"enabled"`
		Header  string   `yaml:"header"`
		APIKeys []string `yaml:"api_keys"`
	} `yaml:"auth"`
	CORS struct {
		Origins []string `yaml:"origins"`
	} `yaml:"cors"`
	RateLimit struct {
		Enabled bool    `yaml:"enabled"`
		Rate    float64 `yaml:"rate"`
		Burst   int     `yaml:"burst"`
	} `yaml:"rate_limit"`
	Astrology struct {
		HouseSystem string             `yaml:"house_system"`
		Orbs        map[string]float64 `yaml:"orbs"`
	} `yaml:"astrology"`
	Cache struct {
		Enabled   bool          `yaml:"enabled"`
		TTL       time.Duration `yaml:"ttl"`
		KeyPrefix string        `yaml:"key_prefix"`
		Redis     struct {
			Enabled  bool   `yaml:"enabled"`
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("API_KEYS"); v != "" {
		c.Auth.APIKeys = strings.Split(v, ",")
		c.Auth.Enabled = true
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		c.CORS.Origins = strings.Split(v, ",")
	}
	if v := os.Getenv("HOUSE_SYSTEM"); v != "" {
		c.Astrology.HouseSystem = v
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		c.Cache.Redis.Host = v
		c.Cache.Redis.Enabled = true
	}
	if v := os.Getenv("REDIS_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Cache.Redis.Port = p
		}
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Cache.Redis.Password = v
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port)
	}
	if c.Astrology.HouseSystem != "" {
		if _, err := models.ParseHouseSystem(c.Astrology.HouseSystem); err != nil {
			return fmt.Errorf("astrology.house_system: %q is not a supported system", c.Astrology.HouseSystem)
		}
	}
	for name, orb := range c.Astrology.Orbs {
		if _, ok := models.AspectAngles[models.AspectKind(name)]; !ok {
			return fmt.Errorf("astrology.orbs: unknown aspect %q", name)
		}
		if orb <= 0 || orb > 30 {
			return fmt.Errorf("astrology.orbs.%s must be in (0, 30], got %v", name, orb)
		}
	}
	if c.Auth.Enabled && len(c.Auth.APIKeys) == 0 {
		return fmt.Errorf("auth.api_keys cannot be empty when auth is enabled")
	}
	if c.RateLimit.Enabled && (c.RateLimit.Rate <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("rate_limit.rate and rate_limit.burst must be positive when enabled")
	}
	return nil
}

// DefaultHouseSystem resolves the configured house system, falling back to
// Placidus when the section is omitted.
func (c *Config) DefaultHouseSystem() models.HouseSystem {
	if c.Astrology.HouseSystem == "" {
		return models.Placidus
	}
	hs, err := models.ParseHouseSystem(c.Astrology.HouseSystem)
	if err != nil {
		return models.Placidus
	}
	return hs
}

// DefaultOrbs merges configured orb overrides over the built-in defaults.
func (c *Config) DefaultOrbs() models.AspectConfig {
	return models.DefaultAspectConfig().Merge(c.Astrology.Orbs)
}
