package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.RateLimitPerMinute < 0 {
		return fmt.Errorf("server.rate_limit_per_minute must be >= 0 (got %d)", c.Server.RateLimitPerMinute)
	}

	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if !strings.HasPrefix(c.API.BasePath, "/") {
		return fmt.Errorf("api.base_path must start with \"/\" (got %q)", c.API.BasePath)
	}
	c.API.BasePath = strings.TrimRight(c.API.BasePath, "/")

	return nil
}

func (d *DatabaseConfig) validate() error {
	if d.MinConns <= 0 {
		return fmt.Errorf("min_conns must be > 0 (got %d)", d.MinConns)
	}
	if d.MaxConns < d.MinConns {
		return fmt.Errorf("max_conns must be >= min_conns (got %d < %d)", d.MaxConns, d.MinConns)
	}
	return nil
}
