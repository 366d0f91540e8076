package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Corpus.Path) == "" {
		return fmt.Errorf("corpus.path is required")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with '/' (got %q)", c.Metrics.Path)
	}

	return nil
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
