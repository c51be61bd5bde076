package config

import (
	"fmt"
	"net"
	"strings"

	applog "github.com/autosave-dev/autosave/internal/log"
)

// Validate checks the configuration and reports every problem at once.
func (c *Config) Validate() error {
	var errors []string

	if _, _, err := net.SplitHostPort(c.Server.Addr); err != nil {
		errors = append(errors, fmt.Sprintf("invalid server addr '%s': %v", c.Server.Addr, err))
	}
	if c.Server.MaxBodyBytes < 1 {
		errors = append(errors, fmt.Sprintf("invalid max body bytes %d: must be positive", c.Server.MaxBodyBytes))
	}
	for name, secs := range map[string]int{
		"read timeout":  c.Server.ReadTimeoutSeconds,
		"write timeout": c.Server.WriteTimeoutSeconds,
		"idle timeout":  c.Server.IdleTimeoutSeconds,
		"shutdown":      c.Server.ShutdownSeconds,
	} {
		if secs < 0 {
			errors = append(errors, fmt.Sprintf("invalid %s %ds: must not be negative", name, secs))
		}
	}

	if _, err := applog.ParseLevel(c.Logging.Level); err != nil {
		errors = append(errors, err.Error())
	}
	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be text or json", c.Logging.Format))
	}

	if _, err := c.EngineParams(); err != nil {
		errors = append(errors, err.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

// LoggerConfig converts the logging section. Validate reports bad levels;
// here they fall back to info.
func (c *Config) LoggerConfig() applog.Config {
	lc := applog.DefaultConfig()
	if lvl, err := applog.ParseLevel(c.Logging.Level); err == nil {
		lc.Level = lvl
	}
	lc.Format = c.Logging.Format
	return lc
}
