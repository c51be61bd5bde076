package config

import (
	"os"
	"strconv"
)

// Environment variables that override file values.
const (
	EnvAddr          = "AUTOSAVE_ADDR"
	EnvPort          = "PORT"
	EnvLogLevel      = "AUTOSAVE_LOG_LEVEL"
	EnvLogFormat     = "AUTOSAVE_LOG_FORMAT"
	EnvCeilingPolicy = "AUTOSAVE_CEILING_POLICY"
	EnvRetirementAge = "AUTOSAVE_RETIREMENT_AGE"
)

// ApplyEnv overrides fields from the environment. PORT is honored for
// platforms that inject it; AUTOSAVE_ADDR wins when both are set.
func (c *Config) ApplyEnv() {
	if port := os.Getenv(EnvPort); port != "" {
		c.Server.Addr = ":" + port
	}
	c.Server.Addr = getEnv(EnvAddr, c.Server.Addr)
	c.Logging.Level = getEnv(EnvLogLevel, c.Logging.Level)
	c.Logging.Format = getEnv(EnvLogFormat, c.Logging.Format)
	c.Savings.CeilingPolicy = getEnv(EnvCeilingPolicy, c.Savings.CeilingPolicy)
	c.Returns.RetirementAge = getEnvInt(EnvRetirementAge, c.Returns.RetirementAge)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
