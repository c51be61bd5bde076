package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "autosave.yaml"

// Config represents the top-level autosave.yaml configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server" toml:"server"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
	Savings SavingsConfig `yaml:"savings" toml:"savings"`
	Returns ReturnsConfig `yaml:"returns" toml:"returns"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Addr                string `yaml:"addr" toml:"addr"`
	ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds" toml:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `yaml:"write_timeout_seconds" toml:"write_timeout_seconds"`
	IdleTimeoutSeconds  int    `yaml:"idle_timeout_seconds" toml:"idle_timeout_seconds"`
	ShutdownSeconds     int    `yaml:"shutdown_seconds" toml:"shutdown_seconds"`
	MaxBodyBytes        int64  `yaml:"max_body_bytes" toml:"max_body_bytes"`
}

// LoggingConfig controls structured logging.
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`   // debug, info, warn, error
	Format string `yaml:"format" toml:"format"` // text or json
}

// SavingsConfig controls the round-up computation.
type SavingsConfig struct {
	Multiple      string `yaml:"multiple" toml:"multiple"`
	CeilingPolicy string `yaml:"ceiling_policy" toml:"ceiling_policy"` // truncate or exact
}

// ReturnsConfig controls the returns projection. Decimal values are kept as
// strings so they survive the file round trip exactly.
type ReturnsConfig struct {
	RetirementAge int                   `yaml:"retirement_age" toml:"retirement_age"`
	DeductionRate string                `yaml:"deduction_rate" toml:"deduction_rate"`
	DeductionCap  string                `yaml:"deduction_cap" toml:"deduction_cap"`
	Modes         map[string]ModeConfig `yaml:"modes" toml:"modes"`
	TaxSlabs      []TaxSlabConfig       `yaml:"tax_slabs" toml:"tax_slabs"`
}

// ModeConfig is the growth rate of one investment mode. Fields left out of
// a file keep the built-in value for that mode.
type ModeConfig struct {
	Rate       string `yaml:"rate,omitempty" toml:"rate,omitempty"`
	TaxBenefit *bool  `yaml:"tax_benefit,omitempty" toml:"tax_benefit,omitempty"`
}

// HasTaxBenefit reports whether the mode earns the deduction benefit.
func (m ModeConfig) HasTaxBenefit() bool {
	return m.TaxBenefit != nil && *m.TaxBenefit
}

// TaxSlabConfig is one band of the progressive schedule. An empty UpTo
// marks the open-ended top slab.
type TaxSlabConfig struct {
	UpTo string `yaml:"up_to,omitempty" toml:"up_to,omitempty"`
	Rate string `yaml:"rate" toml:"rate"`
}

// Default returns a Config with the standard projection constants.
func Default() *Config {
	taxBenefit := true
	return &Config{
		Server: ServerConfig{
			Addr:                ":5477",
			ReadTimeoutSeconds:  10,
			WriteTimeoutSeconds: 10,
			IdleTimeoutSeconds:  60,
			ShutdownSeconds:     30,
			MaxBodyBytes:        4 << 20,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Savings: SavingsConfig{
			Multiple:      "100",
			CeilingPolicy: "truncate",
		},
		Returns: ReturnsConfig{
			RetirementAge: 60,
			DeductionRate: "0.10",
			DeductionCap:  "200000",
			Modes: map[string]ModeConfig{
				"nps":   {Rate: "0.0711", TaxBenefit: &taxBenefit},
				"index": {Rate: "0.1449"},
			},
			TaxSlabs: []TaxSlabConfig{
				{UpTo: "700000", Rate: "0"},
				{UpTo: "1000000", Rate: "0.10"},
				{UpTo: "1200000", Rate: "0.15"},
				{UpTo: "1500000", Rate: "0.20"},
				{Rate: "0.30"},
			},
		},
	}
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Load reads a YAML or TOML file (chosen by extension) over the defaults.
// Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	// Slab lists replace the default table instead of merging into it.
	// Modes merge per field.
	defaultSlabs := cfg.Returns.TaxSlabs
	defaultModes := cfg.Returns.Modes
	cfg.Returns.TaxSlabs = nil
	cfg.Returns.Modes = nil
	if isTOML(path) {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Returns.TaxSlabs == nil {
		cfg.Returns.TaxSlabs = defaultSlabs
	}
	cfg.Returns.Modes = mergeModes(defaultModes, cfg.Returns.Modes)
	return cfg, nil
}

// mergeModes overlays the fields set in override onto base. Mode names are
// matched case-insensitively.
func mergeModes(base, override map[string]ModeConfig) map[string]ModeConfig {
	out := make(map[string]ModeConfig, len(base)+len(override))
	for name, m := range base {
		out[name] = m
	}
	for name, m := range override {
		key := strings.ToLower(strings.TrimSpace(name))
		merged := out[key]
		if m.Rate != "" {
			merged.Rate = m.Rate
		}
		if m.TaxBenefit != nil {
			merged.TaxBenefit = m.TaxBenefit
		}
		out[key] = merged
	}
	return out
}

// Save writes a Config as YAML or TOML (chosen by extension).
func Save(path string, cfg *Config) error {
	var data []byte
	if isTOML(path) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		data = buf.Bytes()
	} else {
		var err error
		if data, err = yaml.Marshal(cfg); err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Resolve loads path, or DefaultFile when path is empty and that file
// exists, or the defaults otherwise. Environment overrides are applied last.
func Resolve(path string) (*Config, error) {
	var cfg *Config
	switch {
	case path != "":
		c, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = c
	case fileExists(DefaultFile):
		c, err := Load(DefaultFile)
		if err != nil {
			return nil, err
		}
		cfg = c
	default:
		cfg = Default()
	}
	cfg.ApplyEnv()
	return cfg, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
