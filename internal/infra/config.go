package infra

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application settings.
// After LoadConfig, environment variables override file values.
type Config struct {
	App struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"app"`

	Server struct {
		Addr            string `yaml:"addr"`
		ShutdownGraceMS int    `yaml:"shutdown_grace_ms"`
	} `yaml:"server"`

	Gateways struct {
		// LatencyMS is the simulated round-trip per gateway call.
		LatencyMS int `yaml:"latency_ms"`
		// RatePerSec bounds calls into each fake gateway.
		RatePerSec float64 `yaml:"rate_per_sec"`
		Burst      int     `yaml:"burst"`
		// Seed feeds the deterministic outcome generators.
		Seed int64 `yaml:"seed"`
	} `yaml:"gateways"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"` // "text" or "json"
	} `yaml:"logging"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	var cfg Config
	cfg.App.Name = "pattern-lab"
	cfg.App.Version = "dev"
	cfg.Server.Addr = ":8080"
	cfg.Server.ShutdownGraceMS = 5000
	cfg.Gateways.LatencyMS = 50
	cfg.Gateways.RatePerSec = 100
	cfg.Gateways.Burst = 20
	cfg.Gateways.Seed = 42
	cfg.Logging.Level = "info"
	cfg.Logging.Format = "text"
	return &cfg
}

// LoadConfig reads and parses the config file. A missing file is not an
// error: defaults apply, then environment overrides.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	overrideWithEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks configuration validity.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server addr is required")
	}
	if c.Gateways.LatencyMS < 0 {
		return fmt.Errorf("gateway latency must not be negative")
	}
	if c.Gateways.RatePerSec <= 0 {
		return fmt.Errorf("gateway rate must be positive")
	}
	if c.Gateways.Burst <= 0 {
		return fmt.Errorf("gateway burst must be positive")
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown logging format: %s", c.Logging.Format)
	}
	return nil
}

// overrideWithEnv applies PATTERNLAB_* environment variables on top of
// file values. Env wins over file.
func overrideWithEnv(cfg *Config) {
	if addr := os.Getenv("PATTERNLAB_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}
	if level := os.Getenv("PATTERNLAB_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if format := os.Getenv("PATTERNLAB_LOG_FORMAT"); format != "" {
		cfg.Logging.Format = format
	}
	if seed := os.Getenv("PATTERNLAB_GATEWAY_SEED"); seed != "" {
		if v, err := strconv.ParseInt(seed, 10, 64); err == nil {
			cfg.Gateways.Seed = v
		}
	}
}
