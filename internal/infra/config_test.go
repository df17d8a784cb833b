package infra

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig = %v, want nil", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("default addr = %s, want :8080", cfg.Server.Addr)
	}
	if cfg.Gateways.Seed != 42 {
		t.Errorf("default seed = %d, want 42", cfg.Gateways.Seed)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("server:\n  addr: \":9999\"\nlogging:\n  level: debug\n  format: json\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig = %v", err)
	}
	if cfg.Server.Addr != ":9999" {
		t.Errorf("addr = %s, want :9999", cfg.Server.Addr)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("format = %s, want json", cfg.Logging.Format)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("PATTERNLAB_ADDR", ":7070")
	t.Setenv("PATTERNLAB_GATEWAY_SEED", "99")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig = %v", err)
	}
	if cfg.Server.Addr != ":7070" {
		t.Errorf("addr = %s, want :7070 from env", cfg.Server.Addr)
	}
	if cfg.Gateways.Seed != 99 {
		t.Errorf("seed = %d, want 99 from env", cfg.Gateways.Seed)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty addr", func(c *Config) { c.Server.Addr = "" }},
		{"negative latency", func(c *Config) { c.Gateways.LatencyMS = -1 }},
		{"zero rate", func(c *Config) { c.Gateways.RatePerSec = 0 }},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Validate() accepted %s", tt.name)
			}
		})
	}
}
