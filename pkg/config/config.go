package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Transport modes for the MCP server.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config holds all configuration for skytrack-mcp.
// Configuration can come from a YAML file (config.yaml) or environment
// variables; environment variables always override YAML values. Secrets
// (the N2YO API key) must only come from environment variables.
type Config struct {
	// Server configuration (HTTP transport mode only)
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"8973"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// Transport selects how the MCP server is exposed: "stdio" for
	// assistant runtimes spawning this binary, "http" for a streamable
	// HTTP endpoint at /mcp.
	Transport string `yaml:"transport" env:"MCP_TRANSPORT" env-default:"stdio"`

	// Upstream N2YO API configuration
	N2YO N2YOConfig `yaml:"n2yo"`
}

// N2YOConfig holds upstream API settings.
type N2YOConfig struct {
	// BaseURL is the N2YO REST API root. Override only for tests/proxies.
	BaseURL string `yaml:"base_url" env:"N2YO_BASE_URL" env-default:"https://api.n2yo.com/rest/v1/satellite"`

	// APIKey authenticates every upstream request. Secret - not in YAML.
	APIKey string `yaml:"-" env:"N2YO_API_KEY"`
}

// Load reads configuration from config.yaml (when present) with environment
// variable overrides. The version parameter is injected at build time and
// set on the returned Config.
func Load(version string) (*Config, error) {
	return loadFrom("config.yaml", version)
}

func loadFrom(path, version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	// A stdio-transport deployment often ships no YAML file at all; env
	// variables alone are a complete configuration.
	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("invalid transport %q: must be %q or %q", c.Transport, TransportStdio, TransportHTTP)
	}
	return nil
}
