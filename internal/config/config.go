// Package config loads the project configuration file (.hostmcp.toml) and
// layers environment overrides on top. The provider API key is never part of
// the file; it comes from the environment only.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/hostfleet/hostmcp/internal/flags"
)

// ErrConfigLoadFailed indicates the configuration file could not be read,
// decoded or validated.
var ErrConfigLoadFailed = errors.New("config load failed")

// Config is the full file-backed configuration.
type Config struct {
	Provider ProviderConfig `toml:"provider"`
	Gateway  GatewayConfig  `toml:"gateway"`
	Tools    ToolsConfig    `toml:"tools"`
}

// ProviderConfig configures the outbound provider API client.
type ProviderConfig struct {
	// BaseURL is the provider API endpoint. Empty means the production default.
	BaseURL string `toml:"base_url"`

	// TimeoutSeconds bounds each outbound call. Zero means the client default.
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// GatewayConfig configures the optional HTTP status gateway.
type GatewayConfig struct {
	// Addr is the listen address. Empty disables the gateway.
	Addr string `toml:"addr"`

	CORSEnabled bool     `toml:"cors_enabled"`
	CORSOrigins []string `toml:"cors_origins"`
}

// ToolsConfig restricts which tools are registered on the MCP server.
type ToolsConfig struct {
	// Allow lists the permitted tool names. Empty means all tools.
	Allow []string `toml:"allow"`
}

// Load reads the configuration from path and applies environment overrides.
// A missing file is not an error: hostmcp runs on defaults plus environment
// alone, so only decode and validation failures are reported.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	path = strings.TrimSpace(path)
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("%w: failed to decode config from file (%s): %w", ErrConfigLoadFailed, path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: failed to stat config file (%s): %w", ErrConfigLoadFailed, path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigLoadFailed, err)
	}

	return cfg, nil
}

// applyEnv overlays environment variables onto the file-backed values.
// Environment wins over the file.
func (c *Config) applyEnv() {
	if baseURL := flags.BaseURL(); baseURL != "" {
		c.Provider.BaseURL = baseURL
	}
}

func (c *Config) validate() error {
	if c.Provider.TimeoutSeconds < 0 {
		return fmt.Errorf("provider timeout cannot be negative: %d", c.Provider.TimeoutSeconds)
	}
	if c.Gateway.CORSEnabled && strings.TrimSpace(c.Gateway.Addr) == "" {
		return fmt.Errorf("gateway CORS enabled but no gateway address configured")
	}
	return nil
}

// Timeout returns the configured provider call timeout,
// and false when the client default should be used.
func (c *Config) Timeout() (time.Duration, bool) {
	if c.Provider.TimeoutSeconds <= 0 {
		return 0, false
	}
	return time.Duration(c.Provider.TimeoutSeconds) * time.Second, true
}

// ToolAllowed reports whether the named tool may be registered.
// An empty allowlist permits everything.
func (c *Config) ToolAllowed(name string) bool {
	if len(c.Tools.Allow) == 0 {
		return true
	}
	for _, allowed := range c.Tools.Allow {
		if strings.EqualFold(strings.TrimSpace(allowed), name) {
			return true
		}
	}
	return false
}
