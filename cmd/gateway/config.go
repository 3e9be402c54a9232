package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultPort       = 8000
	defaultPathPrefix = "/api/v1"
	defaultMCPPath    = "/mcp"
	defaultTimeout    = 10
)

// ServerConfig is the transport side of config.yaml: where to listen
// and under which paths the tool surfaces are exposed.
type ServerConfig struct {
	Port       int    `yaml:"port"`
	PathPrefix string `yaml:"path_prefix"`
	MCPPath    string `yaml:"mcp_path"`
}

// ProviderConfig is the upstream side of config.yaml. The API key is
// deliberately not here; secrets come from the environment.
type ProviderConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// AppConfig holds all configuration for the gateway, loaded from the
// environment and config.yaml.
type AppConfig struct {
	APIKey   string
	Server   ServerConfig
	Provider ProviderConfig
}

// fileConfig is the config.yaml document shape.
type fileConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Provider ProviderConfig `yaml:"provider"`
}

// ProviderTimeout returns the outbound call timeout as a duration.
func (c *AppConfig) ProviderTimeout() time.Duration {
	return time.Duration(c.Provider.TimeoutSeconds) * time.Second
}

// LoadConfig loads configuration from a .env file, environment
// variables, and config.yaml. The API key is required; everything else
// has a sensible default.
func LoadConfig() (*AppConfig, error) {
	// Only attempt to load a .env file in a local development
	// environment. In Docker (where GIN_MODE="release"), configuration
	// is provided directly as environment variables.
	if os.Getenv("GIN_MODE") != "release" {
		if err := godotenv.Load(); err != nil {
			log.Println("WARNING: No .env file found for local development.")
		}
	}

	cfg := &AppConfig{
		Server: ServerConfig{
			Port:       defaultPort,
			PathPrefix: defaultPathPrefix,
			MCPPath:    defaultMCPPath,
		},
		Provider: ProviderConfig{
			TimeoutSeconds: defaultTimeout,
		},
	}

	// config.yaml is optional; when present it overrides the defaults
	// above but never carries secrets.
	if raw, err := os.ReadFile("config.yaml"); err == nil {
		var fc fileConfig
		if err := yaml.Unmarshal(raw, &fc); err != nil {
			return nil, fmt.Errorf("failed to parse config.yaml: %w", err)
		}
		applyFileConfig(cfg, fc)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config.yaml: %w", err)
	}

	cfg.APIKey = os.Getenv("ACCUWEATHER_API_KEY")
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("ACCUWEATHER_API_KEY environment variable is not set")
	}

	if baseURL := os.Getenv("ACCUWEATHER_BASE_URL"); baseURL != "" {
		cfg.Provider.BaseURL = baseURL
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT value %q: %w", portStr, err)
		}
		cfg.Server.Port = port
	}

	return cfg, nil
}

// applyFileConfig copies the non-zero values of config.yaml over the
// defaults.
func applyFileConfig(cfg *AppConfig, fc fileConfig) {
	if fc.Server.Port != 0 {
		cfg.Server.Port = fc.Server.Port
	}
	if fc.Server.PathPrefix != "" {
		cfg.Server.PathPrefix = fc.Server.PathPrefix
	}
	if fc.Server.MCPPath != "" {
		cfg.Server.MCPPath = fc.Server.MCPPath
	}
	if fc.Provider.BaseURL != "" {
		cfg.Provider.BaseURL = fc.Provider.BaseURL
	}
	if fc.Provider.TimeoutSeconds != 0 {
		cfg.Provider.TimeoutSeconds = fc.Provider.TimeoutSeconds
	}
}
