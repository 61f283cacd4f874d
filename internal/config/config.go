package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"hsdocs/internal/logging"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const APP_NAME = "hsdocs" // application name used for config directory

// Transport names accepted in MCP_TRANSPORT / the config file.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "streamable-http"
)

const (
	// DefaultBaseURL is the HelpScout Docs API root.
	DefaultBaseURL = "https://docsapi.helpscout.net/v1"

	defaultHost = "0.0.0.0"
	defaultPort = 8000
)

// APIKeyHelp tells the operator where an API key comes from. It is surfaced
// verbatim whenever an operation fails for lack of a credential.
const APIKeyHelp = "Generate an API key at Help Scout → Your Profile → Authentication → API Keys, " +
	"then set HELPSCOUT_API_KEY or run 'hsdocs auth set'."

// Config holds the process configuration. It is built once at startup and
// passed by reference into the server; nothing mutates it afterwards.
type Config struct {
	// APIKey is the HelpScout Docs API key. Never written to the config
	// file; it lives in the environment or the OS credential store.
	APIKey string `yaml:"-"`

	BaseURL   string `yaml:"base_url"`
	Transport string `yaml:"transport"`
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
}

// ConfigPath returns the standard config file path for the current platform
func ConfigPath() string {
	return filepath.Join(xdg.ConfigHome, APP_NAME, "config.yaml")
}

// Load builds the configuration: defaults, then the optional YAML file at the
// XDG config path, then environment variables on top. The API key is resolved
// from HELPSCOUT_API_KEY first and the OS credential store second; a missing
// key is not an error here — operations fail individually until one is set.
func Load(logger *logging.AppLogger) (*Config, error) {
	cfg := DefaultConfig()

	path := ConfigPath()
	if _, err := os.Stat(path); err == nil {
		fileCfg, err := LoadFrom(path)
		if err != nil {
			return nil, err
		}
		cfg.merge(fileCfg)
		logger.Debug("Config file loaded", "path", path)
	}

	cfg.applyEnv()

	if cfg.APIKey == "" {
		if key, err := NewCredentialManager().GetAPIKey(); err == nil {
			cfg.APIKey = key
			logger.Debug("API key loaded from OS credential store")
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFrom loads config from a specific path
func LoadFrom(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		Transport: TransportHTTP,
		Host:      defaultHost,
		Port:      defaultPort,
	}
}

// merge overlays non-zero values from the file config.
func (c *Config) merge(file *Config) {
	if file.BaseURL != "" {
		c.BaseURL = file.BaseURL
	}
	if file.Transport != "" {
		c.Transport = file.Transport
	}
	if file.Host != "" {
		c.Host = file.Host
	}
	if file.Port != 0 {
		c.Port = file.Port
	}
}

// applyEnv overlays environment variables. Environment always wins over the
// config file so container deployments need no file at all.
func (c *Config) applyEnv() {
	c.APIKey = strings.TrimSpace(os.Getenv("HELPSCOUT_API_KEY"))
	c.BaseURL = getEnv("HELPSCOUT_BASE_URL", c.BaseURL)
	c.Transport = getEnv("MCP_TRANSPORT", c.Transport)
	c.Host = getEnv("HOST", c.Host)
	c.Port = getIntEnv("PORT", c.Port)
}

// Validate rejects configurations the server cannot start with. A missing
// API key is deliberately allowed: per-call checks surface it with guidance.
func (c *Config) Validate() error {
	switch c.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("unknown transport %q (expected %q or %q)", c.Transport, TransportStdio, TransportHTTP)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.BaseURL == "" {
		return fmt.Errorf("base URL cannot be empty")
	}
	return nil
}

// Addr returns the host:port the streamable HTTP transport binds to.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Save writes the config to the standard location
func (c *Config) Save() error {
	return c.SaveTo(ConfigPath())
}

// SaveTo writes the config to a specific path
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create file with restrictive permissions (600) for security
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	defer enc.Close()

	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logging.Warn("Ignoring non-numeric environment value", "key", key, "value", v)
		return fallback
	}
	return n
}
