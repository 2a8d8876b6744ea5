package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file.
const (
	EnvEndpoint = "CLICKSNITCH_ENDPOINT"
	EnvProxy    = "CLICKSNITCH_PROXY"
	EnvTimeout  = "CLICKSNITCH_TIMEOUT"
	EnvLogLevel = "CLICKSNITCH_LOG_LEVEL"
)

// Load loads configuration from ~/.config/clicksnitch/config.yaml, then
// applies overrides from ./.env and the process environment (the process
// environment wins).
func Load() Config {
	cfg := LoadFile(Path())
	return ApplyEnv(cfg, ".env")
}

// Path returns the config file location, or "" if the home directory is unknown.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", AppName, "config.yaml")
}

// LoadFile reads a yaml config file over the defaults. A missing or invalid
// file yields the defaults.
func LoadFile(path string) Config {
	cfg := DefaultConfig()
	if path == "" {
		return cfg
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return cfg
	}
	merge(&cfg, fileCfg)
	return cfg
}

// ApplyEnv overlays values from dotenvPath (if it exists) and then from the
// process environment. A variable that is set but blank does not mask .env.
func ApplyEnv(cfg Config, dotenvPath string) Config {
	vars := map[string]string{}
	if dotenvPath != "" {
		if m, err := godotenv.Read(dotenvPath); err == nil {
			vars = m
		}
	}
	for _, k := range []string{EnvEndpoint, EnvProxy, EnvTimeout, EnvLogLevel} {
		if v, ok := os.LookupEnv(k); ok && strings.TrimSpace(v) != "" {
			vars[k] = v
		}
	}

	if v := strings.TrimSpace(vars[EnvEndpoint]); v != "" {
		cfg.Endpoint = v
	}
	if v := strings.TrimSpace(vars[EnvProxy]); v != "" {
		cfg.Proxy = v
	}
	if v := strings.TrimSpace(vars[EnvTimeout]); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	if v := strings.TrimSpace(vars[EnvLogLevel]); v != "" {
		cfg.LogLevel = v
	}
	return cfg
}

func merge(dst *Config, src Config) {
	if src.Endpoint != "" {
		dst.Endpoint = src.Endpoint
	}
	if src.Timeout > 0 {
		dst.Timeout = src.Timeout
	}
	if src.Theme != "" {
		dst.Theme = src.Theme
	}
	if src.StoragePath != "" {
		dst.StoragePath = expandHome(src.StoragePath)
	}
	if src.Proxy != "" {
		dst.Proxy = src.Proxy
	}
	if src.NoProxy != "" {
		dst.NoProxy = src.NoProxy
	}
	if !src.TLS.IsZero() {
		dst.TLS = src.TLS
		dst.TLS.CAFile = expandHome(src.TLS.CAFile)
		dst.TLS.CertFile = expandHome(src.TLS.CertFile)
		dst.TLS.KeyFile = expandHome(src.TLS.KeyFile)
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.LogFile != "" {
		dst.LogFile = expandHome(src.LogFile)
	}
}

func expandHome(p string) string {
	if !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[2:])
}
