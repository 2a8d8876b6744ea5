package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/sadopc/clicksnitch/internal/classify"
)

// AppName names the config, data and state directories.
const AppName = "clicksnitch"

// Config holds the application configuration.
type Config struct {
	Endpoint    string             `yaml:"endpoint"`
	Timeout     time.Duration      `yaml:"timeout"`
	Theme       string             `yaml:"theme"`
	StoragePath string             `yaml:"storage_path"`
	Proxy       string             `yaml:"proxy"`
	NoProxy     string             `yaml:"no_proxy"`
	TLS         classify.TLSConfig `yaml:"tls"`
	LogLevel    string             `yaml:"log_level"`
	LogFile     string             `yaml:"log_file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Endpoint:    classify.DefaultEndpoint,
		Timeout:     30 * time.Second,
		Theme:       "catppuccin-mocha",
		StoragePath: filepath.Join(xdg.DataHome, AppName, "storage.db"),
		Proxy:       "",
		NoProxy:     "",
		LogLevel:    "info",
		LogFile:     filepath.Join(xdg.StateHome, AppName, AppName+".log"),
	}
}
