package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default configuration values
const (
	DefaultEndpoint   = "/jsonapi"
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3
	DefaultMenuType   = "menu_link_content"

	DefaultCacheEnabled = false
	DefaultCacheTTL     = 15 * time.Minute

	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// ConfigDir returns the configuration directory
func ConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(homeDir, ".menufetch")
}

// CacheDir returns the default cache directory
func CacheDir() string {
	return filepath.Join(ConfigDir(), "cache")
}
